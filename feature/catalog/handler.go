package catalog

import (
	"errors"

	"briq-utils/core/analyze"
	"briq-utils/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleSummary)
	group.Get("/sets/:number", h.HandleSet)
	group.Get("/sets/:number/diff", h.HandleSetDiff)
	group.Get("/stats", h.HandleStats)
	group.Get("/themes/depth", h.HandleThemeDepth)
	group.Get("/validate", h.HandleValidate)
	group.Get("/assets", h.HandleAssets)
	group.Get("/assets/*", h.HandleAsset)
	group.Post("/reload", h.HandleReload)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleSummary reports the loaded catalog.
// @Summary Catalog Summary
// @Description Counts of the loaded catalog and the inventory rows dropped while normalizing it.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	cat, err := h.service.Catalog(c.Context())
	if err != nil {
		return h.fail(c, "Failed to load catalog", err)
	}

	diagnostics := make([]string, len(cat.Diagnostics))
	for i, d := range cat.Diagnostics {
		diagnostics[i] = d.String()
	}

	return c.JSON(fiber.Map{
		"sets":        len(cat.Data.Sets),
		"parts":       len(cat.Data.Parts),
		"minifigs":    len(cat.Data.Minifigs),
		"loaded_at":   cat.LoadedAt,
		"diagnostics": diagnostics,
	})
}

// HandleSet returns one set.
// @Summary Get Set
// @Description Returns a set with its inventory versions.
// @Tags catalog
// @Produce json
// @Param number path string true "Set number, e.g. 1000-1"
// @Success 200 {object} model.Set
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sets/{number} [get]
func (h *Handler) HandleSet(c *fiber.Ctx) error {
	set, err := h.service.Set(c.Context(), c.Params("number"))
	if errors.Is(err, ErrSetNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "Failed to get set", err)
	}
	return c.JSON(set)
}

// HandleSetDiff returns the version diff of a set.
// @Summary Diff Set Versions
// @Description Returns the parts unique to each version and the parts common to all versions.
// @Tags catalog
// @Produce json
// @Param number path string true "Set number, e.g. 1000-1"
// @Success 200 {object} analyze.VersionDiff
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sets/{number}/diff [get]
func (h *Handler) HandleSetDiff(c *fiber.Ctx) error {
	diff, err := h.service.SetDiff(c.Context(), c.Params("number"))
	if errors.Is(err, ErrSetNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "Failed to diff set", err)
	}
	return c.JSON(diff)
}

// HandleStats returns version statistics.
// @Summary Version Statistics
// @Description Counts sets with more than one and more than two inventory versions.
// @Tags catalog
// @Produce json
// @Success 200 {object} analyze.VersionStats
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return h.fail(c, "Failed to compute stats", err)
	}
	return c.JSON(stats)
}

// HandleThemeDepth returns the theme hierarchy depth.
// @Summary Theme Depth
// @Description Maximum number of themes on a path from a root theme. Fails with 422 on a cycle or a missing parent.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]int "Depth"
// @Failure 422 {object} map[string]string "Malformed hierarchy"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/themes/depth [get]
func (h *Handler) HandleThemeDepth(c *fiber.Ctx) error {
	depth, err := h.service.ThemeDepth(c.Context())
	if err != nil {
		var missing *analyze.MissingParentError[uint32]
		if errors.Is(err, analyze.ErrCycle) || errors.As(err, &missing) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return h.fail(c, "Failed to compute theme depth", err)
	}
	return c.JSON(fiber.Map{"depth": depth})
}

// HandleValidate runs the integrity checks of the tables.
// @Summary Validate Tables
// @Description Reports duplicate keys, dangling references and theme hierarchy errors.
// @Tags catalog
// @Produce json
// @Success 200 {object} validate.Report
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/validate [get]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	report, err := h.service.Validate(c.Context())
	if err != nil {
		return h.fail(c, "Validation failed", err)
	}
	if !report.OK() {
		logger.WithRayID(h.service.logger, c).Warn("Catalog tables have integrity errors",
			zap.Int("duplicates", len(report.Duplicates)),
			zap.Int("dangling", len(report.Dangling)))
	}
	return c.JSON(report)
}

// HandleAssets reports the asset mirror status.
// @Summary Asset Status
// @Description Reconciles catalog image URLs with the local cache and the storage bucket.
// @Tags catalog
// @Produce json
// @Param refresh query boolean false "Rebuild the status instead of using the cached one"
// @Success 200 {object} reconcile.PlanSummary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/assets [get]
func (h *Handler) HandleAssets(c *fiber.Ctx) error {
	plan, err := h.service.AssetStatus(c.Context(), c.Query("refresh") == "true")
	if err != nil {
		return h.fail(c, "Asset status failed", err)
	}
	return c.JSON(plan.Summary)
}

// HandleAsset reports where one asset is present.
// @Summary Asset Status By Key
// @Description Reconciles one cache-relative key, e.g. cdn.rebrickable.com/media/sets/1000-1.jpg.
// @Tags catalog
// @Produce json
// @Param key path string true "Cache-relative asset key"
// @Success 200 {object} reconcile.Result
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/assets/{key} [get]
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	result, err := h.service.Asset(c.Context(), c.Params("*"))
	if errors.Is(err, ErrAssetNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "Asset status failed", err)
	}
	return c.JSON(result)
}

// HandleReload reloads the catalog from the tables.
// @Summary Reload Catalog
// @Description Drops the in-memory catalog and reads the tables again.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Reloaded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	cat, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, "Reload failed", err)
	}
	l.Info("Catalog reloaded", zap.Int("sets", len(cat.Data.Sets)))
	return c.JSON(fiber.Map{"status": "reloaded", "sets": len(cat.Data.Sets), "loaded_at": cat.LoadedAt})
}
