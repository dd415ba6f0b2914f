package normalize

import (
	"context"
	"fmt"
	"slices"

	"briq-utils/core/index"
	"briq-utils/core/model"
	"briq-utils/core/table"
)

// VersionOrder selects how the versions of a set are ordered.
type VersionOrder string

const (
	// OrderSource keeps the order inventories appear in inventories.csv.
	OrderSource VersionOrder = "source"
	// OrderNumeric sorts versions by version number. Equal numbers keep source order.
	OrderNumeric VersionOrder = "numeric"
)

// ParseVersionOrder validates a configured order. An empty string means OrderSource.
func ParseVersionOrder(s string) (VersionOrder, error) {
	switch VersionOrder(s) {
	case "", OrderSource:
		return OrderSource, nil
	case OrderNumeric:
		return OrderNumeric, nil
	default:
		return "", fmt.Errorf("unknown version order %q (want %q or %q)", s, OrderSource, OrderNumeric)
	}
}

// Diagnostic reports an inventory part row dropped for referencing an unknown part.
type Diagnostic struct {
	SetNumber   string
	InventoryID uint32
	Version     uint16
	PartNumber  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Set %s version %d: ignoring part %s: does not exist", d.SetNumber, d.Version, d.PartNumber)
}

// Options configures Normalize.
type Options struct {
	SourcePrefix string
	TargetPrefix string
	// StrictURLs turns URLs outside SourcePrefix into a fatal error.
	StrictURLs   bool
	VersionOrder VersionOrder
	// Classifier sets the pack, unreleased and accessory flags on each set.
	Classifier model.Classifier
	// OnDiagnostic, if set, is called for every dropped row as it is found.
	OnDiagnostic func(Diagnostic)
}

// DefaultOptions returns the Rebrickable to briq-assets rewrite in source order.
func DefaultOptions() Options {
	return Options{
		SourcePrefix: DefaultSourcePrefix,
		TargetPrefix: DefaultTargetPrefix,
		VersionOrder: OrderSource,
	}
}

// Result is the output of a normalization run.
type Result struct {
	Data        *model.Data
	Diagnostics []Diagnostic
}

// Build indexes s and normalizes it.
func Build(ctx context.Context, s *table.Store, opts Options) (*Result, error) {
	idx, err := index.Build(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to build indices: %w", err)
	}
	return Normalize(s, idx, opts)
}

// Normalize joins the tables of s through idx into the domain model.
func Normalize(s *table.Store, idx *index.Indices, opts Options) (*Result, error) {
	n := &normalizer{idx: idx, opts: opts}

	data := &model.Data{
		Minifigs: make([]model.Minifig, 0, len(s.Minifigs)),
		Parts:    make([]model.Part, 0, len(s.Parts)),
		Sets:     make([]model.Set, 0, len(s.Sets)),
	}

	for _, p := range s.Parts {
		data.Parts = append(data.Parts, model.Part{
			Number:         p.PartNum,
			Name:           p.Name,
			PartCategoryID: p.PartCatID,
			Material:       p.PartMaterial,
		})
	}

	for _, m := range s.Minifigs {
		url, err := n.url(m.ImgURL)
		if err != nil {
			return nil, fmt.Errorf("minifig %s: %w", m.FigNum, err)
		}
		data.Minifigs = append(data.Minifigs, model.Minifig{
			Number:     m.FigNum,
			Name:       m.Name,
			PartsCount: m.NumParts,
			ImgURL:     url,
		})
	}

	for _, rec := range s.Sets {
		set, err := n.set(rec)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", rec.SetNum, err)
		}
		data.Sets = append(data.Sets, set)
	}

	return &Result{Data: data, Diagnostics: n.diagnostics}, nil
}

type normalizer struct {
	idx         *index.Indices
	opts        Options
	diagnostics []Diagnostic
}

func (n *normalizer) url(raw string) (*string, error) {
	if n.opts.StrictURLs {
		return RewriteURLStrict(raw, n.opts.SourcePrefix, n.opts.TargetPrefix)
	}
	return RewriteURL(raw, n.opts.SourcePrefix, n.opts.TargetPrefix), nil
}

func (n *normalizer) set(rec table.SetRecord) (model.Set, error) {
	url, err := n.url(rec.ImgURL)
	if err != nil {
		return model.Set{}, err
	}

	refs := n.idx.InventoriesOf(rec.SetNum)
	if n.opts.VersionOrder == OrderNumeric {
		refs = slices.Clone(refs)
		slices.SortStableFunc(refs, func(a, b index.InventoryRef) int {
			return int(a.Version) - int(b.Version)
		})
	}

	set := model.Set{
		Number:        rec.SetNum,
		Name:          rec.Name,
		Year:          rec.Year,
		ThemeID:       rec.ThemeID,
		PartsCount:    rec.NumParts,
		ImgURL:        url,
		Versions:      make([]model.SetVersion, 0, len(refs)),
		IsPack:        n.opts.Classifier.IsPack(rec.SetNum),
		IsUnreleased:  n.opts.Classifier.IsUnreleased(rec.SetNum),
		IsAccessories: n.opts.Classifier.IsAccessories(rec.SetNum),
	}

	for _, ref := range refs {
		v, err := n.version(rec.SetNum, ref)
		if err != nil {
			return model.Set{}, fmt.Errorf("version %d: %w", ref.Version, err)
		}
		set.Versions = append(set.Versions, v)
	}
	return set, nil
}

func (n *normalizer) version(setNum string, ref index.InventoryRef) (model.SetVersion, error) {
	minifigRows := n.idx.MinifigsOf(ref.ID)
	partRows := n.idx.PartsOf(ref.ID)

	v := model.SetVersion{
		Version:  ref.Version,
		Minifigs: make([]model.SetMinifig, 0, len(minifigRows)),
		Parts:    make([]model.SetPart, 0, len(partRows)),
	}

	for _, m := range minifigRows {
		v.Minifigs = append(v.Minifigs, model.SetMinifig{
			Number:   m.FigNum,
			Quantity: m.Quantity,
		})
	}

	for _, p := range partRows {
		if !n.idx.HasPart(p.PartNum) {
			n.report(Diagnostic{
				SetNumber:   setNum,
				InventoryID: ref.ID,
				Version:     ref.Version,
				PartNumber:  p.PartNum,
			})
			continue
		}
		url, err := n.url(p.ImgURL)
		if err != nil {
			return model.SetVersion{}, fmt.Errorf("part %s: %w", p.PartNum, err)
		}
		v.Parts = append(v.Parts, model.SetPart{
			Number:   p.PartNum,
			ColorID:  p.ColorID,
			Quantity: p.Quantity,
			IsSpare:  p.IsSpare,
			ImgURL:   url,
		})
	}
	return v, nil
}

func (n *normalizer) report(d Diagnostic) {
	n.diagnostics = append(n.diagnostics, d)
	if n.opts.OnDiagnostic != nil {
		n.opts.OnDiagnostic(d)
	}
}
