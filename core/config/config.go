package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"briq-utils/core/catalog"
	"briq-utils/core/database"
	"briq-utils/core/logger"
	"briq-utils/core/mirror"
	"briq-utils/core/normalize"
	"briq-utils/core/server"
	"briq-utils/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations, one per component.
type Config struct {
	// Catalog holds configuration for reading and normalizing the tables.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Mirror holds configuration for the asset mirror.
	Mirror mirror.Config `mapstructure:"mirror"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the export database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CATALOG_WORKDIR -> catalog.workdir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports settings that would only fail later, deep inside a command.
func (c *Config) Validate() error {
	var errs []error
	if _, err := normalize.ParseVersionOrder(c.Catalog.VersionOrder); err != nil {
		errs = append(errs, fmt.Errorf("catalog.version_order: %w", err))
	}
	if c.Catalog.Workdir == "" {
		errs = append(errs, errors.New("catalog.workdir is empty"))
	}
	if c.Mirror.Workers < 1 {
		errs = append(errs, fmt.Errorf("mirror.workers must be positive, got %d", c.Mirror.Workers))
	}
	if c.Mirror.RatePerSecond < 0 {
		errs = append(errs, fmt.Errorf("mirror.rate_per_second must not be negative, got %g", c.Mirror.RatePerSecond))
	}
	switch c.Database.Driver {
	case "", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
