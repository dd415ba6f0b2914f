// Package config provides configuration management for briq-utils.
//
// Values come from environment variables and an optional .env file, loaded
// with godotenv and mapped onto nested keys by Viper.
//
// # Configuration Structure
//
// The Config struct is divided into subsections, each owned by its package:
//   - Catalog: table directory, URL prefixes, version order
//   - Mirror: asset cache directory, worker count, rate limit
//   - Server: HTTP server settings (port, API key)
//   - Database: export database driver and connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Workdir)
package config
