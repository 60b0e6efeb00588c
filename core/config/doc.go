// Package config provides configuration management for the site server.
//
// It utilizes Viper for loading configuration from environment variables, with
// an optional .env file overlaid first.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: listen port and HTTP limits
//   - Static: file source (local directory or bucket) and default document
//   - Storage: S3/MinIO credentials and bucket settings for the bucket source
//   - Newsletter: provider endpoint, publication, API key and redirect target
//   - Log: Logging level and format
//
// Every key maps to an upper-cased environment variable (newsletter.api_key ->
// NEWSLETTER_API_KEY). Fields with an env tag also accept the listed names, so
// the deployment variables PORT, BEEHIIV_API_KEY and BEEHIIV_PUBLICATION_ID work.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
