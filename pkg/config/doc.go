// Package config loads the process configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or more `.env` files (the default `.env` in the
//     working directory when none are given, ignored if missing).
//   - Load parses the environment into any struct annotated with `env` tags.
//   - New combines both and returns the validated service Config.
//
// # Keys
//
//	APP_ENV           development
//	SERVICE_NAME      reqschema
//	HTTP_ADDR         :8080
//	LOG_LEVEL         info (debug, info, warn, error)
//	LOG_FORMAT        json (json, text)
//	CATALOG_FILE      optional YAML file with extra entity catalogs
//	MAX_BODY_BYTES    1048576
//	SHUTDOWN_TIMEOUT  5s
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrInvalidConfig`  – values parsed but failed Config.Validate.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
