// Package config loads runtime configuration for the toneflow CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or $TONEFLOW_CONFIG.
//  3. A .env file in the working directory, then the process environment.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "500ms" or
// integer nanoseconds:
//
//	{
//	  "api_key": "...",
//	  "text_model": "gemini-2.5-flash",
//	  "request_timeout": "60s",
//	  "store_driver": "sqlite",
//	  "debounce_interval": "500ms",
//	  "archive_kind": "s3",
//	  "s3_bucket": "speech"
//	}
//
// # Environment
//
//	GEMINI_API_KEY or API_KEY   model service key
//	TONEFLOW_BASE_URL           model service base URL
//	TONEFLOW_STORE, TONEFLOW_DSN, TONEFLOW_DATA_DIR, TONEFLOW_LOG_LEVEL
//	TONEFLOW_S3_ACCESS_KEY, TONEFLOW_S3_SECRET_KEY
package config
