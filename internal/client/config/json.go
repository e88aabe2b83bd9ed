package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/toneflow/internal/flagx"
	"github.com/dmitrijs2005/toneflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero" so a partial file only
// overrides what it names.
type JsonConfig struct {
	APIKey         *string         `json:"api_key"`
	BaseURL        *string         `json:"base_url"`
	TextModel      *string         `json:"text_model"`
	SpeechModel    *string         `json:"speech_model"`
	Voice          *string         `json:"voice"`
	RequestTimeout *timex.Duration `json:"request_timeout"`

	StoreDriver *string `json:"store_driver"`
	StorePath   *string `json:"store_path"`
	DatabaseDSN *string `json:"database_dsn"`
	DataDir     *string `json:"data_dir"`

	DebounceInterval *timex.Duration `json:"debounce_interval"`
	HistoryLimit     *int            `json:"history_limit"`
	LogLevel         *string         `json:"log_level"`

	PlayerCommand    *string `json:"player_command"`
	ClipboardPaste   *string `json:"clipboard_paste"`
	ClipboardCopy    *string `json:"clipboard_copy"`
	DictationCommand *string `json:"dictation_command"`

	ArchiveKind    *string `json:"archive_kind"`
	ArchiveDir     *string `json:"archive_dir"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by
// -c/-config in args or $TONEFLOW_CONFIG. No file, no changes.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.APIKey, jc.APIKey)
	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.TextModel, jc.TextModel)
	setString(&cfg.SpeechModel, jc.SpeechModel)
	setString(&cfg.Voice, jc.Voice)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.DataDir, jc.DataDir)

	if jc.DebounceInterval != nil {
		cfg.DebounceInterval = jc.DebounceInterval.Duration
	}
	if jc.HistoryLimit != nil {
		cfg.HistoryLimit = *jc.HistoryLimit
	}
	setString(&cfg.LogLevel, jc.LogLevel)

	setString(&cfg.PlayerCommand, jc.PlayerCommand)
	setString(&cfg.ClipboardPaste, jc.ClipboardPaste)
	setString(&cfg.ClipboardCopy, jc.ClipboardCopy)
	setString(&cfg.DictationCommand, jc.DictationCommand)

	setString(&cfg.ArchiveKind, jc.ArchiveKind)
	setString(&cfg.ArchiveDir, jc.ArchiveDir)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
