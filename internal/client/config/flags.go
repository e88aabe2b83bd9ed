package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/flagx"
)

var knownFlags = []string{
	"-key", "-base-url", "-model", "-tts-model", "-voice", "-timeout",
	"-store", "-db", "-dsn", "-data",
	"-debounce", "-history-limit", "-log-level",
	"-player", "-dictation",
	"-archive", "-archive-dir", "-s3-bucket", "-s3-region", "-s3-endpoint",
}

// parseFlags populates cfg from the flags in args. Unknown flags (for
// example -c, which parseJson owns) are filtered out first.
//
//	-timeout   request timeout in seconds
//	-debounce  buffer persist debounce in milliseconds
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("toneflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIKey, "key", cfg.APIKey, "model service API key")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "model service base URL")
	fs.StringVar(&cfg.TextModel, "model", cfg.TextModel, "text model")
	fs.StringVar(&cfg.SpeechModel, "tts-model", cfg.SpeechModel, "speech model")
	fs.StringVar(&cfg.Voice, "voice", cfg.Voice, "prebuilt voice name")
	timeout := fs.Int("timeout", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")

	fs.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "store driver: sqlite, postgres or memory")
	fs.StringVar(&cfg.StorePath, "db", cfg.StorePath, "sqlite database file")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "postgres DSN")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "data directory")

	debounce := fs.Int("debounce", int(cfg.DebounceInterval.Milliseconds()), "buffer persist debounce (in milliseconds)")
	fs.IntVar(&cfg.HistoryLimit, "history-limit", cfg.HistoryLimit, "history entries kept per user")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	fs.StringVar(&cfg.PlayerCommand, "player", cfg.PlayerCommand, "audio player command")
	fs.StringVar(&cfg.DictationCommand, "dictation", cfg.DictationCommand, "speech-to-text command")

	fs.StringVar(&cfg.ArchiveKind, "archive", cfg.ArchiveKind, "speech archive: none, dir or s3")
	fs.StringVar(&cfg.ArchiveDir, "archive-dir", cfg.ArchiveDir, "speech archive directory")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "speech archive bucket")
	fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "speech archive region")
	fs.StringVar(&cfg.S3BaseEndpoint, "s3-endpoint", cfg.S3BaseEndpoint, "S3-compatible endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.DebounceInterval = time.Duration(*debounce) * time.Millisecond
	return nil
}
