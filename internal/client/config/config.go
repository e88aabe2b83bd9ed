package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/filex"
)

// Store drivers.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Archive kinds for synthesized speech.
const (
	ArchiveNone = "none"
	ArchiveDir  = "dir"
	ArchiveS3   = "s3"
)

// Config holds runtime settings for the toneflow CLI.
type Config struct {
	// Model service.
	APIKey         string
	BaseURL        string
	TextModel      string
	SpeechModel    string
	Voice          string
	RequestTimeout time.Duration

	// Local key-value store.
	StoreDriver string
	StorePath   string
	DatabaseDSN string
	DataDir     string

	DebounceInterval time.Duration
	HistoryLimit     int
	LogLevel         string

	// Platform capabilities, as shell commands.
	PlayerCommand    string
	ClipboardPaste   string
	ClipboardCopy    string
	DictationCommand string

	// Speech archive.
	ArchiveKind    string
	ArchiveDir     string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://generativelanguage.googleapis.com"
	c.TextModel = "gemini-2.5-flash"
	c.SpeechModel = "gemini-2.5-flash-preview-tts"
	c.Voice = "Kore"
	c.RequestTimeout = 60 * time.Second

	c.StoreDriver = StoreSQLite
	c.DataDir = filex.DefaultDataDir()
	c.StorePath = ""

	c.DebounceInterval = 500 * time.Millisecond
	c.HistoryLimit = common.DefaultHistoryLimit
	c.LogLevel = "warn"

	if runtime.GOOS == "darwin" {
		c.PlayerCommand = "afplay"
		c.ClipboardPaste = "pbpaste"
		c.ClipboardCopy = "pbcopy"
	} else {
		c.PlayerCommand = "aplay -q"
		c.ClipboardPaste = "xclip -selection clipboard -o"
		c.ClipboardCopy = "xclip -selection clipboard -i"
	}

	c.ArchiveKind = ArchiveNone
	c.S3Bucket = "toneflow"
	c.S3Region = "us-east-1"
}

// SQLitePath returns the sqlite file path, defaulting to toneflow.db in
// the data directory.
func (c *Config) SQLitePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return filepath.Join(c.DataDir, "toneflow.db")
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case StoreSQLite, StoreMemory:
	case StorePostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("postgres store requires a DSN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.StoreDriver))
	}
	switch c.ArchiveKind {
	case ArchiveNone, ArchiveDir, ArchiveS3:
	default:
		errs = append(errs, fmt.Errorf("unknown archive kind %q", c.ArchiveKind))
	}
	if c.HistoryLimit <= 0 {
		errs = append(errs, errors.New("history limit must be positive"))
	}
	if c.DebounceInterval < 0 {
		errs = append(errs, errors.New("debounce interval must not be negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, then overlays the JSON file,
// the .env file and environment, and finally the flags in args (usually
// os.Args[1:]). Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	parseEnv(cfg, ".env")
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is LoadConfig(os.Args[1:]) that exits on error.
func MustLoad() *Config {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}
