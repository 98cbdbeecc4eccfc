package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/basicflag"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const (
	// EnvPrefix selects which environment variables configure warp,
	// e.g. WARP__WORKERS=8 or WARP__LOG_LEVEL=debug.
	EnvPrefix = "WARP__"

	configDelimiter = "."
)

// Config carries all CLI settings after the koanf layers are merged:
// confmap defaults, then WARP__* environment variables, then command-line
// flags.
type Config struct {
	Mode        string
	Left        string
	Right       string
	Out         string
	IDColumn    string
	ValueColumn string
	Workers     int
	Format      string
	LogLevel    string
	Freq        int
	Method      string
}

var defaults = map[string]interface{}{
	"mode":      "dtw",
	"left":      "",
	"right":     "",
	"out":       "",
	"id-col":    "unique_id",
	"value-col": "y",
	"workers":   0,
	"format":    "csv",
	"log-level": "info",
	"freq":      0,
	"method":    "additive",
}

// Load parses args and merges the three config layers.
//
// Flags are registered with the default-plus-environment value as their
// flag default, so an unset flag carries the lower layers through the
// basicflag provider and an explicit flag wins.
func Load(args []string, output io.Writer) (*Config, error) {
	k := koanf.New(configDelimiter)

	if err := k.Load(confmap.Provider(defaults, configDelimiter), nil); err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	// WARP__VALUE_COL=value maps to the "value-col" key.
	envProvider := env.Provider(EnvPrefix, configDelimiter, func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment config: %w", err)
	}

	fs := flag.NewFlagSet("warp", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.String("mode", k.String("mode"), "operation mode: dtw or features")
	fs.String("left", k.String("left"), "path of the first (left) input table")
	fs.String("right", k.String("right"), "path of the second (right) input table, dtw mode only")
	fs.String("out", k.String("out"), "path of the output table")
	fs.String("id-col", k.String("id-col"), "identifier column name")
	fs.String("value-col", k.String("value-col"), "value column name")
	fs.Int("workers", k.Int("workers"), "pairwise worker count, 0 means GOMAXPROCS")
	fs.String("format", k.String("format"), "output format: csv or arrow")
	fs.String("log-level", k.String("log-level"), "log level: debug, info, warn, error")
	fs.Int("freq", k.Int("freq"), "seasonal frequency, features mode only")
	fs.String("method", k.String("method"), "decomposition method: additive or multiplicative")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := k.Load(basicflag.Provider(fs, configDelimiter), nil); err != nil {
		return nil, fmt.Errorf("load flag config: %w", err)
	}

	cfg := &Config{
		Mode:        k.String("mode"),
		Left:        k.String("left"),
		Right:       k.String("right"),
		Out:         k.String("out"),
		IDColumn:    k.String("id-col"),
		ValueColumn: k.String("value-col"),
		Workers:     k.Int("workers"),
		Format:      k.String("format"),
		LogLevel:    k.String("log-level"),
		Freq:        k.Int("freq"),
		Method:      k.String("method"),
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Mode {
	case "dtw":
		if c.Left == "" || c.Right == "" {
			return fmt.Errorf("dtw mode requires -left and -right input paths")
		}
	case "features":
		if c.Left == "" {
			return fmt.Errorf("features mode requires a -left input path")
		}
		if c.Freq == 0 {
			return fmt.Errorf("features mode requires -freq")
		}
	default:
		return fmt.Errorf("unknown mode %q, want dtw or features", c.Mode)
	}

	if c.Out == "" {
		return fmt.Errorf("an -out path is required")
	}
	if c.Format != "csv" && c.Format != "arrow" {
		return fmt.Errorf("unknown format %q, want csv or arrow", c.Format)
	}

	return nil
}
