package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/rs/zerolog/log"

	"github.com/arloliu/warp"
	"github.com/arloliu/warp/compress"
	"github.com/arloliu/warp/decompose"
	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/format"
	"github.com/arloliu/warp/frame"
)

// Run executes one warp invocation: load config, read the input tables,
// compute, write the output table.
func Run(args []string) error {
	cfg, err := Load(args, os.Stderr)
	if err != nil {
		return err
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		return err
	}

	start := time.Now()
	switch cfg.Mode {
	case "dtw":
		err = runDTW(cfg)
	case "features":
		err = runFeatures(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if err != nil {
		logFailure(err)

		return err
	}

	log.Info().
		Str("mode", cfg.Mode).
		Str("out", cfg.Out).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	return nil
}

// logFailure reports the error with its class so callers can tell a
// malformed table from a degenerate-but-valid one at a glance.
func logFailure(err error) {
	event := log.Error().Err(err)
	switch {
	case errs.IsSchema(err):
		event = event.Str("class", "schema")
	case errs.IsComputation(err):
		event = event.Str("class", "computation")
	}
	event.Msg("run failed")
}

func runDTW(cfg *Config) error {
	mem := memory.NewGoAllocator()

	left, err := readTable(cfg.Left, mem, cfg)
	if err != nil {
		return err
	}
	defer left.Release()

	right, err := readTable(cfg.Right, mem, cfg)
	if err != nil {
		return err
	}
	defer right.Release()

	log.Debug().
		Int64("left_rows", left.NumRows()).
		Int64("right_rows", right.NumRows()).
		Int("workers", cfg.Workers).
		Msg("computing pairwise distances")

	out, err := warp.PairwiseDTW(left, right,
		warp.WithIDColumn(cfg.IDColumn),
		warp.WithValueColumn(cfg.ValueColumn),
		warp.WithWorkers(cfg.Workers),
		warp.WithAllocator(mem),
	)
	if err != nil {
		return err
	}
	defer out.Release()

	log.Info().Int64("pairs", out.NumRows()).Msg("pairwise distances computed")

	return writeTable(cfg.Out, cfg.Format, out)
}

func runFeatures(cfg *Config) error {
	mem := memory.NewGoAllocator()

	method, err := decompose.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	input, err := readTable(cfg.Left, mem, cfg)
	if err != nil {
		return err
	}
	defer input.Release()

	out, err := warp.DecomposeFeatures(input, cfg.Freq,
		warp.WithIDColumn(cfg.IDColumn),
		warp.WithValueColumn(cfg.ValueColumn),
		warp.WithMethod(method),
		warp.WithAllocator(mem),
	)
	if err != nil {
		return err
	}
	defer out.Release()

	log.Info().Int64("series", out.NumRows()).Msg("decomposition features computed")

	return writeTable(cfg.Out, cfg.Format, out)
}

// readTable loads a CSV table file, transparently decompressing it when
// the path carries a codec extension (.zst, .lz4, .s2).
func readTable(path string, mem memory.Allocator, cfg *Config) (arrow.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %q: %w", path, err)
	}

	compression := format.CompressionFromExt(filepath.Ext(path))
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	data, err = codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress input %q (%s): %w", path, compression, err)
	}

	rec, err := frame.ReadCSV(bytes.NewReader(data), mem, cfg.IDColumn, cfg.ValueColumn)
	if err != nil {
		return nil, fmt.Errorf("parse input %q: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("compression", compression.String()).
		Int64("rows", rec.NumRows()).
		Msg("input table loaded")

	return rec, nil
}

// writeTable serializes the record (CSV or Arrow IPC stream), compressing
// when the output path carries a codec extension.
func writeTable(path, outputFormat string, rec arrow.Record) error {
	var buf bytes.Buffer

	switch outputFormat {
	case "csv":
		if err := frame.WriteCSV(&buf, rec); err != nil {
			return fmt.Errorf("serialize output: %w", err)
		}
	case "arrow":
		writer := ipc.NewWriter(&buf, ipc.WithSchema(rec.Schema()))
		if err := writer.Write(rec); err != nil {
			_ = writer.Close()

			return fmt.Errorf("serialize output: %w", err)
		}
		if err := writer.Close(); err != nil {
			return fmt.Errorf("serialize output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}

	compression := format.CompressionFromExt(filepath.Ext(path))
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return err
	}
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("compress output %q (%s): %w", path, compression, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %q: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("compression", compression.String()).
		Int("bytes", len(data)).
		Msg("output table written")

	return nil
}
