// Command ingest builds the canonical food catalog from USDA FoodData
// Central export files and loads it into the catalog store.
//
// Usage:
//
//	ingest <data-dir> [--limit=N] [--dry-run] [--out=PATH]
//
// The data directory must contain food.csv, nutrient.csv, and
// food_nutrient.csv. Without --dry-run, a storage path must be configured
// (MEALSCAN_STORAGE_PATH or storage.path in config.yaml).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mealscan/backend/config"
	"github.com/mealscan/backend/internal/domain"
	"github.com/mealscan/backend/internal/infrastructure/sqlite"
	"github.com/mealscan/backend/internal/ingest"
)

type cliOptions struct {
	dataDir string
	limit   int
	dryRun  bool
	out     string
}

// parseArgs accepts flags before or after the data directory; flag.Parse
// alone stops at the first positional, so the tail is parsed a second time.
func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	fs.IntVar(&opts.limit, "limit", 0, "cap the number of emitted rows (0 = no cap)")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "build rows but skip catalog store persistence")
	fs.StringVar(&opts.out, "out", "", "write the built rows as a JSON array to this path")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return opts, fmt.Errorf("missing data directory")
	}
	opts.dataDir = rest[0]
	if len(rest) > 1 {
		if err := fs.Parse(rest[1:]); err != nil {
			return opts, err
		}
		if fs.NArg() != 0 {
			return opts, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
		}
	}

	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: ingest <data-dir> [--limit=N] [--dry-run] [--out=PATH]")
		os.Exit(1)
	}

	if err := run(opts.dataDir, opts.limit, opts.dryRun, opts.out); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(dataDir string, limit int, dryRun bool, outPath string) error {
	rows, err := ingest.Build(dataDir, ingest.Options{Limit: limit})
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := writeJSON(outPath, rows); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), outPath)
	} else {
		fmt.Printf("Prepared %d rows\n", len(rows))
	}

	if dryRun {
		fmt.Println("Dry run: skipping catalog store upsert")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage path is required outside dry-run mode (set MEALSCAN_STORAGE_PATH)")
	}

	store, err := sqlite.NewStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	committed, err := ingest.UpsertChunked(context.Background(), store, rows, func(done, total int) {
		fmt.Printf("Upserted %d / %d\n", done, total)
	})
	if err != nil {
		return fmt.Errorf("%w (%d rows committed)", err, committed)
	}

	return nil
}

func writeJSON(path string, rows []domain.CanonicalFood) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
