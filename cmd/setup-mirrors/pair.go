package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"setup-mirrors/internal/catalog"
	"setup-mirrors/internal/config"
	"setup-mirrors/internal/export"
	"setup-mirrors/internal/pairing"
)

// stdio is the path that selects stdin or stdout.
const stdio = "-"

func runPair(ctx context.Context, args []string, e env) error {
	cfg, err := loadConfig("pair", args, e, true)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return pair(ctx, cfg, e)
}

// loadConfig parses the flags of a table command. Flags given on the
// command line override the configuration file. Output flags are only
// registered when withOutputs is set.
func loadConfig(name string, args []string, e env, withOutputs bool) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	configPath := fs.String("config", "", "YAML or TOML run configuration")
	input := fs.String("in", "", "input table, - for stdin")
	report := fs.String("report", "", "YAML report of the pass")
	separator := fs.String("stage-separator", "", "separator of multi-stage builds")

	var output, database *string
	if withOutputs {
		output = fs.String("out", "", "output table, - for stdout")
		database = fs.String("db", "", "SQLite database to export the paired table to")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, err
		}

		cfg = *loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *input
		case "out":
			cfg.Output = *output
		case "db":
			cfg.Database = *database
		case "report":
			cfg.Report = *report
		case "stage-separator":
			cfg.StageSeparator = *separator
		}
	})

	return &cfg, nil
}

func pair(ctx context.Context, cfg *config.Config, e env) error {
	tbl, err := readTable(cfg.Input, e.stdin)
	if err != nil {
		return err
	}

	e.log.Info().Str("input", cfg.Input).Int("records", tbl.Len()).Msg("table loaded")

	res := pairing.Pair(tbl.Store, pairing.Options{StageSeparator: cfg.StageSeparator, Logger: &e.log})

	if err := writeTable(cfg.Output, e.stdout, tbl); err != nil {
		return err
	}

	if cfg.Database != "" {
		if err := export.SQLite(ctx, cfg.Database, tbl); err != nil {
			return fmt.Errorf("exporting to %s: %w", cfg.Database, err)
		}

		e.log.Info().Str("database", cfg.Database).Msg("table exported")
	}

	if cfg.Report != "" {
		r := &export.Report{Input: cfg.Input, Summary: &res.Summary, Diagnostics: res.Diagnostics}
		if err := export.WriteReport(cfg.Report, r); err != nil {
			return err
		}
	}

	fmt.Fprintln(e.stderr, res.Summary)

	if err := res.Diagnostics.Error(); err != nil {
		return fmt.Errorf("%d setup codes could not be mirrored: %w", res.Summary.CodecFailures, err)
	}

	return nil
}

func readTable(path string, stdin io.Reader) (*catalog.Table, error) {
	if path == stdio {
		tbl, err := catalog.Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return tbl, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	tbl, err := catalog.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return tbl, nil
}

func writeTable(path string, stdout io.Writer, tbl *catalog.Table) (err error) {
	if path == stdio {
		return catalog.Write(stdout, tbl)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := catalog.Write(f, tbl); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
