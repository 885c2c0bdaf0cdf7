package main

import (
	"fmt"

	"setup-mirrors/internal/config"
	"setup-mirrors/internal/diagnostic"
	"setup-mirrors/internal/export"
	"setup-mirrors/internal/pairing"
)

func runCheck(args []string, e env) error {
	cfg, err := loadConfig("check", args, e, false)
	if err != nil {
		return err
	}

	if err := cfg.ValidateCheck(); err != nil {
		return err
	}

	return check(cfg, e)
}

// check verifies the links of a table without writing it. Every problem
// goes to stdout, one per line.
func check(cfg *config.Config, e env) error {
	tbl, err := readTable(cfg.Input, e.stdin)
	if err != nil {
		return err
	}

	e.log.Info().Str("input", cfg.Input).Int("records", tbl.Len()).Msg("table loaded")

	res := pairing.Check(tbl.Store, pairing.Options{StageSeparator: cfg.StageSeparator, Logger: &e.log})

	for _, group := range [][]diagnostic.Diagnostic{res.Diagnostics.Errors, res.Diagnostics.Warnings} {
		for _, d := range group {
			fmt.Fprintln(e.stdout, d)

			for _, s := range d.Suggestions {
				fmt.Fprintf(e.stdout, "\t%s\n", s)
			}
		}
	}

	if cfg.Report != "" {
		r := &export.Report{Input: cfg.Input, Check: &res.Summary, Diagnostics: res.Diagnostics}
		if err := export.WriteReport(cfg.Report, r); err != nil {
			return err
		}
	}

	fmt.Fprintln(e.stderr, res.Summary)

	if res.Summary.Problems > 0 || res.Diagnostics.HasErrors() {
		return fmt.Errorf("%d link problems found", res.Summary.Problems+res.Summary.CodecFailures)
	}

	return nil
}
