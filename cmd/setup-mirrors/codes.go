package main

import (
	"bufio"
	"fmt"
	"strings"

	"setup-mirrors/internal/mirror"
	"setup-mirrors/internal/piece"
)

func mirrorCode(code string) (string, error) {
	return mirror.Code(code)
}

func clearCode(code string) (string, error) {
	return mirror.Canonical(code)
}

// sortSequence orders every whitespace separated sequence of line.
func sortSequence(line string) (string, error) {
	fields := strings.Fields(line)

	for i, seq := range fields {
		parsed, err := piece.Parse(seq)
		if err != nil {
			return "", err
		}

		fields[i] = parsed.Canonical().String()
	}

	return strings.Join(fields, " "), nil
}

// runEach applies fn to every argument, or to every non-blank stdin line
// when there are none, printing one result per line. A failing value is
// reported and the rest are still processed.
func runEach(args []string, e env, fn func(string) (string, error)) error {
	values := args

	if len(values) == 0 {
		scanner := bufio.NewScanner(e.stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				values = append(values, line)
			}
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	failed := 0

	for _, v := range values {
		out, err := fn(v)
		if err != nil {
			failed++
			e.log.Error().Err(err).Str("value", v).Msg("skipped")

			continue
		}

		fmt.Fprintln(e.stdout, out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values failed", failed, len(values))
	}

	return nil
}
