package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmichkarev/rrule/internal/output"
	"github.com/nmichkarev/rrule/recurrence"
)

func newDescribeCommand(a *app) *cobra.Command {
	var (
		next int
		from string
	)

	cmd := &cobra.Command{
		Use:   "describe [RULE...]",
		Short: "Describe recurrence rules",
		Long: `Describe each RULE given as an argument, or each line of standard input
when there are none. A DTSTART line is joined with the RRULE line after it.
Blank lines and lines starting with # are ignored.`,
		Example: `  rrule2text describe "FREQ=WEEKLY;BYDAY=MO,WE"
  rrule2text describe --lang ru "RRULE:FREQ=MONTHLY;BYDAY=-1FR"
  printf 'FREQ=DAILY\nFREQ=YEARLY\n' | rrule2text describe -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			rules := args
			if len(rules) == 0 {
				var err error
				rules, err = readRules(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("next") {
				next = a.cfg.Preview.Count
			}
			start := time.Now()
			if from != "" {
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				start = t
			}

			records, failed := a.describe(cmd.Context(), rules, next, start)
			if err := a.encoder.Encode(cmd.OutOrStdout(), records); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d rules could not be described", failed, len(rules))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&next, "next", "n", 0, "also list the next N occurrences")
	cmd.Flags().StringVar(&from, "from", "", "RFC 3339 start of the occurrence preview (default: now)")

	return cmd
}

func (a *app) describe(ctx context.Context, rules []string, next int, from time.Time) ([]output.Record, int) {
	results := a.engine.DescribeAll(ctx, rules)

	records := make([]output.Record, 0, len(rules))
	failed := 0
	for _, rule := range rules {
		rec := output.Record{Rule: rule}

		d, err := results[rule].Get()
		if err != nil {
			a.logger.Warn("failed to describe rule", "rule", rule, "error", err)
			rec.Error = err.Error()
			failed++
			records = append(records, rec)
			continue
		}
		rec.Text = d.Text
		rec.Approximate = d.Approximate

		if next > 0 {
			occurrences, err := a.engine.Next(ctx, recurrence.RecurrenceInfo{RRULE: rule}, from, next)
			if err != nil {
				a.logger.Warn("failed to preview occurrences", "rule", rule, "error", err)
			}
			rec.Next = occurrences
		}
		records = append(records, rec)
	}
	return records, failed
}

func readRules(r io.Reader) ([]string, error) {
	var (
		rules   []string
		pending string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), "DTSTART") {
			pending = line
			continue
		}
		if pending != "" {
			line = pending + "\n" + line
			pending = ""
		}
		rules = append(rules, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	if pending != "" {
		return nil, fmt.Errorf("DTSTART without a following RRULE: %q", pending)
	}
	return rules, nil
}
