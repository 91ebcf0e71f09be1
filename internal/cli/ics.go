package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmichkarev/rrule/internal/httpclient"
	"github.com/nmichkarev/rrule/internal/output"
)

func newICSCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics FILE|URL",
		Short: "Describe every recurring component of an iCalendar file",
		Long: `Describe every recurring VEVENT, VTODO and VJOURNAL in FILE. Use - to read
standard input. An http, https or webcal URL is downloaded first, with basic
auth when --user and --password are set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			r, err := a.openCalendar(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer r.Close()

			components, err := a.engine.DescribeCalendar(cmd.Context(), r)
			if err != nil {
				return err
			}

			records := make([]output.Record, 0, len(components))
			failed := 0
			for _, c := range components {
				rec := output.Record{
					Rule:        c.Rule,
					UID:         c.UID,
					Summary:     c.Summary,
					Text:        c.Description.Text,
					Approximate: c.Description.Approximate,
				}
				if c.Err != nil {
					a.logger.Warn("failed to describe component", "uid", c.UID, "error", c.Err)
					rec.Error = c.Err.Error()
					failed++
				}
				records = append(records, rec)
			}

			if err := a.encoder.Encode(cmd.OutOrStdout(), records); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d components could not be described", failed, len(components))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("user", "", "basic auth username for URL feeds")
	flags.String("password", "", "basic auth password for URL feeds")
	flags.Duration("timeout", 0, "timeout for URL feeds (default 30s)")
	for key, flag := range map[string]string{
		"feed.username": "user",
		"feed.password": "password",
		"feed.timeout":  "timeout",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	return cmd
}

// openCalendar resolves the ics argument to a reader: "-" for stdin, a URL
// for a remote feed, anything else for a local file.
func (a *app) openCalendar(ctx context.Context, source string, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case source == "-":
		return io.NopCloser(stdin), nil
	case httpclient.IsFeedURL(source):
		return a.feedClient().GetCalendar(ctx, source)
	default:
		return os.Open(source)
	}
}

func (a *app) feedClient() httpclient.CalendarClient {
	client := &http.Client{Timeout: a.cfg.Feed.Timeout}
	if a.cfg.Feed.Username != "" && a.cfg.Feed.Password != "" {
		client.Transport = httpclient.NewBasicAuthTransport(a.cfg.Feed.Username, a.cfg.Feed.Password, nil, a.logger)
	}
	return httpclient.NewCalendarClient(client, a.logger)
}
