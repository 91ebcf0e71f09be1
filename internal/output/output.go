package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("output: unknown format")

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	XML  Format = "xml"
)

// ParseFormat accepts text, yaml (or yml) and xml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "xml":
		return XML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Record is one described rule.
type Record struct {
	Rule        string      `yaml:"rule"`
	UID         string      `yaml:"uid,omitempty"`
	Summary     string      `yaml:"summary,omitempty"`
	Text        string      `yaml:"text,omitempty"`
	Approximate bool        `yaml:"approximate,omitempty"`
	Next        []time.Time `yaml:"next,omitempty"`
	Error       string      `yaml:"error,omitempty"`
}

type Encoder interface {
	Encode(w io.Writer, records []Record) error
}

func NewEncoder(f Format) Encoder {
	switch f {
	case YAML:
		return yamlEncoder{}
	case XML:
		return xmlEncoder{}
	default:
		return textEncoder{}
	}
}

// textEncoder writes one line per record, prefixed with the component when
// there is one, and indents previewed occurrences below it.
type textEncoder struct{}

func (textEncoder) Encode(w io.Writer, records []Record) error {
	for _, r := range records {
		var line strings.Builder
		if r.UID != "" {
			line.WriteString(r.UID)
			if r.Summary != "" {
				fmt.Fprintf(&line, " (%s)", r.Summary)
			}
			line.WriteString(": ")
		}
		if r.Error != "" {
			fmt.Fprintf(&line, "error: %s", r.Error)
		} else {
			line.WriteString(r.Text)
		}

		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
		for _, t := range r.Next {
			if _, err := fmt.Fprintf(w, "  %s\n", t.Format(time.RFC3339)); err != nil {
				return err
			}
		}
	}
	return nil
}

type yamlEncoder struct{}

func (yamlEncoder) Encode(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
