package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/jspr/docloader"
	"github.com/ardnew/jspr/lang"
)

// Fmt re-emits a loaded document as canonicalized JSON or YAML.
type Fmt struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format" short:"f"`
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the fmt command.
func (c *Fmt) Run(ctx context.Context) error {
	var (
		file *os.File
		err  error
	)

	if c.Source == "-" {
		file = os.Stdin
	} else {
		file, err = os.Open(c.Source)
		if err != nil {
			return err
		}

		defer file.Close()
	}

	doc, err := docloader.LoadReader(file)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", c.Format))
	}

	var out string

	switch c.Format {
	case "yaml":
		out, err = lang.FormatYAML(doc)
	default:
		out, err = lang.FormatJSON(doc)
	}

	if err != nil {
		return ErrFormat.With(slog.String("format", c.Format)).Wrap(err)
	}

	fmt.Println(out)

	return nil
}
