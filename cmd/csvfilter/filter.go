package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/csvfilter/internal/config"
	"github.com/ivoronin/csvfilter/internal/csvio"
	"github.com/ivoronin/csvfilter/internal/filter"
	"github.com/ivoronin/csvfilter/internal/logger"
	"github.com/ivoronin/csvfilter/internal/output"
)

// Summary formats accepted by --summary.
const (
	summaryNone = ""
	summaryText = "text"
	summaryJSON = "json"
)

type filterFlags struct {
	config.Settings
	profile string
	summary string
}

func newFilterCmd() *cobra.Command {
	var f filterFlags

	cmd := &cobra.Command{
		Use:   "csvfilter --input FILE --and COLUMN:OPERATOR:VALUE...",
		Short: "Print the CSV rows that match every filter",
		Long: `Stream a delimited file and keep only the rows whose columns satisfy all
--and filters. Each filter is COLUMN:OPERATOR:VALUE where OPERATOR is
"contains" (substring) or "regex" (unanchored search). COLUMN is a header
name, or a 1-based column number with --no-header.

Rows too short to hold a filtered column are skipped and counted.`,
		Args: cobra.NoArgs,
		Example: `  csvfilter -i users.csv -a name:contains:Ali
  csvfilter -i users.csv -a name:contains:Alice -a 'status:regex:^active$' -o active.csv
  csvfilter -i data.tsv -d $'\t' --no-header -a 2:contains:b -v
  csvfilter -c profile.yaml --summary json`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.Input, config.FlagInput, "i", "", "Input CSV file")
	flags.StringVarP(&f.Output, config.FlagOutput, "o", "", "Output file (default: standard output)")
	flags.StringVarP(&f.Delimiter, config.FlagDelimiter, "d", string(csvio.DefaultDelimiter), "Field delimiter")
	flags.StringVarP(&f.QuoteChar, config.FlagQuoteChar, "q", string(csvio.DefaultQuote), "Quote character")
	flags.BoolVar(&f.NoHeader, config.FlagNoHeader, false, "Treat the first line as data; columns are 1-based numbers")
	flags.StringArrayVarP(&f.Filters, config.FlagFilter, "a", nil, "Filter COLUMN:OPERATOR:VALUE, all must match (repeatable)")
	flags.BoolVarP(&f.Verbose, config.FlagVerbose, "v", false, "Report row counts and skipped rows on stderr")
	flags.StringVarP(&f.profile, "config", "c", "", "YAML profile with default option values")
	flags.StringVar(&f.summary, "summary", summaryNone, "Print a run summary on stderr: text or json")

	return cmd
}

func runFilter(cmd *cobra.Command, f filterFlags) error {
	s := f.Settings
	if f.profile != "" {
		p, err := config.Load(f.profile)
		if err != nil {
			return err
		}
		p.Apply(&s, cmd.Flags().Changed)
	}

	format, err := summaryFormat(f.summary)
	if err != nil {
		return err
	}
	if s.Input == "" {
		return errors.New("input file is required (--input)")
	}

	dialect, err := parseDialect(s.Delimiter, s.QuoteChar)
	if err != nil {
		return err
	}

	bindings, err := filter.ParseBindings(s.Filters, s.NoHeader)
	if err != nil {
		return err
	}
	if len(bindings) == 0 {
		return errors.New("at least one filter is required (--and COLUMN:OPERATOR:VALUE)")
	}

	log := logger.New(cmd.ErrOrStderr(), s.Verbose)
	stats, err := filter.RunFiles(bindings, filter.FileOptions{
		Options: filter.Options{
			Dialect:  dialect,
			NoHeader: s.NoHeader,
			Logger:   log,
		},
		Input:  s.Input,
		Output: s.Output,
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if stats.Matched == 0 {
		log.Warn("0 rows matched")
	}
	log.Info("filter finished",
		"processed", stats.Processed,
		"matched", stats.Matched,
		"skipped", stats.Skipped,
		"rejected", stats.Rejected(),
	)

	if f.summary != summaryNone {
		summary := &output.Summary{Input: s.Input, Output: s.Output, Stats: stats}
		return output.Print(cmd.ErrOrStderr(), summary, format)
	}
	return nil
}

func summaryFormat(name string) (output.Format, error) {
	switch name {
	case summaryNone, summaryText:
		return output.FormatText, nil
	case summaryJSON:
		return output.FormatJSON, nil
	default:
		return 0, fmt.Errorf("invalid summary format %q (want text or json)", name)
	}
}

func parseDialect(delimiter, quote string) (csvio.Dialect, error) {
	d, err := csvio.ParseRune(config.FlagDelimiter, delimiter)
	if err != nil {
		return csvio.Dialect{}, err
	}
	q, err := csvio.ParseRune(config.FlagQuoteChar, quote)
	if err != nil {
		return csvio.Dialect{}, err
	}
	dialect := csvio.Dialect{Delimiter: d, Quote: q}
	return dialect, dialect.Validate()
}
