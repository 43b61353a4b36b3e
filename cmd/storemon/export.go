package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/storemon/storemon/internal/reportconv"
	api "github.com/storemon/storemon/lib-storemon"
)

type ExportCommand struct {
	InStream  io.Reader
	OutStream io.Writer
	ErrStream io.Writer
}

var defaultExportCommand = &ExportCommand{
	InStream:  os.Stdin,
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

const ExportHelp = `Storemon export -- Convert a report artifact to other format

Usage: storemon export [OPTIONS...] [INPUT...]

Options:
  -o, --output  Output file. (default stdout)

  -c, --csv     Convert to CSV. (default format)
  -x, --xlsx    Convert to XLSX.

  -h, --help    Show this help message and exit.
`

func (c ExportCommand) Run(args []string) int {
	flags := pflag.NewFlagSet("storemon export", pflag.ContinueOnError)

	outputPath := flags.StringP("output", "o", "", "Output file")

	toCsv := flags.BoolP("csv", "c", false, "Convert to CSV")
	toXlsx := flags.BoolP("xlsx", "x", false, "Convert to XLSX")

	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[2:]); err != nil {
		fmt.Fprintln(c.ErrStream, err)
		fmt.Fprintf(c.ErrStream, "\nPlease see `%s %s -h` for more information.\n", args[0], args[1])
		return 2
	}

	if *help {
		fmt.Fprint(c.OutStream, ExportHelp)
		return 0
	}

	if *toCsv && *toXlsx {
		fmt.Fprintln(c.ErrStream, "error: flags for output format can not use multiple in the same time.")
		return 2
	}

	var rows []api.ReportRow
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, path := range inputs {
		var in io.Reader
		if path == "" || path == "-" {
			in = c.InStream
		} else {
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(c.ErrStream, "error: failed to open input report file: %s\n", err)
				return 1
			}
			defer f.Close()
			in = f
		}

		rs, err := reportconv.FromCSV(in)
		if err != nil {
			fmt.Fprintf(c.ErrStream, "error: failed to read report: %s\n", err)
			return 1
		}
		rows = append(rows, rs...)
	}

	output := c.OutStream
	if *outputPath != "" && *outputPath != "-" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(c.ErrStream, "error: failed to open output file: %s\n", err)
			return 1
		}
		defer f.Close()
		output = f
	} else if *toXlsx && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		fmt.Fprintln(c.ErrStream, "error: can not write xlsx format to stdout. please redirect or use -o option.")
		return 2
	}

	var err error
	if *toXlsx {
		err = reportconv.ToXlsx(output, rows, time.Now())
	} else {
		err = reportconv.ToCSV(output, rows)
	}
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: %s\n", err)
		return 1
	}
	return 0
}
