package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/storemon/storemon/internal/store"
)

type LoadCommand struct {
	OutStream io.Writer
	ErrStream io.Writer
}

var defaultLoadCommand = &LoadCommand{
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

const LoadHelp = `Storemon load -- Seed the database from CSV files

Usage: storemon load [OPTIONS...]

Options:
      --status     Path to the status observation CSV.
      --hours      Path to the business hours CSV.
      --timezones  Path to the store timezone CSV.

  -h, --help       Show this help message and exit.

A table that already holds rows is left untouched, so it is safe to run
this command more than once.
`

func (c LoadCommand) Run(args []string) int {
	flags := pflag.NewFlagSet("storemon load", pflag.ContinueOnError)

	statusPath := flags.String("status", "", "Path to the status observation CSV")
	hoursPath := flags.String("hours", "", "Path to the business hours CSV")
	timezonePath := flags.String("timezones", "", "Path to the store timezone CSV")

	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[2:]); err != nil {
		fmt.Fprintln(c.ErrStream, err)
		fmt.Fprintf(c.ErrStream, "\nPlease see `%s %s -h` for more information.\n", args[0], args[1])
		return 2
	}

	if *help {
		fmt.Fprint(c.OutStream, LoadHelp)
		return 0
	}

	if *statusPath == "" || *hoursPath == "" || *timezonePath == "" {
		fmt.Fprintln(c.ErrStream, "error: the --status, --hours, and --timezones options are all required.")
		return 2
	}

	cfg, err := store.ReadDBConfig()
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: invalid database configuration: %s\n", err)
		return 2
	}

	db, err := store.ConnectAndInitialize(&cfg)
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: failed to connect database: %s\n", err)
		return 1
	}

	result, err := store.New(db).LoadSeedCSV(context.Background(), *statusPath, *hoursPath, *timezonePath)
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: %s\n", err)
		return 1
	}

	c.printCount("status observations", result.Observations)
	c.printCount("business hours", result.Hours)
	c.printCount("store timezones", result.Timezones)

	return 0
}

func (c LoadCommand) printCount(label string, count int) {
	if count < 0 {
		fmt.Fprintf(c.OutStream, "%s: already loaded, skipped\n", label)
	} else {
		fmt.Fprintf(c.OutStream, "%s: %s rows\n", label, humanize.Comma(int64(count)))
	}
}
