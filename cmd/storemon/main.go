package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/spf13/pflag"

	"github.com/storemon/storemon/internal/meta"
	"github.com/storemon/storemon/internal/report"
	"github.com/storemon/storemon/internal/schedule"
	"github.com/storemon/storemon/internal/store"
)

type StoremonCommand struct {
	OutStream io.Writer
	ErrStream io.Writer

	ListenPort  int
	ReportDir   string
	Schedule    string
	Workers     int
	ShowVersion bool
	ShowHelp    bool

	Sched schedule.Schedule
}

var defaultStoremonCommand = &StoremonCommand{
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

//go:embed help.txt
var helpText string

func (cmd *StoremonCommand) PrintUsage(detail bool) {
	tmpl := template.Must(template.New("help.txt").Parse(helpText))
	tmpl.Execute(cmd.ErrStream, map[string]interface{}{
		"Version": meta.Version,
		"Workers": report.DefaultWorkers,
		"Short":   !detail,
	})
}

func (cmd *StoremonCommand) ParseArgs(args []string) (exitCode int) {
	flags := pflag.NewFlagSet("storemon", pflag.ContinueOnError)

	flags.IntVarP(&cmd.ListenPort, "port", "p", 9000, "HTTP listen port")
	flags.StringVarP(&cmd.ReportDir, "report-dir", "d", "./reports", "Directory to save report files")
	flags.StringVarP(&cmd.Schedule, "schedule", "s", "", "Cron schedule to generate reports automatically")
	flags.IntVarP(&cmd.Workers, "workers", "w", report.DefaultWorkers, "Number of concurrent per-store workers")
	flags.BoolVarP(&cmd.ShowVersion, "version", "v", false, "Show version")
	flags.BoolVarP(&cmd.ShowHelp, "help", "h", false, "Show help message")

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}

	if cmd.ShowVersion || cmd.ShowHelp {
		return 0
	}

	if cmd.Workers < 1 {
		fmt.Fprintln(cmd.ErrStream, "invalid argument: the number of workers must be at least 1.")
		return 2
	}

	if cmd.Schedule != "" {
		var err error
		cmd.Sched, err = schedule.Parse(cmd.Schedule)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "invalid argument: invalid schedule %q: %s\n", cmd.Schedule, err)
			return 2
		}
	}

	if rest := flags.Args(); len(rest) > 0 {
		fmt.Fprintf(cmd.ErrStream, "unknown argument: %s\n", rest[0])
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}

	return 0
}

func (cmd *StoremonCommand) PrintVersion() {
	fmt.Fprintf(cmd.OutStream, "Storemon version %s (%s)\n", meta.Version, meta.Commit)
}

func (cmd *StoremonCommand) Run(args []string) (exitCode int) {
	if code := cmd.ParseArgs(args); code != 0 {
		return code
	}

	if cmd.ShowVersion {
		cmd.PrintVersion()
		return 0
	}

	if cmd.ShowHelp {
		cmd.PrintUsage(true)
		return 0
	}

	cfg, err := store.ReadDBConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: invalid database configuration: %s\n", err)
		return 2
	}

	db, err := store.ConnectAndInitialize(&cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: failed to connect database: %s\n", err)
		return 1
	}

	return cmd.RunServer(store.New(db))
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "load":
			os.Exit(defaultLoadCommand.Run(os.Args))
		case "export", "conv":
			os.Exit(defaultExportCommand.Run(os.Args))
		}
	}

	os.Exit(defaultStoremonCommand.Run(os.Args))
}
