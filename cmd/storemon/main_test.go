package main_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/storemon/storemon/cmd/storemon"
)

func MakeTestCommand(t testing.TB) (*main.StoremonCommand, *bytes.Buffer) {
	t.Helper()

	buf := bytes.NewBuffer([]byte{})

	return &main.StoremonCommand{
		OutStream: buf,
		ErrStream: buf,
	}, buf
}

func TestStoremonCommand_ParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Args     []string
		Pattern  string
		ExitCode int
	}{
		{
			Args:     []string{"storemon"},
			Pattern:  `^$`,
			ExitCode: 0,
		},
		{
			Args:     []string{"storemon", "--no-such-option"},
			Pattern:  "^unknown flag: --no-such-option\n\nPlease see `storemon -h` for more information\\.\n$",
			ExitCode: 2,
		},
		{
			Args:     []string{"storemon", "-v"},
			Pattern:  `^$`,
			ExitCode: 0,
		},
		{
			Args:     []string{"storemon", "-h"},
			Pattern:  `^$`,
			ExitCode: 0,
		},
		{
			Args:     []string{"storemon", "-p", "8080", "-d", "/tmp/reports", "-w", "4"},
			Pattern:  `^$`,
			ExitCode: 0,
		},
		{
			Args:     []string{"storemon", "-w", "0"},
			Pattern:  `workers must be at least 1`,
			ExitCode: 2,
		},
		{
			Args:     []string{"storemon", "-s", "@hourly"},
			Pattern:  `^$`,
			ExitCode: 0,
		},
		{
			Args:     []string{"storemon", "-s", "30m"},
			Pattern:  `^$`,
			ExitCode: 0,
		},
		{
			Args:     []string{"storemon", "-s", "not-a-schedule"},
			Pattern:  `invalid schedule "not-a-schedule"`,
			ExitCode: 2,
		},
		{
			Args:     []string{"storemon", "extra-argument"},
			Pattern:  `^unknown argument: extra-argument\n`,
			ExitCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Args[len(tt.Args)-1], func(t *testing.T) {
			cmd, buf := MakeTestCommand(t)

			if code := cmd.ParseArgs(tt.Args); code != tt.ExitCode {
				t.Errorf("unexpected exit code: %d", code)
			}

			if ok, err := regexp.MatchString(tt.Pattern, buf.String()); err != nil {
				t.Errorf("invalid pattern: %s", err)
			} else if !ok {
				t.Errorf("unexpected output:\n%s", buf.String())
			}
		})
	}
}

func TestStoremonCommand_PrintVersion(t *testing.T) {
	cmd, buf := MakeTestCommand(t)

	cmd.PrintVersion()

	if ok, _ := regexp.MatchString(`^Storemon version HEAD \(UNKNOWN\)\n$`, buf.String()); !ok {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestStoremonCommand_PrintUsage(t *testing.T) {
	cmd, buf := MakeTestCommand(t)

	cmd.PrintUsage(false)

	short := buf.String()
	if ok, _ := regexp.MatchString(`^Storemon -- Store uptime report service`, short); !ok {
		t.Errorf("unexpected short usage:\n%s", short)
	}
	if regexp.MustCompile(`Endpoints:`).MatchString(short) {
		t.Errorf("short usage should not include endpoint list:\n%s", short)
	}

	buf.Reset()
	cmd.PrintUsage(true)

	detail := buf.String()
	if ok, _ := regexp.MatchString(`Endpoints:`, detail); !ok {
		t.Errorf("detailed usage should include endpoint list:\n%s", detail)
	}
}
