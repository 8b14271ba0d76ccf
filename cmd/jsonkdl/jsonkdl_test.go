package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

const pointSrc = `[{"name": "point", "properties": {"x": 0.1, "y": 0.2}}]`

const pointKDL = "point x=0.1 y=0.2\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunUsageErrors(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	tests := []struct {
		name string
		cfg  config
		args []string
		want string
	}{
		{
			name: "both versions",
			cfg:  config{V1: true, V2: true},
			args: []string{input},
			want: "specify only one of --kdl-v1 or --kdl-v2",
		},
		{
			name: "missing input",
			args: nil,
			want: "missing input path",
		},
		{
			name: "too many arguments",
			args: []string{input, "out.kdl", "extra"},
			want: "too many arguments",
		},
		{
			name: "diff without output",
			cfg:  config{Diff: true},
			args: []string{input},
			want: "-d requires an output path to diff against",
		},
		{
			name: "bad color mode",
			cfg:  config{Color: "sometimes"},
			args: []string{input},
			want: `bad color mode "sometimes"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(&tt.cfg, &buf, tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, cli.ErrUsage) {
				t.Errorf("%v is not a usage error", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestRunInputChecks(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "absent.json")
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no such file", missing, "no such file: " + missing},
		{"not a file", dir, "not a file: " + dir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(&config{}, &buf, []string{tt.input})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunRefusesOverwrite(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	output := writeTemp(t, "out.kdl", "stale\n")
	var buf bytes.Buffer
	err := run(&config{}, &buf, []string{input, output})
	want := "file exists: " + output + " (use --force to overwrite)"
	if err == nil || err.Error() != want {
		t.Fatalf("got %v, want %q", err, want)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "stale\n" {
		t.Errorf("output clobbered: %q", data)
	}
}

func TestRunWritesOutput(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	output := filepath.Join(t.TempDir(), "out.kdl")
	var buf bytes.Buffer
	if err := run(&config{Verbose: true}, &buf, []string{input, output}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != pointKDL {
		t.Errorf("got %q, want %q", data, pointKDL)
	}
	if want := fmt.Sprintf("converted %s -> %s\n", input, output); buf.String() != want {
		t.Errorf("verbose output %q, want %q", buf.String(), want)
	}
}

func TestRunForceOverwrites(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	output := writeTemp(t, "out.kdl", "stale\n")
	var buf bytes.Buffer
	if err := run(&config{Force: true}, &buf, []string{input, output}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != pointKDL {
		t.Errorf("got %q, want %q", data, pointKDL)
	}
}

func TestRunPrintsToStdout(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	for _, args := range [][]string{
		{input},
		{input, "-"},
	} {
		var buf bytes.Buffer
		if err := run(&config{}, &buf, args); err != nil {
			t.Fatal(err)
		}
		if buf.String() != pointKDL {
			t.Errorf("run(%v) printed %q, want %q", args, buf.String(), pointKDL)
		}
	}
}

func TestRunDiffMatch(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	output := writeTemp(t, "out.kdl", pointKDL)
	var buf bytes.Buffer
	if err := run(&config{Diff: true, Verbose: true}, &buf, []string{input, output}); err != nil {
		t.Fatal(err)
	}
	if want := fmt.Sprintf("%s matches %s\n", output, input); buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRunDiffMismatch(t *testing.T) {
	input := writeTemp(t, "in.json", pointSrc)
	output := writeTemp(t, "out.kdl", "point x=9 y=0.2\n")
	var buf bytes.Buffer
	err := run(&config{Diff: true}, &buf, []string{input, output})
	if err == nil {
		t.Fatal("differing files did not fail")
	}
	for _, line := range []string{"-point x=9 y=0.2\n", "+point x=0.1 y=0.2\n"} {
		if !strings.Contains(buf.String(), line) {
			t.Errorf("diff %q is missing %q", buf.String(), line)
		}
	}
}
