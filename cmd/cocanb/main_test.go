package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/cocanb/encode"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeCmdStdin(t *testing.T) {
	tests := []struct {
		args []string
		in   string
		want string
	}{
		{[]string{"encode"}, "Hello world", "hellworlnonoede\n"},
		{[]string{"encode", "-f", "marked"}, `Hello "world"`, "hell\"worl|nonde\"|nonoe\n"},
		{[]string{"encode", "--verbatim-tags"}, "Hello <world>", "hell<world>nonoe\n"},
		{[]string{"encode", "-f", "json"}, "he110", "{\n  \"text\": \"henon110c\",\n  \"separators\": [\n    2\n  ]\n}\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := runCmd(t, tt.in, tt.args...)
			if err != nil {
				t.Fatalf("Execute error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeCmdErrors(t *testing.T) {
	_, err := runCmd(t, `Hello "foo 'bar"`, "encode")
	if !errors.Is(err, encode.ErrMismatchedDelimiter) {
		t.Errorf("error = %v, want %v", err, encode.ErrMismatchedDelimiter)
	}

	if _, err := runCmd(t, "x", "encode", "-f", "yaml"); err == nil {
		t.Error("unknown format: error = nil")
	}

	if _, err := runCmd(t, "x", "encode", "-w"); err == nil {
		t.Error("-w without file: error = nil")
	}
}

func TestEncodeCmdWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("Hello! world?"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "", "encode", "-w", path)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}

	data, err := os.ReadFile(path + outputExt)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "hellnonoe!worlnonde?\n" {
		t.Errorf("file = %q, want %q", data, "hellnonoe!worlnonde?\n")
	}
}
