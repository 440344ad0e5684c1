package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"
	"gopkg.in/yaml.v3"
)

type lineCase struct {
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

func loadCases(t *testing.T, path string) []lineCase {
	t.Helper()
	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var cases []lineCase
	assert.NoError(t, decoder.Decode(&cases))
	return cases
}

func TestFormatResultFixtures(t *testing.T) {
	cases := loadCases(t, "testdata/cases.yml")
	assert.NotZero(t, len(cases))
	for _, c := range cases {
		assert.Equal(t, c.Want, formatResult(c.Input), "input %q", c.Input)
	}
}

func TestEtopStage(t *testing.T) {
	tests := []struct {
		input string
		stage Stage
		err   interface{}
	}{
		{"&", LexStage, new(*LexError)},
		{"+", ParseStage, new(*ParseError)},
		{"/ 1 0", EvalStage, new(*EvalError)},
	}
	for _, tt := range tests {
		got, err := etop(tt.input)
		if err == nil {
			t.Errorf("etop(%q) = %q, want an error", tt.input, got)
			continue
		}
		if got != "" {
			t.Errorf("etop(%q) returned %q along with an error", tt.input, got)
		}
		var serr *StageError
		if !errors.As(err, &serr) {
			t.Errorf("etop(%q): error %v is %T, want *StageError", tt.input, err, err)
			continue
		}
		if serr.Stage != tt.stage {
			t.Errorf("etop(%q): stage %v, want %v", tt.input, serr.Stage, tt.stage)
		}
		if !errors.As(err, tt.err) {
			t.Errorf("etop(%q): error %v doesn't unwrap to %T", tt.input, err, tt.err)
		}
	}
}

func TestRunTrace(t *testing.T) {
	var buf bytes.Buffer
	got, err := run("* 2 + 3 4", &buf)
	assert.NoError(t, err)
	assert.Equal(t, "14", got)

	out := buf.String()
	for _, want := range []string{
		"tokens: [* 2 + 3 4]",
		"tree: (* 2 (+ 3 4))",
		"main.BinExpr",
	} {
		assert.Contains(t, out, want)
	}

	// nothing past the failing stage is dumped
	buf.Reset()
	_, err = run("+ 1", &buf)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "tokens: [+ 1]")
	assert.NotContains(t, buf.String(), "tree:")
}
