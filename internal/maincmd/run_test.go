package maincmd_test

import (
	"bytes"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/internal/maincmd"
)

var testUpdateRunTests = flag.Bool("test.update-run-tests", false, "If set, replace expected run test results with actual results.")

// TestRunFile exercises RunFile end to end against golden source programs
// covering block scoping, inheritance, super dispatch, constructor return
// semantics and a runtime type error, comparing both stdout and stderr
// against checked-in golden files.
func TestRunFile(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var out, eout bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &eout}

			maincmd.RunFile(stdio, filepath.Join(srcDir, fi.Name()))

			filetest.DiffOutput(t, fi, out.String(), resultDir, testUpdateRunTests)
			filetest.DiffErrors(t, fi, eout.String(), resultDir, testUpdateRunTests)
		})
	}
}

func TestRunFileExitCodes(t *testing.T) {
	cases := []struct {
		file string
		want mainer.ExitCode
	}{
		{"print_sum.lox", 0},
		{"type_mismatch.lox", 70},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			var out, eout bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &eout}
			got := maincmd.RunFile(stdio, filepath.Join("testdata", "in", c.file))
			if got != c.want {
				t.Errorf("exit code = %d, want %d", got, c.want)
			}
		})
	}
}
