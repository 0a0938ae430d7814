// This file is part of riscv32.
//
// riscv32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscv32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscv32.  If not, see <https://www.gnu.org/licenses/>.

package riscvtests

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/riscv32/ansi"
	"github.com/jetsetilly/riscv32/curated"
	"github.com/jetsetilly/riscv32/elfloader"
	"github.com/jetsetilly/riscv32/hardware"
	"github.com/jetsetilly/riscv32/logger"
)

// Result of running a single test program.
type Result struct {
	Name    string
	Outcome Outcome

	// number of instructions executed
	Count int

	// the program could not be run to completion. the outcome will be
	// Unknown
	Err error
}

// Passed returns true if the test program passed.
func (r Result) Passed() bool {
	return r.Err == nil && r.Outcome.Verdict == Pass
}

// RunFile loads and runs the test program and classifies the outcome. The
// machine is created with the supplied configuration.
func RunFile(path string, cfg hardware.Config, limit int) Result {
	res := Result{Name: filepath.Base(path)}

	m, err := hardware.NewMachine(cfg)
	if err != nil {
		res.Err = err
		return res
	}

	entry, err := elfloader.Load(path, m)
	if err != nil {
		res.Err = err
		return res
	}
	m.CPU.PC = entry

	res.Count, res.Err = m.Run(limit)
	if res.Err != nil {
		return res
	}

	res.Outcome = Classify(&m.CPU.Reg)

	return res
}

// Suite runs every test program in a directory.
type Suite struct {
	Dir string

	// configuration of the machine created for each test program
	Config hardware.Config

	// instruction limit for each test program. zero or less for no limit
	Limit int

	// colour the PASS/FAIL column of the report
	Colour bool

	Results []Result
}

// NewSuite is the preferred method of initialisation for the Suite type.
func NewSuite(dir string, cfg hardware.Config, limit int) *Suite {
	return &Suite{
		Dir:    dir,
		Config: cfg,
		Limit:  limit,
	}
}

// Programs returns the names of the test programs in the suite directory, in
// alphabetical order. Test programs are regular files without an extension.
func (s *Suite) Programs() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, curated.Errorf("riscvtests: %v", err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.Contains(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Strings(names)

	return names, nil
}

// Run every test program in the suite. Progress is written to io.Writer,
// which can be nil. The Results field is replaced.
func (s *Suite) Run(output io.Writer) error {
	names, err := s.Programs()
	if err != nil {
		return err
	}

	if output == nil {
		output = io.Discard
	}

	s.Results = s.Results[:0]

	for _, n := range names {
		fmt.Fprintf(output, "running: %s", n)
		r := RunFile(filepath.Join(s.Dir, n), s.Config, s.Limit)
		s.Results = append(s.Results, r)
		fmt.Fprint(output, ansi.ClearLine)

		if r.Err != nil {
			logger.Logf(logger.Allow, "riscvtests", "%s: %v", n, r.Err)
		}
	}

	return nil
}

// NumPassed returns the number of test programs that passed.
func (s *Suite) NumPassed() int {
	var n int
	for _, r := range s.Results {
		if r.Passed() {
			n++
		}
	}
	return n
}

// Passed returns true if every test program passed. A suite with no test
// programs has passed.
func (s *Suite) Passed() bool {
	return s.NumPassed() == len(s.Results)
}

// Report writes a table of results and a summary to io.Writer.
func (s *Suite) Report(output io.Writer) {
	fmt.Fprintf(output, "test results: %s\n", s.Dir)

	for _, r := range s.Results {
		status := "PASS"
		colour := ansi.Green
		if !r.Passed() {
			status = "FAIL"
			colour = ansi.Red
		}

		if s.Colour {
			status = ansi.Paint(status, colour)
		}

		fmt.Fprintf(output, "%s %s", status, r.Name)

		switch {
		case r.Err != nil:
			fmt.Fprintf(output, " - %v", r.Err)
		case !r.Passed():
			fmt.Fprintf(output, " - %s", r.Outcome)
		}

		fmt.Fprintln(output)
	}

	fmt.Fprintf(output, "summary: %d/%d tests passed\n", s.NumPassed(), len(s.Results))
}
