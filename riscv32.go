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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/riscv32/disassembly"
	"github.com/jetsetilly/riscv32/elfloader"
	"github.com/jetsetilly/riscv32/hardware"
	"github.com/jetsetilly/riscv32/hardware/cpu/instructions"
	"github.com/jetsetilly/riscv32/hardware/cpu/result"
	"github.com/jetsetilly/riscv32/hardware/peripherals/console"
	"github.com/jetsetilly/riscv32/logger"
	"github.com/jetsetilly/riscv32/modalflag"
	"github.com/jetsetilly/riscv32/performance"
	"github.com/jetsetilly/riscv32/riscvtests"
	"github.com/jetsetilly/riscv32/statsview"
	"github.com/jetsetilly/riscv32/version"
	"golang.org/x/term"
)

// environment variables providing defaults for command line flags
const (
	envLimit     = "RISCV32_LIMIT"
	envVerbosity = "RISCV32_VERBOSITY"
	envMemory    = "RISCV32_MEMORY"
)

// process exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TEST", "SUITE", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	exitVal := exitOK

	switch md.Mode() {
	case "RUN":
		_, err = run(md, false)

	case "TEST":
		exitVal, err = run(md, true)

	case "SUITE":
		exitVal, err = suite(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitVal
}

// flags common to the modes that create a machine
type machineFlags struct {
	limit     *int
	verbosity *int
	memory    *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		limit:     md.AddIntEnv("limit", envLimit, 0, "maximum number of instructions to execute (0 for no limit)"),
		verbosity: md.AddCountEnv("v", envVerbosity, 0, "verbosity of logging (repeat for more detail)"),
		memory:    md.AddStringEnv("memory", envMemory, string(hardware.SparseMemory), "memory model (sparse or dense)"),
	}
}

func run(md *modalflag.Modes, testMode bool) (int, error) {
	md.NewMode()

	flgs := addMachineFlags(md)
	echo := md.AddBool("log", false, "echo log entries to the terminal")
	tty := md.AddBool("console-tty", false, "read console input from the terminal")
	memviz := md.AddString("memviz", "", "write graph of final machine state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitOK, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return exitOK, fmt.Errorf("ELF binary required for %s mode", md)
	case 1:
	default:
		return exitOK, fmt.Errorf("too many arguments for %s mode", md)
	}

	verbosity := *flgs.verbosity

	if *echo || verbosity > 0 {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return exitOK, fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	cfg := hardware.Config{
		Memory:        hardware.MemoryType(*flgs.memory),
		ConsoleOutput: md.Output,
		Verbosity:     verbosity,
	}

	if *tty {
		t, err := console.OpenTTY()
		if err != nil {
			return exitOK, err
		}
		defer t.Close()
		cfg.ConsoleInput = t
	}

	m, err := hardware.NewMachine(cfg)
	if err != nil {
		return exitOK, err
	}

	if verbosity >= hardware.VerbosityTrace {
		m.Trace = func(r result.Result) {
			logger.Log(logger.Allow, "trace", disassembly.Decode(r.Address, instructions.Word(r.Word)))
		}
	}

	path := md.GetArg(0)
	entry, err := elfloader.Load(path, m)
	if err != nil {
		return exitOK, err
	}
	m.CPU.PC = entry

	logger.Logf(logger.Verbosity{Current: &verbosity, Required: hardware.VerbositySummary}, "riscv32",
		"loaded %s (entry point %08x)", path, entry)

	n, runErr := m.Run(*flgs.limit)

	fmt.Fprintf(md.Output, "executed %d instructions: %s\n", n, m.Ending)
	m.Report(md.Output)

	if len(m.Faults.Entries) > 0 && verbosity >= hardware.VerbosityFaults {
		m.Faults.WriteLog(md.Output)
	}

	if *memviz != "" {
		if err := writeGraph(m, *memviz); err != nil {
			return exitOK, err
		}
	}

	if runErr != nil {
		return exitOK, runErr
	}

	if !testMode {
		return exitOK, nil
	}

	outcome := riscvtests.Classify(&m.CPU.Reg)
	fmt.Fprintf(md.Output, "riscv-tests: %s\n", outcome)

	return outcome.ExitCode(), nil
}

func writeGraph(m *hardware.Machine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	m.WriteGraph(f)
	return nil
}

func suite(md *modalflag.Modes) (int, error) {
	md.NewMode()

	flgs := addMachineFlags(md)
	colour := md.AddBool("colour", isTerminal(md.Output), "colour the results table")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitOK, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return exitOK, fmt.Errorf("directory of test programs required for %s mode", md)
	case 1:
	default:
		return exitOK, fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg := hardware.Config{
		Memory:    hardware.MemoryType(*flgs.memory),
		Verbosity: *flgs.verbosity,
	}

	s := riscvtests.NewSuite(md.GetArg(0), cfg, *flgs.limit)
	s.Colour = *colour

	err = s.Run(md.Output)
	if err != nil {
		return exitOK, err
	}

	s.Report(md.Output)

	if !s.Passed() {
		return 1, nil
	}

	return exitOK, nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF binary required for %s mode", md)
	case 1:
		f, err := elfloader.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		disassembly.Disassemble(md.Output, f)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profile files (cpu, mem)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF binary required for %s mode", md)
	case 1:
		prf, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		cfg := hardware.Config{
			Memory:    hardware.MemoryType(*flgs.memory),
			Verbosity: *flgs.verbosity,
		}

		_, err = performance.Check(md.Output, prf, md.GetArg(0), cfg, *duration, *flgs.limit)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// isTerminal returns true if the writer is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
