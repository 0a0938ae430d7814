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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/riscv32/elfloader"
	"github.com/jetsetilly/riscv32/hardware"
	"github.com/jetsetilly/riscv32/logger"
)

// Brake is the number of instructions executed between checks of the timer.
// Checking the timer is relatively expensive.
const Brake = 10000

// Result of a call to Check().
type Result struct {
	Instructions int
	Duration     time.Duration

	// the program ended before the duration elapsed
	Ended bool
}

// MIPS returns the number of millions of instructions executed per second.
func (r Result) MIPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds() / 1000000
}

func (r Result) String() string {
	s := fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds)", r.MIPS(), r.Instructions, r.Duration.Seconds())
	if r.Ended {
		s = fmt.Sprintf("%s [program ended]", s)
	}
	return s
}

// Check the performance of the simulator using the supplied ELF binary.
//
// The program will run for the specified duration, until it ends or until
// limit instructions have been executed, whichever is first. A limit of zero
// or less means there is no instruction limit. Profiles are created as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, path string, cfg hardware.Config, duration string, limit int) (Result, error) {
	var res Result

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	m, err := hardware.NewMachine(cfg)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	entry, err := elfloader.Load(path, m)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}
	m.CPU.PC = entry

	// Run() logs a summary every time a batch ends. a single summary is
	// logged at the end of the check instead
	verbosity := m.Verbosity()
	m.SetVerbosity(0)

	runner := func() error {
		timesUp := time.After(dur)
		start := time.Now()
		defer func() {
			res.Duration = time.Since(start)
		}()

		for {
			batch := Brake
			if limit > 0 {
				batch = min(batch, limit-res.Instructions)
			}

			n, err := m.Run(batch)
			res.Instructions += n
			if err != nil {
				return err
			}

			if m.Ending.Reason != hardware.LimitReached {
				res.Ended = true
				return nil
			}

			if limit > 0 && res.Instructions >= limit {
				return nil
			}

			select {
			case <-timesUp:
				return nil
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	m.SetVerbosity(verbosity)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	logger.Log(logger.Verbosity{Current: &verbosity, Required: hardware.VerbositySummary}, "performance", res)

	fmt.Fprintln(output, res)

	return res, nil
}
