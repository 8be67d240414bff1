// This file is part of Invader80.
//
// Invader80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Invader80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Invader80.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/debugger/terminal"
	"github.com/softlanding/invader80/disassembly"
	"github.com/softlanding/invader80/hardware"
	"github.com/softlanding/invader80/hardware/cpu/instructions"
	"github.com/softlanding/invader80/logger"
)

// the list of valid commands and a summary for the HELP command.
var commandHelp = []struct {
	command string
	help    string
}{
	{"CURRENT", "show the instruction at the program counter and the one after it"},
	{"DISASM", "disassemble memory [from [to]]"},
	{"FRAME", "run the emulation for one frame of video"},
	{"HELP", "this list"},
	{"INT", "raise an interrupt with RST vector [n]"},
	{"LOG", "show recent log entries"},
	{"MEM", "show memory contents [from [to]]"},
	{"POKE", "write a value directly to memory [address value]"},
	{"QUIT", "quit the debugger"},
	{"REGS", "show CPU registers"},
	{"RESET", "reset the machine"},
	{"RUN", "run the emulation until ctrl-c"},
	{"STEP", "execute the next instruction [n times]"},
}

// parseInput splits the input into a command and its arguments and runs the
// command. Commands and hexadecimal arguments are case insensitive.
func (dbg *Debugger) parseInput(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	case "HELP":
		for _, c := range commandHelp {
			dbg.printLine(terminal.StyleHelp, "%-8s %s", c.command, c.help)
		}

	case "QUIT":
		dbg.running = false

	case "RESET":
		dbg.m.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case "STEP":
		n := 1
		if len(args) > 0 {
			v, err := parseValue(args[0], 16)
			if err != nil {
				return err
			}
			n = int(v)
		}
		for i := 0; i < n; i++ {
			err := dbg.step()
			if err != nil {
				return err
			}
		}

	case "RUN":
		return dbg.run()

	case "FRAME":
		_, err := dbg.m.StepFrame()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.m.CPU.String())

	case "CURRENT":
		curr, next, err := disassembly.FromCPU(dbg.m.CPU, dbg.m.Mem)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", curr.String())
		dbg.printLine(terminal.StyleFeedback, "%s", next.String())

	case "REGS":
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.m.CPU.String())

	case "DISASM":
		from := dbg.m.CPU.PC.Address()
		if len(args) > 0 {
			v, err := parseValue(args[0], 16)
			if err != nil {
				return err
			}
			from = uint16(v)
		}
		to := from + 16
		if len(args) > 1 {
			v, err := parseValue(args[1], 16)
			if err != nil {
				return err
			}
			to = uint16(v)
		}
		entries, err := disassembly.Disassemble(dbg.m.Mem, from, to)
		if err != nil {
			return err
		}
		for _, e := range entries {
			dbg.printLine(terminal.StyleFeedback, "%s", e.String())
		}

	case "MEM":
		if len(args) == 0 {
			return curated.Errorf("debugger: MEM requires at least one address")
		}
		v, err := parseValue(args[0], 16)
		if err != nil {
			return err
		}
		from := uint16(v)
		to := from
		if len(args) > 1 {
			v, err = parseValue(args[1], 16)
			if err != nil {
				return err
			}
			to = uint16(v)
		}
		dbg.printMemory(from, to)

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf("debugger: POKE requires an address and a value")
		}
		a, err := parseValue(args[0], 16)
		if err != nil {
			return err
		}
		v, err := parseValue(args[1], 8)
		if err != nil {
			return err
		}
		err = dbg.m.Mem.Write(uint16(a), uint8(v))
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "0x%04x = 0x%02x", a, v)

	case "INT":
		if len(args) < 1 {
			return curated.Errorf("debugger: INT requires a vector number")
		}
		v, err := parseValue(args[0], 8)
		if err != nil {
			return err
		}
		if v > 7 {
			return curated.Errorf("debugger: RST vector must be 0 to 7")
		}
		dbg.m.CPU.RaiseInterrupt(instructions.Reset(uint8(v)))
		dbg.printLine(terminal.StyleFeedback, "interrupt raised with RST %d", v)

	case "LOG":
		s := &strings.Builder{}
		logger.Tail(s, 10)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			if l != "" {
				dbg.printLine(terminal.StyleLog, "%s", l)
			}
		}

	default:
		return curated.Errorf("debugger: unrecognised command: %s", command)
	}

	return nil
}

// step executes a single instruction and echoes the result.
func (dbg *Debugger) step() error {
	_, err := dbg.m.Step()
	if err != nil {
		return err
	}

	e, err := disassembly.FromResult(dbg.m.CPU.LastResult)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleCPUStep, "%s", e.String())

	return nil
}

// run the emulation until an error or until the user interrupts with ctrl-c.
func (dbg *Debugger) run() error {
	brake := 0
	err := dbg.m.Run(func() (bool, error) {
		brake++
		if brake%hardware.PerformanceBrake != 0 {
			return true, nil
		}
		select {
		case sig := <-dbg.intChan:
			if sig == os.Interrupt {
				return false, nil
			}
		default:
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.m.CPU.String())

	return nil
}

// printMemory shows the inclusive range of memory addresses, sixteen bytes to
// a row.
func (dbg *Debugger) printMemory(from uint16, to uint16) {
	if to < from {
		to = from
	}

	s := &strings.Builder{}
	base := from &^ 0x000f

	for a := int(base); a <= int(to); a++ {
		if a%16 == 0 {
			if s.Len() > 0 {
				dbg.printLine(terminal.StyleFeedback, "%s", s.String())
				s.Reset()
			}
			fmt.Fprintf(s, "0x%04x:", a)
		}
		if a < int(from) {
			s.WriteString("   ")
		} else {
			fmt.Fprintf(s, " %02x", dbg.m.Mem.Peek(uint16(a)))
		}
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleFeedback, "%s", s.String())
	}
}

// parseValue converts a numeric argument. Plain numbers are treated as
// hexadecimal. The 0x, 0b and 0o prefixes select the base explicitly.
func parseValue(s string, bitSize int) (uint64, error) {
	base := 16
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'b', 'B', 'o', 'O':
			base = 0
		}
	}

	v, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, curated.Errorf("debugger: cannot parse value: %s", s)
	}
	return v, nil
}
