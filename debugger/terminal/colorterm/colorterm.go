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

// Package colorterm implements the Terminal interface for the debugger. It
// provides color output and rudimentary line editing by putting the terminal
// into cbreak mode while reading.
package colorterm

import (
	"os"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/debugger/terminal"
	"github.com/softlanding/invader80/debugger/terminal/colorterm/easyterm"
)

// ANSI pens used for the different line styles.
const (
	penNormal = "\033[0m"
	penBold   = "\033[1m"
	penDim    = "\033[2m"
	penRed    = "\033[31m"
	penYellow = "\033[33m"
	penCyan   = "\033[36m"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint(penNormal)
	ct.Terminal.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.TermPrint("\r")

	switch style {
	case terminal.StyleEcho:
		ct.TermPrint(penBold)
	case terminal.StyleHelp:
		ct.TermPrint(penDim)
	case terminal.StyleFeedback:
		ct.TermPrint(penDim)
	case terminal.StyleCPUStep:
		ct.TermPrint(penYellow)
	case terminal.StyleLog:
		ct.TermPrint(penCyan)
	case terminal.StyleError:
		ct.TermPrint(penRed)
		s = "* " + s
	}

	ct.TermPrint(s)
	ct.TermPrint(penNormal)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.TermPrint("\r")
	ct.TermPrint(penBold)
	ct.TermPrint(prompt)
	ct.TermPrint(penNormal)

	// the terminal is in cbreak mode only while reading so that a running
	// emulation can use the cooked terminal for its own output
	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := make([]byte, 0, 255)
	b := make([]byte, 1)

	for {
		if events != nil {
			select {
			case sig := <-events.Signal:
				ct.TermPrint("\n")
				return "", events.SignalHandler(sig)
			default:
			}
		}

		n, err := os.Stdin.Read(b)
		if err != nil {
			return "", curated.Errorf("colorterm: %v", err)
		}
		if n == 0 {
			continue
		}

		switch b[0] {
		case 0x03:
			// ctrl-c
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case '\n', '\r':
			ct.TermPrint("\n")
			return string(input), nil

		case 0x08, 0x7f:
			// backspace and delete
			if len(input) > 0 {
				input = input[:len(input)-1]
				ct.TermPrint("\b \b")
			}

		default:
			// printable characters only
			if b[0] >= 32 && b[0] < 127 {
				input = append(input, b[0])
				ct.TermPrint(string(b[:1]))
			}
		}
	}
}
