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

// Package debugger implements an interactive command line debugger for the
// emulated machine. Terminal implementations are in the terminal sub-package.
package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/debugger/terminal"
	"github.com/softlanding/invader80/hardware"
	"github.com/softlanding/invader80/romload"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	// channel for the ctrl-c signal. checked by the terminal while reading
	// input and by the continueCheck function while the emulation is running
	intChan chan os.Signal
	events  *terminal.ReadEvents

	// set by the QUIT command
	running bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		m:    m,
		term: term,
	}

	dbg.intChan = make(chan os.Signal, 1)
	signal.Notify(dbg.intChan, os.Interrupt)

	dbg.events = &terminal.ReadEvents{
		Signal: dbg.intChan,
		SignalHandler: func(sig os.Signal) error {
			if sig == os.Interrupt {
				return curated.Errorf(terminal.UserInterrupt)
			}
			return curated.Errorf("debugger: unhandled signal: %v", sig)
		},
	}

	err := dbg.term.Initialise()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main input loop. Returns when the user has asked to quit.
func (dbg *Debugger) Start(loaders ...romload.Loader) error {
	defer dbg.term.CleanUp()

	if len(loaders) > 0 {
		err := dbg.m.AttachROM(loaders...)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	dbg.running = true
	for dbg.running {
		prompt := fmt.Sprintf("[ 0x%04x ] > ", dbg.m.CPU.PC.Address())

		input, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.running = false
				continue // for loop
			}
			return err
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// printLine forwards formatted output to the attached terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}
