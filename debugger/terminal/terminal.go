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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are found in the plainterm and
// colorterm sub-packages.
package terminal

import (
	"os"
)

// sentinel error returned by TermRead() if an interrupt signal is caught
// whilst waiting for input
const UserInterrupt = "user interrupt"

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// SignalHandler turns a caught signal into the error TermRead() returns
	SignalHandler func(sig os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input. If possible the
	// implementation should regularly check the ReadEvents channels for
	// activity while waiting.
	TermRead(prompt string, events *ReadEvents) (string, error)

	// IsInteractive() should return true for implementations that expect
	// user interaction. Instances reading from a script should return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()

	// Silence all input and output except error messages.
	Silence(silenced bool)
}
