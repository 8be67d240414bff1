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

package terminal

// Style is used to hint to the terminal implementation how a line of output
// should be presented.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back. terminals that display what the
	// user typed need not print these lines
	StyleEcho Style = iota

	// help text
	StyleHelp

	// information from the debugger in response to a command
	StyleFeedback

	// the disassembly of the instruction about to be executed
	StyleCPUStep

	// an entry from the central logger
	StyleLog

	// errors. terminals must display these even when silenced
	StyleError
)
