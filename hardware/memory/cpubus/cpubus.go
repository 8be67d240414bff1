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

// Package cpubus defines the operations for memory when accessed from the
// CPU. Defining the interface in its own package means the CPU can be
// plumbed with any memory implementation - the flat RAM of the memory
// package for normal use, or an instrumented implementation for testing.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// The 8080 address space is fully populated and address arithmetic wraps at
// the 16-bit boundary, so a conforming implementation will never actually
// return an error. The error return is kept so that instrumented
// implementations (a debugger watchpoint, for example) can interrupt the
// emulation.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}
