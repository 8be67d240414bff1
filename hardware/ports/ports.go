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

// Package ports defines the interface between the CPU and the IO devices
// reachable through the IN and OUT instructions. The 8080 has a separate
// 8 bit address space of 256 ports for this purpose.
//
// The NullDevice type is a valid implementation that attaches nothing to any
// port. IN from a NullDevice returns the value a floating data bus would
// produce.
package ports

// Device is any IO hardware addressable with the IN and OUT instructions.
type Device interface {
	// Input reads the device attached to the given port. The IN instruction.
	Input(port uint8) (uint8, error)

	// Output writes to the device attached to the given port. The OUT
	// instruction.
	Output(port uint8, data uint8) error
}

// NullDevice is the degenerate implementation of the Device interface. It is
// used when no IO hardware is attached to the CPU.
type NullDevice struct{}

// Input implements the Device interface. Reads from an unattached port see
// a floating bus.
func (d NullDevice) Input(port uint8) (uint8, error) {
	return 0xff, nil
}

// Output implements the Device interface. Writes to an unattached port are
// discarded.
func (d NullDevice) Output(port uint8, data uint8) error {
	return nil
}
