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

package hardware

import (
	"github.com/softlanding/invader80/hardware/cpu"
	"github.com/softlanding/invader80/hardware/memory"
	"github.com/softlanding/invader80/hardware/ports"
	"github.com/softlanding/invader80/logger"
	"github.com/softlanding/invader80/romload"
)

// Machine is the main container for the emulated components.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.RAM

	// the IO device reachable through the IN and OUT instructions
	Dev ports.Device
}

// NewMachine creates a new Machine with nothing attached to the IO ports.
func NewMachine() *Machine {
	m := &Machine{
		Mem: memory.NewRAM(),
		Dev: ports.NullDevice{},
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

// AttachDevice connects an IO device to the machine.
func (m *Machine) AttachDevice(dev ports.Device) {
	if dev == nil {
		dev = ports.NullDevice{}
	}
	m.Dev = dev
	m.CPU.AttachDevice(dev)
}

// AttachROM loads one or more ROM images into memory and resets the machine.
// Each image is placed at its own origin address.
func (m *Machine) AttachROM(loaders ...romload.Loader) error {
	for i := range loaders {
		ld := &loaders[i]
		err := ld.Load()
		if err != nil {
			return err
		}
		m.Mem.Load(ld.Origin, ld.Data)
		logger.Logf("machine", "%s: %d bytes at %#04x", ld.ShortName(), len(ld.Data), ld.Origin)
	}

	m.Reset()

	return nil
}

// Reset emulates the reset line on the CPU. Memory contents are retained.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Step executes one instruction and returns the number of cycles it
// consumed.
func (m *Machine) Step() (int, error) {
	err := m.CPU.ExecuteInstruction()
	if err != nil {
		return 0, err
	}
	return m.CPU.LastResult.Cycles, nil
}
