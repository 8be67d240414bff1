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

package cpm

import (
	"io"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/hardware"
)

// Origin is the load address of CP/M programs.
const Origin = 0x0100

// the two ports the stub instructions signal through
const (
	exitPort = 0x00
	bdosPort = 0x01
)

// Console watches the two BDOS entry points and performs console output on
// behalf of the running program. It implements the ports.Device interface.
type Console struct {
	m      *hardware.Machine
	output io.Writer
	ended  bool
}

// NewConsole is the preferred method of initialisation for the Console
// type. The machine's memory is patched with the BDOS stubs and the console
// attaches itself as the machine's IO device.
func NewConsole(m *hardware.Machine, output io.Writer) *Console {
	con := &Console{
		m:      m,
		output: output,
	}

	// a jump to address zero is the program's exit
	m.Mem.Load(0x0000, []uint8{0xd3, exitPort}) // OUT exitPort

	// the BDOS entry point. the OUT is serviced by the console before the
	// RET returns to the program
	m.Mem.Load(0x0005, []uint8{0xd3, bdosPort, 0xc9}) // OUT bdosPort; RET

	m.AttachDevice(con)

	return con
}

// Ended returns true once the program has jumped to the exit address.
func (con *Console) Ended() bool {
	return con.ended
}

// Input implements the ports.Device interface. The exercisers perform no
// console input.
func (con *Console) Input(port uint8) (uint8, error) {
	return 0xff, nil
}

// Output implements the ports.Device interface.
func (con *Console) Output(port uint8, data uint8) error {
	switch port {
	case exitPort:
		con.ended = true

	case bdosPort:
		return con.bdos()
	}
	return nil
}

// bdos performs the BDOS function selected by register C.
func (con *Console) bdos() error {
	switch c := con.m.CPU.C.Value(); c {
	case 2:
		// print the character in register E
		_, err := con.output.Write([]byte{con.m.CPU.E.Value()})
		if err != nil {
			return curated.Errorf("cpm: %v", err)
		}

	case 9:
		// print the string addressed by DE, terminated by a dollar sign
		address := con.m.CPU.DE.Address()
		for {
			b := con.m.Mem.Peek(address)
			if b == '$' {
				break
			}
			_, err := con.output.Write([]byte{b})
			if err != nil {
				return curated.Errorf("cpm: %v", err)
			}
			address++
		}

	default:
		return curated.Errorf("cpm: unsupported BDOS function (%d)", c)
	}

	return nil
}

// Run the program until it exits. The program counter is set to the CP/M
// load address before the first instruction.
func (con *Console) Run() error {
	con.m.CPU.PC.Load(Origin)
	con.ended = false

	return con.m.Run(func() (bool, error) {
		return !con.ended, nil
	})
}
