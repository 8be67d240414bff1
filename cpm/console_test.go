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

package cpm_test

import (
	"strings"
	"testing"

	"github.com/softlanding/invader80/cpm"
	"github.com/softlanding/invader80/hardware"
	"github.com/softlanding/invader80/test"
)

func TestConsole(t *testing.T) {
	m := hardware.NewMachine()

	s := strings.Builder{}
	con := cpm.NewConsole(m, &s)

	// a minimal CP/M program. print a string through BDOS function 9, a
	// character through function 2 and exit by jumping to address zero
	m.Mem.Load(cpm.Origin, []uint8{
		0x31, 0x00, 0x24, // LXI SP,0x2400
		0x11, 0x00, 0x02, // LXI D,0x0200
		0x0e, 0x09, // MVI C,9
		0xcd, 0x05, 0x00, // CALL 0x0005
		0x1e, '!', // MVI E,'!'
		0x0e, 0x02, // MVI C,2
		0xcd, 0x05, 0x00, // CALL 0x0005
		0xc3, 0x00, 0x00, // JMP 0x0000
	})
	m.Mem.Load(0x0200, []uint8("HELLO$"))

	err := con.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, con.Ended(), true)
	test.Equate(t, s.String(), "HELLO!")
}

func TestConsoleUnsupportedFunction(t *testing.T) {
	m := hardware.NewMachine()
	con := cpm.NewConsole(m, &strings.Builder{})

	m.Mem.Load(cpm.Origin, []uint8{
		0x31, 0x00, 0x24, // LXI SP,0x2400
		0x0e, 0x0c, // MVI C,12
		0xcd, 0x05, 0x00, // CALL 0x0005
	})

	err := con.Run()
	test.ExpectedFailure(t, err)
}
