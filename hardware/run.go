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
	"github.com/softlanding/invader80/hardware/cpu/instructions"
	"github.com/softlanding/invader80/hardware/ports/midway"
)

// Timing of the Midway board. The 8080 is clocked at very nearly 2MHz and
// the video hardware completes 60 frames every second.
const (
	ClockHz         = 1996800
	FramesPerSecond = 60
	CyclesPerFrame  = ClockHz / FramesPerSecond
)

// The continueCheck() function only runs at the end of a CPU instruction but
// it can still be expensive to do a full continue check every time. It
// depends on context whether it is used or not but the PerformanceBrake is a
// standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible, with no frame
// timing and no video interrupts. Useful for test programs that never wait
// on an interrupt. The emulation continues until continueCheck returns false
// or an error.
func (m *Machine) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	running := true
	var err error

	for running {
		err = m.CPU.ExecuteInstruction()
		if err != nil {
			return err
		}

		running, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// StepFrame runs the emulation for one video frame, raising the two video
// interrupts the program expects: RST 1 when the beam is half way down the
// screen and RST 2 at the start of the vertical blank. Returns the number of
// cycles consumed, which can overshoot CyclesPerFrame by at most one
// instruction.
func (m *Machine) StepFrame() (int, error) {
	cycles, err := m.runCycles(CyclesPerFrame / 2)
	if err != nil {
		return cycles, err
	}
	m.CPU.RaiseInterrupt(instructions.Reset(midway.MidScreenVector))

	c, err := m.runCycles(CyclesPerFrame - cycles)
	cycles += c
	if err != nil {
		return cycles, err
	}
	m.CPU.RaiseInterrupt(instructions.Reset(midway.VBlankVector))

	return cycles, nil
}

// runCycles executes instructions until the cycle budget is spent.
func (m *Machine) runCycles(budget int) (int, error) {
	cycles := 0
	for cycles < budget {
		err := m.CPU.ExecuteInstruction()
		if err != nil {
			return cycles, err
		}
		cycles += m.CPU.LastResult.Cycles
	}
	return cycles, nil
}
