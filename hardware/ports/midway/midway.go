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

package midway

import (
	"github.com/softlanding/invader80/logger"
)

// Event is a cabinet control the player can operate.
type Event int

// List of cabinet controls.
const (
	Coin Event = iota
	Tilt
	Start1
	Start2
	Fire
	Left
	Right
)

// interrupt vectors raised by the video hardware. the program expects RST 1
// when the beam is half way down the screen and RST 2 at the start of the
// vertical blank
const (
	MidScreenVector = 1
	VBlankVector    = 2
)

// Midway emulates the IO hardware on the Midway 8080 board. It implements
// the ports.Device interface.
type Midway struct {
	Latch0 InputLatch
	Latch1 InputLatch
	Latch2 InputLatch
	Shift  ShiftRegister

	// the value most recently written to the sound latch on port 3
	Sound uint8
}

// NewMidway is the preferred method of initialisation for the Midway type.
// The latches are pulled high, meaning every control idle, and the DIP
// switches are set to the factory defaults of three lives and no extras.
func NewMidway() *Midway {
	mw := &Midway{}
	mw.Latch0.Write(0xff)
	mw.Latch1.Write(0xff)
	mw.Latch2.Write(0xff)
	return mw
}

// HandleEvent asserts or releases a cabinet control. The latches are active
// low so a pressed control clears its bit.
func (mw *Midway) HandleEvent(event Event, pressed bool) {
	level := !pressed

	switch event {
	case Coin:
		mw.Latch0.WriteBit(0, level)
	case Tilt:
		mw.Latch0.WriteBit(2, level)
	case Start1:
		mw.Latch1.WriteBit(2, level)
	case Start2:
		mw.Latch1.WriteBit(1, level)
	case Fire:
		mw.Latch1.WriteBit(4, level)
	case Left:
		mw.Latch1.WriteBit(5, level)
	case Right:
		mw.Latch1.WriteBit(6, level)
	}
}

// Input implements the ports.Device interface.
func (mw *Midway) Input(port uint8) (uint8, error) {
	switch port {
	case 0:
		return mw.Latch0.Read(), nil
	case 1:
		return mw.Latch1.Read(), nil
	case 2:
		return mw.Latch2.Read(), nil
	case 3:
		return mw.Shift.Read(), nil
	}

	logger.Logf("midway", "read from unattached port %d", port)
	return 0, nil
}

// Output implements the ports.Device interface.
func (mw *Midway) Output(port uint8, data uint8) error {
	switch port {
	case 2:
		mw.Shift.SetOffset(data)
	case 3:
		mw.Sound = data
	case 4:
		mw.Shift.WriteLow(data)
	case 5:
		mw.Shift.WriteHigh(data)
	case 6:
		// watchdog. the program strobes this port to show it is still alive
	default:
		logger.Logf("midway", "write to unattached port %d (%#02x)", port, data)
	}
	return nil
}
