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

// InputLatch is one of the 8 bit latches that carry the cabinet controls and
// DIP switch settings. The inputs on the Midway board are active low so an
// idle latch reads as all ones.
type InputLatch struct {
	value uint8
}

// Read the current state of the latch.
func (lt InputLatch) Read() uint8 {
	return lt.value
}

// Write the whole latch at once.
func (lt *InputLatch) Write(data uint8) {
	lt.value = data
}

// WriteBit sets or clears an individual bit of the latch.
func (lt *InputLatch) WriteBit(bit uint8, level bool) {
	if level {
		lt.value |= 1 << (bit & 0x07)
	} else {
		lt.value &^= 1 << (bit & 0x07)
	}
}
