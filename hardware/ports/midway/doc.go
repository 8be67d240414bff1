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

// Package midway emulates the IO hardware on the Midway 8080 board used by
// Space Invaders. The hardware consists of a 16 bit shift register, read
// through port 3 and fed through ports 2 and 4, and the latches that carry
// the cabinet controls and the DIP switch settings, read through ports 0 to
// 2.
//
// Cabinet controls are fed to the Midway type as events through the
// HandleEvent() function. The sound latches on ports 3 and 5 are accepted
// and recorded but no sound is produced.
package midway
