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

// Package cpm provides just enough of the CP/M program environment to run
// the classic 8080 exerciser ROMs, which are CP/M .COM programs loaded at
// address 0x0100. Those programs print through BDOS function calls at
// address 0x0005 and terminate by jumping to address 0x0000.
//
// The Console type stubs both addresses with OUT instructions to ports it
// watches, which is all the BDOS the exercisers need: function 2 prints the
// character in register E and function 9 prints the string addressed by DE,
// terminated by a dollar sign.
package cpm
