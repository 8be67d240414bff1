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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() from the fmt package except that the formatting pattern is also
// the identity of the error. For example:
//
//	e := curated.Errorf("memory: cannot peek address %#04x", addr)
//
//	if curated.Is(e, "memory: cannot peek address %#04x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks whether a pattern occurs
// anywhere in the error chain, rather than just the outermost error. Errors
// are chained by using a curated error as a value in a subsequent call to
// Errorf().
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Uncurated errors are best thought of as
// unexpected errors and probably indicate a bug in the emulation.
package curated
