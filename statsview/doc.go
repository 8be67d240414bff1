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

// Package statsview serves runtime statistics for a running emulation over
// a local HTTP server. The server is compiled in only when the statsview
// build constraint is given; the default build substitutes a stub Launch()
// so the -stats command line flag degrades gracefully.
//
// When the constraint is in place, graphs are served at
// localhost:12080/debug/statsview and the standard pprof endpoints at
// localhost:12080/debug/pprof/. The heavy lifting is done by
// github.com/go-echarts/statsview.
package statsview
