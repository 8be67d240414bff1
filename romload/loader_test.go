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

package romload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/softlanding/invader80/romload"
	"github.com/softlanding/invader80/test"
)

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "invaders.h")
	err := os.WriteFile(fn, []byte{0x00, 0xc3, 0x00, 0x08}, 0o644)
	test.ExpectedSuccess(t, err)

	ld := romload.NewLoader(fn, 0x0000)
	test.Equate(t, ld.HasLoaded(), false)
	test.Equate(t, ld.ShortName(), "invaders")

	err = ld.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, ld.HasLoaded(), true)
	test.Equate(t, len(ld.Data), 4)

	// hash is filled in by the load
	if ld.Hash == "" {
		t.Errorf("expected hash to be generated on load")
	}

	// a wrong expected hash is refused
	bad := romload.NewLoader(fn, 0x0000)
	bad.Hash = "0000000000000000000000000000000000000000"
	err = bad.Load()
	test.ExpectedFailure(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	ld := romload.NewLoader(filepath.Join(t.TempDir(), "no-such-rom.bin"), 0x0000)
	err := ld.Load()
	test.ExpectedFailure(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "too-large.bin")
	err := os.WriteFile(fn, make([]byte, 0x0800), 0o644)
	test.ExpectedSuccess(t, err)

	// 2k image at an origin 1k below the top of memory
	ld := romload.NewLoader(fn, 0xfc00)
	err = ld.Load()
	test.ExpectedFailure(t, err)
}
