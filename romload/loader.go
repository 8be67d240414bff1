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

package romload

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/softlanding/invader80/curated"
)

// Loader is used to specify a ROM image to place in the emulated memory.
type Loader struct {
	// filename of ROM image to load
	Filename string

	// the address the image will be placed at
	Origin uint16

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return a copy
	// of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, origin uint16) Loader {
	return Loader{
		Filename: filename,
		Origin:   origin,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(ld.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data and make it available through the Data field. Loader
// filenames with a valid schema will use that method to load the data.
// Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romload: %v", err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romload: %v", err)
		}

	case "file":
		fallthrough

	case "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("romload: %v", err)
		}

	default:
		return curated.Errorf("romload: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("romload: %v", "empty ROM image")
	}

	// the image must fit in the 64k address space when placed at the origin
	if int(ld.Origin)+len(ld.Data) > 0x10000 {
		return curated.Errorf("romload: %v", fmt.Sprintf("image too large for origin %#04x (%d bytes)", ld.Origin, len(ld.Data)))
	}

	// generate hash and check for consistency
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("romload: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}
