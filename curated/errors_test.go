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

package curated_test

import (
	"errors"
	"testing"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// plain errors are never curated
	p := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf("wrapping: %v", e)

	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Is(f, "wrapping: %v"))
}

func TestDuplicateNormalisation(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", errors.New("inner")))
	test.Equate(t, e.Error(), "error: inner")
}
