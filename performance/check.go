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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/hardware"
	"github.com/softlanding/invader80/romload"
)

// Check is a very rough and ready calculation of the emulator's performance.
func Check(output io.Writer, profile bool, runTime string, loaders ...romload.Loader) error {
	m := hardware.NewMachine()

	err := m.AttachROM(loaders...)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := 0
	numCycles := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		timesUp := make(chan bool)
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			cycles, err := m.StepFrame()
			if err != nil {
				return err
			}
			numFrames++
			numCycles += cycles
		}
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps := float64(numFrames) / duration.Seconds()
	clock := float64(numCycles) / duration.Seconds()
	speedup := clock / hardware.ClockHz

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds)\n", fps, numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f MHz emulated clock (%.1fx a real 8080)\n", clock/1e6, speedup)

	return memProfile(profile, "mem.profile")
}
