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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/softlanding/invader80/curated"
)

// cpuProfile runs the supplied function, optionally collecting a CPU profile
// while it runs.
func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

// RunProfiler collects a CPU profile for the duration of the supplied
// function and a profile of the heap as the function ends. Unlike Check()
// it places no limit on how long the function runs for, making it useful
// for real-world sessions.
func RunProfiler(profileName string, run func() error) error {
	err := cpuProfile(true, profileName+"_cpu.profile", run)
	if err != nil {
		return err
	}
	return memProfile(true, profileName+"_mem.profile")
}

// memProfile optionally writes a profile of the heap as it is at the time of
// the call.
func memProfile(profile bool, outFile string) error {
	if !profile {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
