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

package execution

import (
	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}

	// a halted CPU reports a single idle cycle against the HLT definition.
	// nothing was fetched so none of the other checks apply
	if r.Defn.Operation == instructions.Hlt && r.ByteCount == 0 && !r.Interrupted {
		if r.Cycles != 1 {
			return curated.Errorf("cpu: number of cycles wrong for halted CPU (%d instead of 1)", r.Cycles)
		}
		return nil
	}

	// interrupt dispatch doesn't fetch from memory so the byte count check
	// doesn't apply
	if !r.Interrupted && r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.BranchSuccess && !r.Defn.IsConditional() {
		return curated.Errorf("cpu: branch success for unconditional opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
	}

	if r.Defn.IsConditional() && r.BranchSuccess {
		if r.Cycles != r.Defn.Cycles+r.Defn.CyclesBranch {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles,
				r.Defn.Cycles+r.Defn.CyclesBranch)
		}
	} else {
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles,
				r.Defn.Cycles)
		}
	}

	return nil
}
