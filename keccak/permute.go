// Copyright (C) 2026 PolyMTD Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package keccak

import "github.com/PinkOwOjak/polymtd-keccak/seed"

// Permute runs all 24 rounds of the schedule-driven permutation over
// state in place. For round r, schedule.Rounds[r] names the theta/rho-pi
// order and a variant index for each of the four step positions; chi
// and iota always occupy positions 2 and 3.
func Permute(state *State, schedule *seed.KeccakSchedule) {
	for r := 0; r < 24; r++ {
		round := schedule.Rounds[r]
		for pos := 0; pos < 2; pos++ {
			switch round.StepOrder[pos] {
			case seed.Theta:
				ThetaVariants[round.Variants[pos]](state)
			case seed.RhoPi:
				RhoPiVariants[round.Variants[pos]](state)
			}
		}
		ChiVariants[round.Variants[2]](state)
		IotaVariants[round.Variants[3]](state, r)
	}
}
