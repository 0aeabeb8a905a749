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

package seed

// generateScheduleInternal draws 24 RoundSchedules from a fresh PRNG
// seeded with s: one word picks the theta/rho-pi order, four more words
// pick the variant for each of the four step positions. Pure and
// idempotent: the same seed always yields the same schedule.
func generateScheduleInternal(s [32]byte) KeccakSchedule {
	prng := NewPRNG(s)
	var sched KeccakSchedule
	sched.Seed = s
	for r := 0; r < 24; r++ {
		order := prng.Next64()
		var round RoundSchedule
		if order%2 == 1 {
			round.StepOrder = [4]StepKind{RhoPi, Theta, Chi, Iota}
		} else {
			round.StepOrder = [4]StepKind{Theta, RhoPi, Chi, Iota}
		}
		for k := 0; k < 4; k++ {
			round.Variants[k] = int(prng.Next64() % 7)
		}
		sched.Rounds[r] = round
	}
	return sched
}
