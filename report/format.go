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

package report

import (
	"fmt"
	"strings"

	"github.com/PinkOwOjak/polymtd-keccak/seed"
)

// FormatSchedule renders a schedule's seed in lowercase hex on its own
// line, followed by one line per round naming the step order and the
// four chosen variant indices, e.g.:
//
//	round 00: θ → ρπ → χ → ι  [variants 3 1 5 0]
func FormatSchedule(s seed.KeccakSchedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%x\n", s.Seed)
	for i, round := range s.Rounds {
		symbols := make([]string, 4)
		for k, step := range round.StepOrder {
			symbols[k] = step.Symbol()
		}
		fmt.Fprintf(&b, "round %02d: %s  [variants %d %d %d %d]\n",
			i, strings.Join(symbols, " → "),
			round.Variants[0], round.Variants[1], round.Variants[2], round.Variants[3])
	}
	return b.String()
}
