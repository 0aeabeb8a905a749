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

// State is the 1600-bit Keccak state: 25 lanes, logical coordinates
// (x, y) with x, y in 0..4 mapping to flat index x + 5*y.
type State [25]uint64

// NumVariants is the number of interchangeable implementations available
// for each of the four step kinds.
const NumVariants = 7

// ThetaFunc, RhoPiFunc and ChiFunc mutate a state in place.
type ThetaFunc func(*State)
type RhoPiFunc func(*State)
type ChiFunc func(*State)

// IotaFunc mutates a state in place given the current round index (0..23).
type IotaFunc func(*State, int)
