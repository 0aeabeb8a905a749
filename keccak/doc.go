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

// Package keccak implements a variant family of the Keccak-f[1600]
// permutation: seven drop-in replacements for each of the four round
// steps (theta, rho-pi, chi, iota), plus the SHA-3 pad10*1 state
// initializer. It makes no cryptographic security claim; it exists to
// let a schedule (see package seed) pick a different step implementation
// on every round for cryptanalysis exploration.
package keccak
