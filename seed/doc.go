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

// Package seed turns an input — a plaintext string, a binary blob, or a
// key — into a deterministic round schedule for the keccak package's
// permutation driver. The pipeline is domain-separated SHA-256 to a
// 32-byte seed, then AES-256 in counter mode expanding that seed into a
// stream of 64-bit words consumed by the schedule generator.
package seed
