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

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSHA256VectorsFIPS(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		got := SHA256([]byte(c.in))
		gotHex := hex.EncodeToString(got[:])
		if gotHex != c.want {
			t.Errorf("SHA256(%q) = %s, want %s", c.in, gotHex, c.want)
		}
	}
}

func TestSHA256MatchesStdlib(t *testing.T) {
	for n := 0; n <= 4096; n += 37 {
		data := make([]byte, n)
		if _, err := rand.Read(data); err != nil {
			t.Fatal(err)
		}
		want := sha256.Sum256(data)
		got := SHA256(data)
		if got != want {
			t.Fatalf("SHA256 mismatch for length %d", n)
		}
	}
}
