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

package archive

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriterReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Append("first", "report body one"); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("second", "report body two"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].Label != "first" || entries[0].Report != "report body one" {
		t.Fatalf("entry 0 mismatch: %+v", entries[0])
	}
	if entries[1].Label != "second" || entries[1].Report != "report body two" {
		t.Fatalf("entry 1 mismatch: %+v", entries[1])
	}
	for i, e := range entries {
		if e.ID.String() == "" {
			t.Fatalf("entry %d: empty run id", i)
		}
		if e.Checksum != checksum(e.Report) {
			t.Fatalf("entry %d: checksum does not match report text", i)
		}
	}
}

func TestReadDetectsChecksumTampering(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Append("label", "original report"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}

	// Re-encode the same entry with a tampered report but the original
	// (now-stale) checksum, bypassing Append so the mismatch survives.
	entries[0].Report = "tampered report"
	var tampered bytes.Buffer
	tw, err := NewWriter(&tampered)
	if err != nil {
		t.Fatal(err)
	}
	line, err := json.Marshal(entries[0])
	if err != nil {
		t.Fatal(err)
	}
	line = append(line, '\n')
	if _, err := tw.enc.Write(line); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(bytes.NewReader(tampered.Bytes())); err == nil {
		t.Fatal("Read accepted an entry with a report/checksum mismatch")
	}
}

func TestUniqueIDsAcrossEntries(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Append("a", "x"); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("b", "y"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	entries, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].ID == entries[1].ID {
		t.Fatal("two Append calls produced identical run IDs")
	}
}
