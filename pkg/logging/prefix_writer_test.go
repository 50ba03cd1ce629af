package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriter_BuffersPartialLines(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPrefixWriter("> ", &buf)

	writes := []string{"first li", "ne\nsecond\n", "third"}
	for _, w := range writes {
		n, err := pw.Write([]byte(w))
		if err != nil {
			t.Fatalf("Write(%q) error: %v", w, err)
		}
		if n != len(w) {
			t.Errorf("Write(%q) = %d, want %d", w, n, len(w))
		}
	}

	want := "> first line\n> second\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	if _, err := pw.Write([]byte("\n")); err != nil {
		t.Fatalf("Write newline error: %v", err)
	}
	want += "> third\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrefixWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPrefixWriter("> ", &buf)

	if err := pw.Flush(); err != nil {
		t.Fatalf("Flush on empty buffer: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty Flush wrote %q", buf.String())
	}

	if _, err := pw.Write([]byte("dangling")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := pw.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if got, want := buf.String(), "> dangling\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
