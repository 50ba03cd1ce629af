package permissions

import (
	"os"
	"testing"
)

func TestParseOctalString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    os.FileMode
		wantErr bool
	}{
		{name: "empty uses default", input: "", want: DefaultFilePerms},
		{name: "plain", input: "644", want: 0o644},
		{name: "leading zero", input: "0600", want: 0o600},
		{name: "0o prefix", input: "0o640", want: 0o640},
		{name: "not octal", input: "989", wantErr: true},
		{name: "out of range", input: "7777", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOctalString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseOctalString(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOctalString(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOctalString(%q) = %s, want %s", tt.input, FormatOctal(got), FormatOctal(tt.want))
			}
		})
	}
}

func TestDirFor(t *testing.T) {
	tests := []struct {
		file os.FileMode
		want os.FileMode
	}{
		{0o644, 0o755},
		{0o600, 0o700},
		{0o640, 0o750},
	}
	for _, tt := range tests {
		if got := DirFor(tt.file); got != tt.want {
			t.Errorf("DirFor(%s) = %s, want %s", FormatOctal(tt.file), FormatOctal(got), FormatOctal(tt.want))
		}
	}
}
