package bank

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{
			name:  "wav",
			input: "wav",
			want:  FormatWAV,
		},
		{
			name:  "mp3",
			input: "mp3",
			want:  FormatMP3,
		},
		{
			name:  "ogg",
			input: "ogg",
			want:  FormatOGG,
		},
		{
			name:  "flac",
			input: "flac",
			want:  FormatFLAC,
		},
		{
			name:  "m4a",
			input: "m4a",
			want:  FormatM4A,
		},
		{
			name:    "uppercase not accepted",
			input:   "WAV",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unsupported format",
			input:   "aiff",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExtension(t *testing.T) {
	for _, f := range Formats {
		if f.Extension() != string(f) {
			t.Errorf("Extension() for %v = %q, want %q", f, f.Extension(), string(f))
		}
	}
}
