package bank

import "fmt"

// Format identifies a conversion target format
type Format string

const (
	FormatWAV  Format = "wav"
	FormatMP3  Format = "mp3"
	FormatOGG  Format = "ogg"
	FormatFLAC Format = "flac"
	FormatM4A  Format = "m4a"
)

// Formats lists all supported target formats in menu order
var Formats = []Format{FormatWAV, FormatMP3, FormatOGG, FormatFLAC, FormatM4A}

// ParseFormat validates a format identifier from user input
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: wav, mp3, ogg, flac, m4a)", ErrUnknownFormat, s)
}

// Extension returns the filename extension for the format, without the dot
func (f Format) Extension() string {
	return string(f)
}

func (f Format) String() string {
	return string(f)
}
