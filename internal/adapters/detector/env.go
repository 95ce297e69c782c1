// Package detector picks the log format from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Format is the rendering format of the log output.
type Format int

const (
	// FormatPretty renders coloured, human-readable lines.
	FormatPretty Format = iota
	// FormatPlain renders the same lines without colours, for CI logs and pipes.
	FormatPlain
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatJSON:
		return "json"
	default:
		return "pretty"
	}
}

// DetectFormat returns pretty output when stderr is a terminal outside CI, plain otherwise.
func DetectFormat() Format {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) Format {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return FormatPlain
	}
	return FormatPretty
}

// ResolveFormat applies the --log-format flag to the detected format.
// userFlag is one of "auto", "pretty", "plain", "json" or empty; unknown values keep the detected format.
func ResolveFormat(detected Format, userFlag string) Format {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "plain":
		return FormatPlain
	case "json":
		return FormatJSON
	default:
		return detected
	}
}
