package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColorMode folds the --color flag into a TTY decision.
// "never" and "always" override detection; anything else defers to isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// ValidateColorMode rejects values other than auto, always and never.
func ValidateColorMode(colorMode string) error {
	switch colorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return NewUserError(fmt.Sprintf("--color must be auto, always or never, got %q", colorMode))
}

// IsTTY reports whether writer is a terminal. Only *os.File can be one.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
