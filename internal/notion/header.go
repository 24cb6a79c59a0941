package notion

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Header line markers.
const (
	HumanDatePrefix = "Date (human): "
	MoodPrefix      = "Mood: "
)

// humanDateLayout is YYYY-MM-DD HH:MM.
const humanDateLayout = "2006-01-02 15:04"

// SourceOffset is the UTC offset the human date line is read in.
// TODO: read the offset from the "Date:" line once exports from other zones need importing.
const SourceOffset = time.Hour

var sourceZone = time.FixedZone("UTC+01:00", int(SourceOffset/time.Second))

// ParseHumanDate parses a line like "Date (human): 1970-01-01 01:01" and
// returns the instant in UTC.
func ParseHumanDate(line string) (time.Time, error) {
	value, ok := strings.CutPrefix(line, HumanDatePrefix)
	if !ok {
		return time.Time{}, &ParseError{
			Kind:  KindFormat,
			Field: "date",
			Err:   fmt.Errorf("expected %q prefix, got %q", HumanDatePrefix, line),
		}
	}

	// time.ParseInLocation tolerates single-digit fields in some layouts;
	// the exact width is enforced here.
	if len(value) != len(humanDateLayout) {
		return time.Time{}, dateValueError(value, errors.New("want YYYY-MM-DD HH:MM"))
	}

	ts, err := time.ParseInLocation(humanDateLayout, value, sourceZone)
	if err != nil {
		return time.Time{}, dateValueError(value, err)
	}
	return ts.UTC(), nil
}

func dateValueError(value string, cause error) error {
	return &ParseError{
		Kind:  KindValue,
		Field: "date",
		Err:   fmt.Errorf("parsing %q: %w", value, cause),
	}
}

// parseMoodLine parses a line like "Mood: 2".
func parseMoodLine(line string) (Mood, error) {
	code, ok := strings.CutPrefix(line, MoodPrefix)
	if !ok {
		return 0, &ParseError{
			Kind:  KindFormat,
			Field: "mood",
			Err:   fmt.Errorf("expected %q prefix, got %q", MoodPrefix, line),
		}
	}
	return ParseMood(code)
}
