package notion

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mood is the rating attached to a mood-log note.
type Mood int

// The six moods a note can carry. There is no "unknown" member: any other
// code in a note is a parse error.
const (
	MoodUnrated Mood = iota
	MoodLevel1
	MoodLevel2
	MoodLevel3
	MoodLevel4
	MoodLevel5
)

var moodCodes = map[string]Mood{
	"-1": MoodUnrated,
	"1":  MoodLevel1,
	"2":  MoodLevel2,
	"3":  MoodLevel3,
	"4":  MoodLevel4,
	"5":  MoodLevel5,
}

// ParseMood maps a note's mood code to a Mood.
// Returns a KindValue *ParseError for anything outside -1, 1..5.
func ParseMood(code string) (Mood, error) {
	mood, ok := moodCodes[code]
	if !ok {
		return 0, &ParseError{
			Kind:  KindValue,
			Field: "mood",
			Err:   fmt.Errorf("unknown mood code %q (want -1, 1, 2, 3, 4 or 5)", code),
		}
	}
	return mood, nil
}

// Code returns the code the mood is written as in a note.
func (m Mood) Code() string {
	switch m {
	case MoodUnrated:
		return "-1"
	case MoodLevel1:
		return "1"
	case MoodLevel2:
		return "2"
	case MoodLevel3:
		return "3"
	case MoodLevel4:
		return "4"
	case MoodLevel5:
		return "5"
	}
	return fmt.Sprintf("invalid(%d)", int(m))
}

// String returns a readable label.
func (m Mood) String() string {
	if m == MoodUnrated {
		return "unrated"
	}
	if m >= MoodLevel1 && m <= MoodLevel5 {
		return fmt.Sprintf("level%d", int(m))
	}
	return fmt.Sprintf("Mood(%d)", int(m))
}

// MarshalJSON encodes the mood as its note code.
func (m Mood) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Code())
}

// UnmarshalJSON decodes a note code.
func (m *Mood) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParseMood(code)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes the mood as its note code.
func (m Mood) MarshalYAML() (any, error) {
	return m.Code(), nil
}

// UnmarshalYAML decodes a note code.
func (m *Mood) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseMood(node.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
