package importer

import "github.com/gorewood/moodlog/internal/notion"

// MoodTagPrefix prefixes the mood code in the tag that carries a note's mood.
const MoodTagPrefix = "mood/"

// TagsFor returns the tags for an entry with the given mood: the mood tag,
// then markerTag when non-empty, then extra in order. Duplicates are dropped.
func TagsFor(mood notion.Mood, markerTag string, extra []string) []string {
	tags := []string{MoodTagPrefix + mood.Code()}
	if markerTag != "" {
		tags = append(tags, markerTag)
	}
	tags = append(tags, extra...)

	seen := make(map[string]bool, len(tags))
	unique := tags[:0]
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}
	return unique
}
