package importer

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Options controls how notes become entries and how a batch behaves.
type Options struct {
	// Journal is the target Day One journal. Empty uses Day One's default.
	Journal string

	// MarkerTag is added to every entry after the mood tag. Empty disables it.
	MarkerTag string

	// ExtraTags follow the marker tag on every entry.
	ExtraTags []string

	Starred bool

	// DryRun converts every note but submits nothing.
	DryRun bool

	// KeepGoing records a failed document and continues with the next one.
	// Without it the first failure ends the batch.
	KeepGoing bool
}

func (o *Options) normalize() {
	o.Journal = strings.TrimSpace(o.Journal)
	o.MarkerTag = strings.TrimSpace(o.MarkerTag)
	tags := make([]string, len(o.ExtraTags))
	for i, tag := range o.ExtraTags {
		tags[i] = strings.TrimSpace(tag)
	}
	o.ExtraTags = tags
}

// Validate checks field values.
func (o *Options) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.MarkerTag, validation.By(notFlag)),
		validation.Field(&o.ExtraTags, validation.Each(validation.Required, validation.By(notFlag))),
	)
}

// notFlag rejects tags dayone2 would read as the start of the next option,
// since --tags takes a variadic list.
func notFlag(value any) error {
	tag, _ := value.(string)
	if strings.HasPrefix(tag, "-") {
		return validation.NewError("validation_tag_flag", "must not start with '-'")
	}
	return nil
}
