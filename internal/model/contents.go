package model

import (
	"strings"
	"time"
)

// ContentsDocument is the canonical bibliographic record keyed by ISBN.
// This is a pure domain model with no database-specific dependencies or tags.
// The attachment fields (ImageSmall, ImageLarge, ImageOriginal, AudioFile)
// hold different things at different pipeline stages: a remote URL or an
// inline Base64 payload on the way in, an opaque storage key once ingestion
// has relocated the bytes to blob storage.
type ContentsDocument struct {
	ISBN              string     `json:"isbn"`
	Title             string     `json:"title,omitempty"`
	Author            string     `json:"author,omitempty"`
	DateOfPublication string     `json:"date_of_publication,omitempty"`
	DescriptionShort  string     `json:"description_short,omitempty"`
	DescriptionLong   string     `json:"description_long,omitempty"`
	TableOfContents   string     `json:"table_of_contents,omitempty"`
	Promotional       string     `json:"promotional,omitempty"`
	Summary           string     `json:"summary,omitempty"`
	Review            string     `json:"review,omitempty"`
	ImageSmall        string     `json:"image_small,omitempty"`
	ImageLarge        string     `json:"image_large,omitempty"`
	ImageOriginal     string     `json:"image_original,omitempty"`
	AudioFile         string     `json:"audio_file,omitempty"`
	Source            string     `json:"source,omitempty"`
	Modified          *time.Time `json:"modified,omitempty"`
	Created           *time.Time `json:"created,omitempty"`
}

// Valid reports whether the document may be persisted: it needs a non-blank
// ISBN, a non-blank source, and either a table of contents or at least one
// image. Pure predicate; callers decide what to do with a reject.
func (d *ContentsDocument) Valid() bool {
	if d == nil {
		return false
	}
	if isBlank(d.ISBN) || isBlank(d.Source) {
		return false
	}
	if !isBlank(d.TableOfContents) {
		return true
	}
	return !isBlank(d.ImageSmall) || !isBlank(d.ImageLarge) || !isBlank(d.ImageOriginal)
}

// NormalizedISBN returns the ISBN uppercased and trimmed, the form used for
// persistence and storage-key derivation.
func (d *ContentsDocument) NormalizedISBN() string {
	return strings.ToUpper(strings.TrimSpace(d.ISBN))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
