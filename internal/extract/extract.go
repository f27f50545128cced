// Package extract maps loosely-structured inbound JSON to a typed
// model.ContentsDocument. Extraction is tolerant: a missing, blank or
// malformed field never fails the request, it only produces a warning.
// Validation and attachment handling are separate stages.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"contentsapi/internal/model"
)

// Warning records a non-fatal extraction observation for one field.
type Warning struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Reason)
}

// rawDocument mirrors the inbound JSON shape. Pointer fields distinguish
// "absent" from "present but empty"; unknown keys are dropped by
// encoding/json.
type rawDocument struct {
	ISBN              *string `json:"isbn"`
	Title             *string `json:"title"`
	Author            *string `json:"author"`
	DateOfPublication *string `json:"date_of_publication"`
	DescriptionShort  *string `json:"description_short"`
	DescriptionLong   *string `json:"description_long"`
	TableOfContents   *string `json:"table_of_contents"`
	Promotional       *string `json:"promotional"`
	Summary           *string `json:"summary"`
	Review            *string `json:"review"`
	ImageSmall        *string `json:"image_small"`
	ImageLarge        *string `json:"image_large"`
	ImageOriginal     *string `json:"image_original"`
	AudioFile         *string `json:"audio_file"`
	Source            *string `json:"source"`
	Created           *string `json:"created"`
}

// FromJSON extracts a ContentsDocument from raw JSON bytes. Only top-level
// malformed JSON is an error; every field-level problem is reported as a
// warning and the field left at its zero value.
func FromJSON(raw []byte) (*model.ContentsDocument, []Warning, error) {
	var in rawDocument
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, nil, fmt.Errorf("parse contents json: %w", err)
	}

	var warns []Warning
	doc := &model.ContentsDocument{}

	doc.ISBN = stringField(&warns, "isbn", in.ISBN)
	doc.Title = stringField(&warns, "title", in.Title)
	doc.Author = stringField(&warns, "author", in.Author)
	doc.DateOfPublication = stringField(&warns, "date_of_publication", in.DateOfPublication)
	doc.DescriptionShort = stringField(&warns, "description_short", in.DescriptionShort)
	doc.DescriptionLong = stringField(&warns, "description_long", in.DescriptionLong)
	doc.TableOfContents = stringField(&warns, "table_of_contents", in.TableOfContents)
	doc.Promotional = stringField(&warns, "promotional", in.Promotional)
	doc.Summary = stringField(&warns, "summary", in.Summary)
	doc.Review = stringField(&warns, "review", in.Review)
	doc.ImageSmall = stringField(&warns, "image_small", in.ImageSmall)
	doc.ImageLarge = stringField(&warns, "image_large", in.ImageLarge)
	doc.ImageOriginal = stringField(&warns, "image_original", in.ImageOriginal)
	doc.AudioFile = stringField(&warns, "audio_file", in.AudioFile)
	doc.Source = stringField(&warns, "source", in.Source)
	doc.Created = timeField(&warns, "created", in.Created)

	return doc, warns, nil
}

// stringField resolves an optional string field, warning when it is absent
// or blank.
func stringField(warns *[]Warning, name string, v *string) string {
	if v == nil {
		*warns = append(*warns, Warning{Field: name, Reason: "missing"})
		return ""
	}
	if strings.TrimSpace(*v) == "" {
		*warns = append(*warns, Warning{Field: name, Reason: "blank"})
		return ""
	}
	return *v
}

// timeField resolves an optional timestamp field with strict RFC3339
// parsing. A present but unparseable value is dropped with a format warning,
// never partially parsed.
func timeField(warns *[]Warning, name string, v *string) *time.Time {
	if v == nil || strings.TrimSpace(*v) == "" {
		if v == nil {
			*warns = append(*warns, Warning{Field: name, Reason: "missing"})
		} else {
			*warns = append(*warns, Warning{Field: name, Reason: "blank"})
		}
		return nil
	}
	ts, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		*warns = append(*warns, Warning{Field: name, Reason: "unparseable timestamp"})
		return nil
	}
	return &ts
}
