package storage

import "fmt"

// Attachment key layout: files/{type}/{subtype}/{c1}/{c2}/{isbn}.{ext}.
// c1 and c2 are the last and second-to-last ISBN characters; the two
// single-character segments bound directory fan-out in the blob store.

// AttachmentKind pins the type/subtype/extension triple for one of the four
// attachment fields.
type AttachmentKind struct {
	Type      string
	Subtype   string
	Extension string
	MIMEType  string
}

var (
	ImageSmallKind    = AttachmentKind{Type: "images", Subtype: "small", Extension: "jpg", MIMEType: "image/jpg"}
	ImageLargeKind    = AttachmentKind{Type: "images", Subtype: "large", Extension: "jpg", MIMEType: "image/jpg"}
	ImageOriginalKind = AttachmentKind{Type: "images", Subtype: "original", Extension: "jpg", MIMEType: "image/jpg"}
	AudioKind         = AttachmentKind{Type: "audio", Subtype: "mp3", Extension: "mp3", MIMEType: "audio/mpeg"}
)

// AttachmentKey derives the deterministic storage key for an attachment.
// Pure function of its inputs: the same isbn and kind always produce the
// same key. The isbn must already be normalized (uppercase, trimmed).
func AttachmentKey(isbn string, kind AttachmentKind) (string, error) {
	if len(isbn) < 2 {
		return "", fmt.Errorf("isbn %q too short for key sharding", isbn)
	}
	c1 := isbn[len(isbn)-1]
	c2 := isbn[len(isbn)-2]
	return fmt.Sprintf("files/%s/%s/%c/%c/%s.%s", kind.Type, kind.Subtype, c1, c2, isbn, kind.Extension), nil
}

// Filename returns the download filename hint for an attachment.
func (k AttachmentKind) Filename(isbn string) string {
	return fmt.Sprintf("%s.%s", isbn, k.Extension)
}
