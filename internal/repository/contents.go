package repository

import (
	"context"

	"contentsapi/internal/model"
)

// ContentsRepository is the key-value persistence surface for contents
// records, keyed by normalized ISBN. No business logic here, strictly
// persistence operations. Implementations translate store-level failures
// into the apperr taxonomy:
//
//   - Find: missing or empty item, and transport failures, both surface as
//     a not-found error (the store does not distinguish absent from
//     unreachable at this layer); an unreadable stored payload surfaces as
//     a serialization error.
//   - Create/Update: store rejection, unreachability, or an empty
//     acknowledgment all surface as a communication error.
type ContentsRepository interface {
	// Create inserts a full record from every non-blank field of doc.
	// Created defaults to now when absent on doc.
	Create(ctx context.Context, doc *model.ContentsDocument) error

	// Find returns the record stored under the given ISBN.
	Find(ctx context.Context, isbn string) (*model.ContentsDocument, error)

	// Update writes the non-blank fields of doc over the existing record
	// and stamps modified to now; a client-supplied modified is ignored.
	Update(ctx context.Context, doc *model.ContentsDocument) error
}
