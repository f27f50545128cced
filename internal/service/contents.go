package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"contentsapi/internal/apperr"
	"contentsapi/internal/extract"
	"contentsapi/internal/ingest"
	"contentsapi/internal/model"
	"contentsapi/internal/repository"
)

// Ingestor is the attachment relocation stage as the pipeline sees it.
type Ingestor interface {
	Ingest(ctx context.Context, doc *model.ContentsDocument) []ingest.FieldResult
}

// ContentsService is the ingestion pipeline entrypoint: raw JSON in,
// canonical stored record out.
type ContentsService interface {
	// Put runs extract → validate → ingest attachments → create-or-update,
	// and returns the canonical record read back from the store.
	Put(ctx context.Context, raw []byte) (*model.ContentsDocument, error)

	// Get returns the stored record for an ISBN.
	Get(ctx context.Context, isbn string) (*model.ContentsDocument, error)
}

// contentsService owns a document for the duration of one request; nothing
// here is shared mutable state beyond the injected long-lived handles.
type contentsService struct {
	repo     repository.ContentsRepository
	ingestor Ingestor
	logw     io.Writer
}

// NewContentsService constructs the pipeline orchestrator.
func NewContentsService(repo repository.ContentsRepository, ingestor Ingestor) ContentsService {
	return &contentsService{repo: repo, ingestor: ingestor, logw: os.Stdout}
}

func (s *contentsService) Put(ctx context.Context, raw []byte) (*model.ContentsDocument, error) {
	doc, warns, err := extract.FromJSON(raw)
	if err != nil {
		return nil, apperr.Validation("malformed contents json", err.Error())
	}
	for _, w := range warns {
		s.logJSON(map[string]any{
			"component": "contents_pipeline",
			"event":     "extract_warning",
			"isbn":      doc.ISBN,
			"field":     w.Field,
			"reason":    w.Reason,
		})
	}

	// Reject before any side effect. The serialized document goes into the
	// error detail to aid debugging.
	if !doc.Valid() {
		detail, _ := json.Marshal(doc)
		return nil, apperr.Validation("contents document is not persistable", string(detail))
	}

	for _, res := range s.ingestor.Ingest(ctx, doc) {
		entry := map[string]any{
			"component": "contents_pipeline",
			"event":     "attachment_" + string(res.Status),
			"isbn":      doc.NormalizedISBN(),
			"field":     res.Field,
		}
		if res.Key != "" {
			entry["key"] = res.Key
		}
		if res.Reason != "" {
			entry["reason"] = res.Reason
		}
		if res.Err != nil {
			entry["error"] = res.Err.Error()
			entry["level"] = "error"
		}
		s.logJSON(entry)
	}

	isbn := doc.NormalizedISBN()
	existing, err := s.repo.Find(ctx, isbn)
	switch {
	case err == nil && existing != nil:
		if err := s.repo.Update(ctx, doc); err != nil {
			return nil, err
		}
	case errors.Is(err, apperr.ErrNotFound):
		if err := s.repo.Create(ctx, doc); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// Read-after-write: the canonical copy, reflecting store-assigned
	// fields, is a fresh instance, never the inbound one. A failed
	// confirmation read after a successful write gets one immediate retry
	// before it surfaces as a conflict.
	stored, err := s.repo.Find(ctx, isbn)
	if err != nil {
		stored, err = s.repo.Find(ctx, isbn)
	}
	if err != nil {
		return nil, apperr.Conflict("record written but confirmation read failed", err)
	}
	return stored, nil
}

func (s *contentsService) Get(ctx context.Context, isbn string) (*model.ContentsDocument, error) {
	if isbn == "" {
		return nil, apperr.Validation("isbn is required", "")
	}
	return s.repo.Find(ctx, isbn)
}

// logJSON writes one JSON object per line, matching the logging used across
// the rest of the process.
func (s *contentsService) logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal pipeline log: %v", err)
		return
	}
	b = append(b, '\n')
	_, _ = s.logw.Write(b)
}
