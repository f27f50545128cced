// Package ingest relocates attachment payloads into blob storage. Each of
// the four attachment fields on a document is classified (inline Base64,
// remote URL, or already a storage key), fetched, uploaded under a
// deterministic key, and the field rewritten to that key. Failures are
// contained per field; one broken attachment never blocks the others.
package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"contentsapi/internal/config"
	"contentsapi/internal/model"
	"contentsapi/internal/storage"
)

// Status classifies the outcome of one field's ingestion.
type Status string

const (
	StatusIngested Status = "ingested"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// FieldResult reports what happened to a single attachment field.
type FieldResult struct {
	Field  string
	Status Status
	Key    string
	Reason string
	Err    error
}

// base64Pattern is deliberately strict: standard alphabet, optional padding,
// length checked separately. Storage keys and URLs fail it because of dots
// and colons.
var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// minInlineLen avoids mistaking short plain identifiers for inline payloads.
const minInlineLen = 8

// Ingestor uploads attachment bytes to blob storage.
type Ingestor struct {
	store    storage.Storage
	client   *http.Client
	maxBytes int64
}

// New builds an Ingestor. The HTTP client used for remote fetches carries an
// otelhttp transport and the configured timeout.
func New(store storage.Storage, cfg config.IngestConfig) *Ingestor {
	return &Ingestor{
		store: store,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   time.Duration(cfg.HTTPTimeoutSec) * time.Second,
		},
		maxBytes: cfg.MaxFetchBytes,
	}
}

// Ingest processes the four attachment fields of doc with one goroutine per
// field. Fields that end up ingested are rewritten in place to their storage
// key; everything else is left untouched. Safe to call on a document with no
// attachments set. The returned results always cover all four fields.
func (g *Ingestor) Ingest(ctx context.Context, doc *model.ContentsDocument) []FieldResult {
	isbn := doc.NormalizedISBN()

	targets := []struct {
		name  string
		value *string
		kind  storage.AttachmentKind
	}{
		{"image_small", &doc.ImageSmall, storage.ImageSmallKind},
		{"image_large", &doc.ImageLarge, storage.ImageLargeKind},
		{"image_original", &doc.ImageOriginal, storage.ImageOriginalKind},
		{"audio_file", &doc.AudioFile, storage.AudioKind},
	}

	results := make([]FieldResult, len(targets))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(len(targets))
	for i, tgt := range targets {
		eg.Go(func() error {
			res := g.ingestField(ctx, isbn, tgt.name, *tgt.value, tgt.kind)
			if res.Status == StatusIngested {
				*tgt.value = res.Key
			}
			results[i] = res
			return nil
		})
	}
	_ = eg.Wait() // goroutines contain their own failures

	return results
}

// ingestField runs classification, retrieval and upload for one field.
func (g *Ingestor) ingestField(ctx context.Context, isbn, name, value string, kind storage.AttachmentKind) FieldResult {
	if strings.TrimSpace(value) == "" {
		return FieldResult{Field: name, Status: StatusSkipped, Reason: "blank"}
	}

	var payload []byte
	switch {
	case isInlineBase64(value):
		b, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return FieldResult{Field: name, Status: StatusFailed, Reason: "inline payload would not decode", Err: err}
		}
		payload = b
	case isRemoteURL(value):
		b, res := g.fetch(ctx, name, value)
		if res != nil {
			return *res
		}
		payload = b
	default:
		// Already a storage key or something we do not recognize; leave it.
		return FieldResult{Field: name, Status: StatusSkipped, Reason: "not an inline payload or url"}
	}

	key, err := storage.AttachmentKey(isbn, kind)
	if err != nil {
		return FieldResult{Field: name, Status: StatusFailed, Reason: "cannot derive storage key", Err: err}
	}

	_, err = g.store.Put(ctx, key, bytes.NewReader(payload), storage.PutObjectOptions{
		Size:               int64(len(payload)),
		ContentType:        kind.MIMEType,
		ContentDisposition: fmt.Sprintf("inline; filename=%q", kind.Filename(isbn)),
	})
	if err != nil {
		return FieldResult{Field: name, Status: StatusFailed, Reason: "upload failed", Err: err}
	}

	return FieldResult{Field: name, Status: StatusIngested, Key: key}
}

// fetch probes the URL with HEAD and, on success, streams the body to bytes.
// Returns either the payload or a terminal FieldResult.
func (g *Ingestor) fetch(ctx context.Context, name, rawURL string) ([]byte, *FieldResult) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: "malformed source url", Err: err}
	}

	head, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: "malformed source url", Err: err}
	}
	resp, err := g.client.Do(head)
	if err != nil {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: "source unavailable", Err: err}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: fmt.Sprintf("source returned status %d", resp.StatusCode)}
	}

	get, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: "malformed source url", Err: err}
	}
	resp, err = g.client.Do(get)
	if err != nil {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: "download failed", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: fmt.Sprintf("download returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: "download failed", Err: err}
	}
	if int64(len(body)) > g.maxBytes {
		return nil, &FieldResult{Field: name, Status: StatusFailed, Reason: fmt.Sprintf("payload exceeds %d bytes", g.maxBytes)}
	}
	return body, nil
}

func isInlineBase64(v string) bool {
	return len(v) >= minInlineLen && len(v)%4 == 0 && base64Pattern.MatchString(v)
}

func isRemoteURL(v string) bool {
	lower := strings.ToLower(v)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
