package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contentsapi/internal/config"
	"contentsapi/internal/model"
	"contentsapi/internal/storage"
	storeMocks "contentsapi/internal/storage/mocks"
)

func testConfig() config.IngestConfig {
	return config.IngestConfig{HTTPTimeoutSec: 5, MaxFetchBytes: 1 << 20}
}

func resultFor(t *testing.T, results []FieldResult, field string) FieldResult {
	t.Helper()
	for _, r := range results {
		if r.Field == field {
			return r
		}
	}
	t.Fatalf("no result for field %s", field)
	return FieldResult{}
}

func TestIngest_NoAttachments(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	g := New(mStore, testConfig())

	doc := &model.ContentsDocument{ISBN: "9788205377547", Source: "SRC", TableOfContents: "toc"}
	results := g.Ingest(context.Background(), doc)

	assert.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, StatusSkipped, r.Status)
	}
	mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_AlreadyStorageKeysLeftUntouched(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	g := New(mStore, testConfig())

	doc := &model.ContentsDocument{
		ISBN:       "9788205377547",
		ImageSmall: "files/images/small/7/4/9788205377547.jpg",
		AudioFile:  "files/audio/mp3/7/4/9788205377547.mp3",
	}
	results := g.Ingest(context.Background(), doc)

	assert.Equal(t, "files/images/small/7/4/9788205377547.jpg", doc.ImageSmall)
	assert.Equal(t, "files/audio/mp3/7/4/9788205377547.mp3", doc.AudioFile)
	assert.Equal(t, StatusSkipped, resultFor(t, results, "image_small").Status)
	assert.Equal(t, StatusSkipped, resultFor(t, results, "audio_file").Status)
	mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_InlineBase64(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	payload := []byte("jpeg bytes here!")
	encoded := base64.StdEncoding.EncodeToString(payload)

	mStore.On("Put", mock.Anything, "files/images/large/7/4/9788205377547.jpg", mock.Anything,
		mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "image/jpg" && opt.Size == int64(len(payload))
		})).Return(storage.ObjectInfo{Key: "files/images/large/7/4/9788205377547.jpg"}, nil)

	g := New(mStore, testConfig())
	doc := &model.ContentsDocument{ISBN: "9788205377547", ImageLarge: encoded}
	results := g.Ingest(context.Background(), doc)

	res := resultFor(t, results, "image_large")
	assert.Equal(t, StatusIngested, res.Status)
	assert.Equal(t, "files/images/large/7/4/9788205377547.jpg", doc.ImageLarge)
	mStore.AssertExpectations(t)
}

func TestIngest_RemoteURL(t *testing.T) {
	payload := []byte("remote jpeg")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Write(payload)
	}))
	defer srv.Close()

	mStore := new(storeMocks.MockStorage)
	mStore.On("Put", mock.Anything, "files/images/small/7/4/9788205377547.jpg", mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, nil)

	g := New(mStore, testConfig())
	doc := &model.ContentsDocument{ISBN: "9788205377547", ImageSmall: srv.URL + "/cover.jpg"}
	results := g.Ingest(context.Background(), doc)

	assert.Equal(t, StatusIngested, resultFor(t, results, "image_small").Status)
	assert.Equal(t, "files/images/small/7/4/9788205377547.jpg", doc.ImageSmall)
	mStore.AssertExpectations(t)
}

func TestIngest_RemoteURLUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	mStore := new(storeMocks.MockStorage)
	g := New(mStore, testConfig())

	original := srv.URL + "/missing.jpg"
	doc := &model.ContentsDocument{ISBN: "9788205377547", ImageOriginal: original}
	results := g.Ingest(context.Background(), doc)

	res := resultFor(t, results, "image_original")
	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Reason, "404")
	// Field keeps its prior value on failure.
	assert.Equal(t, original, doc.ImageOriginal)
	mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIngest_OneFieldFailureDoesNotBlockOthers(t *testing.T) {
	payload := []byte("ok")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad.jpg" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(payload)
	}))
	defer srv.Close()

	mStore := new(storeMocks.MockStorage)
	mStore.On("Put", mock.Anything, "files/images/small/7/4/9788205377547.jpg", mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, nil)

	g := New(mStore, testConfig())
	doc := &model.ContentsDocument{
		ISBN:       "9788205377547",
		ImageSmall: srv.URL + "/good.jpg",
		ImageLarge: srv.URL + "/bad.jpg",
	}
	results := g.Ingest(context.Background(), doc)

	assert.Equal(t, StatusIngested, resultFor(t, results, "image_small").Status)
	assert.Equal(t, StatusFailed, resultFor(t, results, "image_large").Status)
	mStore.AssertExpectations(t)
}

func TestIngest_UploadFailureContained(t *testing.T) {
	payload := []byte("jpeg bytes here!")
	encoded := base64.StdEncoding.EncodeToString(payload)

	mStore := new(storeMocks.MockStorage)
	mStore.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{}, errors.New("blob store down"))

	g := New(mStore, testConfig())
	doc := &model.ContentsDocument{ISBN: "9788205377547", AudioFile: encoded}
	results := g.Ingest(context.Background(), doc)

	res := resultFor(t, results, "audio_file")
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, encoded, doc.AudioFile)
}

func TestIngest_MalformedURLIsPerFieldFailure(t *testing.T) {
	mStore := new(storeMocks.MockStorage)
	g := New(mStore, testConfig())

	doc := &model.ContentsDocument{ISBN: "9788205377547", ImageSmall: "http://bad host/with space"}
	results := g.Ingest(context.Background(), doc)

	res := resultFor(t, results, "image_small")
	assert.Equal(t, StatusFailed, res.Status)
	mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClassification(t *testing.T) {
	assert.True(t, isInlineBase64("aGVsbG8gd29ybGQh"))
	assert.False(t, isInlineBase64("files/images/small/7/4/x.jpg"))
	assert.False(t, isInlineBase64("short"))
	assert.False(t, isInlineBase64("https://example.com/a.jpg"))

	assert.True(t, isRemoteURL("https://example.com/a.jpg"))
	assert.True(t, isRemoteURL("HTTP://EXAMPLE.COM/A.JPG"))
	assert.False(t, isRemoteURL("files/images/small/7/4/x.jpg"))
	assert.False(t, isRemoteURL("ftp://example.com/a.jpg"))
}
