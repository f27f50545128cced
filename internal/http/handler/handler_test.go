package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contentsapi/internal/apperr"
	"contentsapi/internal/config"
	"contentsapi/internal/model"
	serviceMocks "contentsapi/internal/service/mocks"
	"contentsapi/internal/storage"
	storeMocks "contentsapi/internal/storage/mocks"
)

func newTestApp(t *testing.T, svc *serviceMocks.MockContentsService, store *storeMocks.MockStorage) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, svc, store, config.FilesConfig{PresignExpirySec: 900})
	return app, dbMock
}

func TestHealth(t *testing.T) {
	app, dbMock := newTestApp(t, new(serviceMocks.MockContentsService), new(storeMocks.MockStorage))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLiveness(t *testing.T) {
	app, _ := newTestApp(t, new(serviceMocks.MockContentsService), new(storeMocks.MockStorage))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmitContents(t *testing.T) {
	t.Run("returns stored record", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		now := time.Now().UTC()
		stored := &model.ContentsDocument{ISBN: "9788205377547", Title: "X", Source: "SRC", Created: &now}
		mockSvc.On("Put", mock.Anything, mock.Anything).Return(stored, nil).Once()

		body := []byte(`{"isbn": "9788205377547", "title": "X", "source": "SRC", "table_of_contents": "toc"}`)
		req := httptest.NewRequest(http.MethodPut, "/contents", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out model.ContentsDocument
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Equal(t, "9788205377547", out.ISBN)
		assert.NotNil(t, out.Created)
		mockSvc.AssertExpectations(t)
	})

	t.Run("post is accepted too", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		mockSvc.On("Put", mock.Anything, mock.Anything).
			Return(&model.ContentsDocument{ISBN: "123"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/contents", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("validation error returns 400 with document detail", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		mockSvc.On("Put", mock.Anything, mock.Anything).
			Return(nil, apperr.Validation("contents document is not persistable", `{"isbn":""}`)).Once()

		req := httptest.NewRequest(http.MethodPut, "/contents", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_DOCUMENT", body.Error.Code)
		assert.Equal(t, `{"isbn":""}`, body.Error.Detail)
	})

	t.Run("communication error returns 502 without cause", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		cause := errors.New("dial tcp 10.0.0.12:5432: connection refused")
		mockSvc.On("Put", mock.Anything, mock.Anything).
			Return(nil, apperr.Communication("store rejected create", cause)).Once()

		req := httptest.NewRequest(http.MethodPut, "/contents", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "10.0.0.12")
	})

	t.Run("conflict error returns 409", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		mockSvc.On("Put", mock.Anything, mock.Anything).
			Return(nil, apperr.Conflict("record written but confirmation read failed", nil)).Once()

		req := httptest.NewRequest(http.MethodPut, "/contents", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestGetContents(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		mockSvc.On("Get", mock.Anything, "9788205377547").
			Return(&model.ContentsDocument{ISBN: "9788205377547", Title: "X"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contents/9788205377547", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContentsService)
		app, _ := newTestApp(t, mockSvc, new(storeMocks.MockStorage))

		mockSvc.On("Get", mock.Anything, "MISSING").
			Return(nil, apperr.NotFound("MISSING")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contents/MISSING", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestFilesRedirect(t *testing.T) {
	t.Run("redirects to presigned url", func(t *testing.T) {
		mockStore := new(storeMocks.MockStorage)
		app, _ := newTestApp(t, new(serviceMocks.MockContentsService), mockStore)

		mockStore.On("PresignGet", mock.Anything, "files/images/small/7/4/9788205377547.jpg", 900*time.Second).
			Return("https://blobs.example.com/presigned", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/images/small/7/4/9788205377547.jpg", nil))

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://blobs.example.com/presigned", resp.Header.Get("Location"))
		mockStore.AssertExpectations(t)
	})

	t.Run("presign failure yields 404", func(t *testing.T) {
		mockStore := new(storeMocks.MockStorage)
		app, _ := newTestApp(t, new(serviceMocks.MockContentsService), mockStore)

		mockStore.On("PresignGet", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("no such key")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/images/small/0/0/missing.jpg", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("proxy streams the object", func(t *testing.T) {
		mockStore := new(storeMocks.MockStorage)
		app, _ := newTestApp(t, new(serviceMocks.MockContentsService), mockStore)

		content := "jpeg bytes"
		rc := newStringReadCloser(content)
		mockStore.On("Get", mock.Anything, "files/images/small/7/4/9788205377547.jpg").
			Return(rc, storage.ObjectInfo{Size: int64(len(content)), ContentType: "image/jpg"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/files/images/small/7/4/9788205377547.jpg?proxy=true", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/jpg", resp.Header.Get("Content-Type"))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, content, buf.String())
	})
}

type stringReadCloser struct{ *bytes.Reader }

func (stringReadCloser) Close() error { return nil }

func newStringReadCloser(s string) stringReadCloser {
	return stringReadCloser{bytes.NewReader([]byte(s))}
}
