package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/apperr"
	"bookshelf/internal/logger"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(mockRepo), logger.Discard()), mockRepo
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("average", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			Find(gomock.Any(), gomock.Any()).
			Return(&Book{
				Title:  strPtr("The Last Man"),
				Author: strPtr("Mary Shelley"),
				Scores: []Score{{Reference: strPtr("a"), Rating: intPtr(4)}, {Reference: strPtr("b")}},
			}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books?title=The%20Last%20Man&author=Mary%20Shelley", nil)
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got Payload
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, NoteAverage, *got.Reference)
		assert.Equal(t, 2.0, *got.Score)
	})

	t.Run("not found is an empty object", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/v1/books?title=x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"title":null,"author":null,"year":null,"reference":null,"score":null}`, w.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, apperr.Store("find", errors.New("boom")))

		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/v1/books?title=x&author=y", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestHTTPHandler_Mutations(t *testing.T) {
	expected := Book{
		Title:  strPtr("The Last Man"),
		Author: strPtr("Mary Shelley"),
		Scores: []Score{{Reference: strPtr("The Book Club"), Rating: intPtr(7)}},
	}
	body := `{"title":"The Last Man","author":"Mary Shelley","reference":"The Book Club","score":7.6}`

	tests := []struct {
		name           string
		method         string
		serve          func(h *HTTPHandler) http.HandlerFunc
		setupMock      func(m *MockRepository)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "create",
			method:         http.MethodPost,
			serve:          func(h *HTTPHandler) http.HandlerFunc { return h.Create },
			setupMock:      func(m *MockRepository) { m.EXPECT().Insert(gomock.Any(), expected).Return(nil) },
			expectedStatus: http.StatusCreated,
			expectedBody:   msgInserted,
		},
		{
			name:           "update",
			method:         http.MethodPut,
			serve:          func(h *HTTPHandler) http.HandlerFunc { return h.Update },
			setupMock:      func(m *MockRepository) { m.EXPECT().Update(gomock.Any(), expected).Return(nil) },
			expectedStatus: http.StatusCreated,
			expectedBody:   msgUpdated,
		},
		{
			name:           "delete",
			method:         http.MethodDelete,
			serve:          func(h *HTTPHandler) http.HandlerFunc { return h.Delete },
			setupMock:      func(m *MockRepository) { m.EXPECT().Delete(gomock.Any(), expected).Return(nil) },
			expectedStatus: http.StatusOK,
			expectedBody:   msgRemoved,
		},
		{
			name:   "create rejected",
			method: http.MethodPost,
			serve:  func(h *HTTPHandler) http.HandlerFunc { return h.Create },
			setupMock: func(m *MockRepository) {
				m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(apperr.Missing("rating"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"REJECTED"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newTestHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, "/v1/books", strings.NewReader(body))
			tt.serve(handler)(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHTTPHandler_MalformedBody(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.Update(w, httptest.NewRequest(http.MethodPut, "/v1/books", strings.NewReader(`[1,2]`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTPHandler_TrailingDataRejected(t *testing.T) {
	handler, _ := newTestHandler(t)
	body := `{"title":"The Last Man","author":"Mary Shelley","reference":"The Book Club","score":7} garbage`

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/v1/books", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
