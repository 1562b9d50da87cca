package category

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHTTPHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		pathNom  string
		setup    func(m *MockRepository)
		call     func(h *HTTPHandler) http.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/categories",
			setup: func(m *MockRepository) {
				m.EXPECT().List(gomock.Any()).Return([]Category{{ID: 1, Nom: "Roman"}}, nil)
			},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.List },
			wantCode: http.StatusOK,
			wantBody: `[{"id":1,"nom":"Roman","_links":[{"href":"/categories/Roman","rel":"self"}]}]`,
		},
		{
			name:   "list error",
			method: http.MethodGet,
			target: "/categories",
			setup: func(m *MockRepository) {
				m.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.List },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"description":"Erreur interne du serveur"}`,
		},
		{
			name:    "get",
			method:  http.MethodGet,
			target:  "/categories/Science%20Fiction",
			pathNom: "Science Fiction",
			setup: func(m *MockRepository) {
				m.EXPECT().GetByName(gomock.Any(), "Science Fiction").Return(Category{ID: 3, Nom: "Science Fiction"}, nil)
			},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.GetByName },
			wantCode: http.StatusOK,
			wantBody: `{"id":3,"nom":"Science Fiction","_links":[{"href":"/categories/Science%20Fiction/livres","rel":"livres"}]}`,
		},
		{
			name:    "get not found",
			method:  http.MethodGet,
			target:  "/categories/Poesie",
			pathNom: "Poesie",
			setup: func(m *MockRepository) {
				m.EXPECT().GetByName(gomock.Any(), "Poesie").Return(Category{}, ErrNotFound)
			},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.GetByName },
			wantCode: http.StatusNotFound,
			wantBody: `{"description":"Catégorie non trouvée"}`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/categories?nom=Roman",
			setup: func(m *MockRepository) {
				m.EXPECT().Create(gomock.Any(), "Roman").Return(Category{ID: 4, Nom: "Roman"}, nil)
			},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.Create },
			wantCode: http.StatusCreated,
			wantBody: `{"id":4,"nom":"Roman","_links":[{"href":"/categories/Roman","rel":"self"}]}`,
		},
		{
			name:     "create without nom",
			method:   http.MethodPost,
			target:   "/categories?nom=",
			setup:    func(m *MockRepository) {},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.Create },
			wantCode: http.StatusBadRequest,
			wantBody: `{"description":"Le champ 'nom' est requis."}`,
		},
		{
			name:    "delete missing category",
			method:  http.MethodDelete,
			target:  "/categories/Nothing",
			pathNom: "Nothing",
			setup: func(m *MockRepository) {
				m.EXPECT().DeleteByName(gomock.Any(), "Nothing").Return(nil)
			},
			call:     func(h *HTTPHandler) http.HandlerFunc { return h.Delete },
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := NewMockRepository(ctrl)
			tt.setup(mockRepo)
			handler := NewHTTPHandler(NewService(mockRepo), zap.NewNop())

			r := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.pathNom != "" {
				r.SetPathValue("nom", tt.pathNom)
			}
			w := httptest.NewRecorder()
			tt.call(handler)(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
