package author

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

type createInput struct {
	Nom string `query:"nom" validate:"required"`
}

// List handles GET /auteurs
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		httpx.InternalError(w, r, h.log, "list authors", err)
		return
	}
	httpx.JSONOK(w, authors)
}

// GetByName handles GET /auteurs/{nom}
func (h *HTTPHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetByName(r.Context(), r.PathValue("nom"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Auteur non trouvé")
			return
		}
		httpx.InternalError(w, r, h.log, "get author", err)
		return
	}
	httpx.JSONOK(w, a)
}

// Create handles POST /auteurs?nom=
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in := createInput{Nom: r.URL.Query().Get("nom")}
	if err := httpx.Validate(in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Le champ 'nom' est requis.")
		return
	}

	a, err := h.service.Create(r.Context(), in.Nom)
	if err != nil {
		httpx.InternalError(w, r, h.log, "create author", err)
		return
	}
	httpx.JSONCreated(w, a.selfLink().Href, a)
}

// Delete handles DELETE /auteurs/{nom}. It answers 204 whether or not a row
// matched.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("nom")); err != nil {
		httpx.InternalError(w, r, h.log, "delete author", err)
		return
	}
	httpx.NoContent(w)
}

// ListByBook handles GET /livres/{isbn}/auteurs
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.ListByBook(r.Context(), r.PathValue("isbn"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Aucun auteur trouvé pour ce livre")
			return
		}
		httpx.InternalError(w, r, h.log, "list authors of book", err)
		return
	}
	httpx.JSONOK(w, authors)
}
