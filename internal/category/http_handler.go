package category

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

// List handles GET /categories
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		httpx.InternalError(w, r, h.log, "list categories", err)
		return
	}
	httpx.JSONOK(w, categories)
}

// GetByName handles GET /categories/{nom}
func (h *HTTPHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetByName(r.Context(), r.PathValue("nom"))
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Catégorie non trouvée")
	case err != nil:
		httpx.InternalError(w, r, h.log, "get category", err)
	default:
		httpx.JSONOK(w, c)
	}
}

// Create handles POST /categories?nom=
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in := createInput{Nom: r.URL.Query().Get("nom")}
	if err := httpx.Validate(in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Le champ 'nom' est requis.")
		return
	}

	c, err := h.service.Create(r.Context(), in.Nom)
	if err != nil {
		httpx.InternalError(w, r, h.log, "create category", err)
		return
	}
	httpx.JSONCreated(w, c.selfLink().Href, c)
}

// Delete handles DELETE /categories/{nom}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("nom")); err != nil {
		httpx.InternalError(w, r, h.log, "delete category", err)
		return
	}
	httpx.NoContent(w)
}
