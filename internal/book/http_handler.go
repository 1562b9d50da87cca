package book

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

// List handles GET /livres
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.InternalError(w, r, h.log, "list books", err)
		return
	}
	httpx.JSONOK(w, books)
}

// GetByISBN handles GET /livres/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Livre non trouvé")
			return
		}
		httpx.InternalError(w, r, h.log, "get book", err)
		return
	}
	httpx.JSONOK(w, book)
}

// ListByCategory handles GET /categories/{nom_categorie}/livres
func (h *HTTPHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListByCategory(r.Context(), r.PathValue("nom_categorie"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Aucun livre trouvé dans cette catégorie")
			return
		}
		httpx.InternalError(w, r, h.log, "list books of category", err)
		return
	}
	httpx.JSONOK(w, books)
}

// ListByAuthor handles GET /auteurs/{nom}/livres
func (h *HTTPHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListByAuthor(r.Context(), r.PathValue("nom"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Aucun livre trouvé pour cet auteur")
			return
		}
		httpx.InternalError(w, r, h.log, "list books of author", err)
		return
	}
	httpx.JSONOK(w, books)
}

// Create handles POST /auteurs/{nom_auteur}/categories/{nom_categorie}/livres
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	in := CreateInput{
		ISBN:         query.Get("isbn"),
		Nom:          query.Get("nom"),
		Description:  query.Get("description"),
		AuthorName:   r.PathValue("nom_auteur"),
		CategoryName: r.PathValue("nom_categorie"),
	}
	if err := httpx.Validate(in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Les champs 'isbn', 'nom', 'description' sont requis.")
		return
	}

	if err := h.service.Create(r.Context(), in); err != nil {
		if errors.Is(err, ErrAssociationNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Auteur ou catégorie non trouvé")
			return
		}
		httpx.InternalError(w, r, h.log, "create book", err)
		return
	}

	self := selfLink(in.ISBN)
	httpx.JSONCreated(w, self.Href, httpx.Links{Links: []httpx.Link{self}})
}

// Delete handles DELETE /livres/{isbn}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("isbn")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Livre non trouvé")
			return
		}
		httpx.InternalError(w, r, h.log, "delete book", err)
		return
	}
	httpx.NoContent(w)
}
