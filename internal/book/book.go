package book

import (
	"errors"

	"libraryapi/internal/httpx"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrAssociationNotFound is returned on creation when the author or the
	// category named in the path does not exist.
	ErrAssociationNotFound = errors.New("author or category not found")
)

// Book represents a row of the livres table.
type Book struct {
	ISBN        string       `db:"isbn" json:"isbn"`
	Nom         string       `db:"nom" json:"nom"`
	Description string       `db:"description" json:"description"`
	AuteurID    *int64       `db:"auteur_id" json:"auteur_id"`
	CategorieID *int64       `db:"categorie_id" json:"categorie_id"`
	Links       []httpx.Link `db:"-" json:"_links,omitempty"`
}

// CreateInput carries the fields of a new book. AuthorName and CategoryName
// come from the path, the rest from the query string.
type CreateInput struct {
	ISBN         string `query:"isbn" validate:"required"`
	Nom          string `query:"nom" validate:"required"`
	Description  string `query:"description" validate:"required"`
	AuthorName   string `path:"nom_auteur"`
	CategoryName string `path:"nom_categorie"`
}

func selfLink(isbn string) httpx.Link {
	return httpx.Link{Href: httpx.Href("livres", isbn), Rel: httpx.RelSelf}
}

func (b *Book) addLinks() {
	b.Links = []httpx.Link{
		selfLink(b.ISBN),
		{Href: httpx.Href("livres", b.ISBN, "auteurs"), Rel: httpx.RelAuteurs},
	}
}
