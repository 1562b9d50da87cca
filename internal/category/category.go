package category

import (
	"errors"

	"libraryapi/internal/httpx"
)

// ErrNotFound is returned when no category matches.
var ErrNotFound = errors.New("category not found")

// Category is a row of the categories table.
type Category struct {
	ID    int64        `db:"id" json:"id"`
	Nom   string       `db:"nom" json:"nom"`
	Links []httpx.Link `db:"-" json:"_links,omitempty"`
}

func (c Category) selfLink() httpx.Link {
	return httpx.Link{Href: httpx.Href("categories", c.Nom), Rel: httpx.RelSelf}
}

func (c Category) booksLink() httpx.Link {
	return httpx.Link{Href: httpx.Href("categories", c.Nom, "livres"), Rel: httpx.RelLivres}
}
