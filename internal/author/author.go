package author

import (
	"errors"

	"libraryapi/internal/httpx"
)

// ErrNotFound is returned when no author matches.
var ErrNotFound = errors.New("author not found")

// Author is a row of the auteurs table.
type Author struct {
	ID    int64        `db:"id" json:"id"`
	Nom   string       `db:"nom" json:"nom"`
	Links []httpx.Link `db:"-" json:"_links,omitempty"`
}

func (a Author) selfLink() httpx.Link {
	return httpx.Link{Href: httpx.Href("auteurs", a.Nom), Rel: httpx.RelSelf}
}

func (a Author) booksLink() httpx.Link {
	return httpx.Link{Href: httpx.Href("auteurs", a.Nom, "livres"), Rel: httpx.RelLivres}
}
