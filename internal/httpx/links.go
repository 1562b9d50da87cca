package httpx

import (
	"net/url"
	"strings"
)

// Link relations used in _links.
const (
	RelSelf       = "self"
	RelAuteurs    = "auteurs"
	RelLivres     = "livres"
	RelCategories = "categories"
)

// Link is a hypermedia pointer to a related resource.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// Href joins path segments into a relative URL, escaping each segment.
func Href(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Links is the body of a representation that only carries links.
type Links struct {
	Links []Link `json:"_links"`
}
