package listing

// List-state handling: the page/filter/search tuple that drives the book list,
// its URL query-string form, and the rule that filter changes reset paging.

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 9
)

// Params is the UI-visible list state. The zero value is not useful; use
// DefaultParams.
type Params struct {
	Page     int
	PerPage  int
	GenreKey string
	Search   string
}

func DefaultParams() Params {
	return Params{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Encode renders the params as URL query values, omitting any field equal to
// its default so shared URLs stay clean.
func (p Params) Encode() url.Values {
	values := url.Values{}
	if p.GenreKey != "" {
		values.Set("genre", p.GenreKey)
	}
	if p.Page != 0 && p.Page != DefaultPage {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage != 0 && p.PerPage != DefaultPerPage {
		values.Set("perPage", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		values.Set("q", p.Search)
	}
	return values
}

// QueryString returns the encoded form without a leading "?", empty when all
// fields are at their defaults.
func (p Params) QueryString() string {
	return p.Encode().Encode()
}

// Decode reads params back from URL query values, applying defaults for
// absent or malformed fields. Encode then Decode round-trips.
func Decode(values url.Values) Params {
	p := DefaultParams()
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if v := values.Get("perPage"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.PerPage = n
		}
	}
	p.GenreKey = values.Get("genre")
	p.Search = values.Get("q")
	return p
}

// WithGenre returns a copy with the genre filter changed and the page reset
// to 1 in the same update.
func (p Params) WithGenre(genreKey string) Params {
	p.GenreKey = genreKey
	p.Page = DefaultPage
	return p
}

// WithSearch returns a copy with the search text changed and the page reset
// to 1 in the same update.
func (p Params) WithSearch(search string) Params {
	p.Search = search
	p.Page = DefaultPage
	return p
}

// WithPage returns a copy on the given page. Callers gate the move with a
// Pager; the bound here only keeps the page positive.
func (p Params) WithPage(page int) Params {
	if page < 1 {
		page = 1
	}
	p.Page = page
	return p
}
