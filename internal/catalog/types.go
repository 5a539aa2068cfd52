package catalog

import "bookshelf/internal/listing"

// Book is a record as the backend returns it. The embedded genre is a
// read-only denormalized reference; canonical genres come from ListGenres.
type Book struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Published string   `json:"published"`
	Genre     GenreRef `json:"genre"`
}

type GenreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Genre carries two identifiers on purpose: lists filter by KeyName, while
// create/edit select by ID.
type Genre struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	KeyName string `json:"keyName"`
}

// Meta is the pagination block of a paginated response. NextPage and
// PreviousPage are null when no such page exists.
type Meta struct {
	Total        int  `json:"total"`
	CurrentPage  int  `json:"currentPage"`
	PerPage      int  `json:"perPage"`
	TotalPages   int  `json:"totalPages"`
	NextPage     *int `json:"nextPage"`
	PreviousPage *int `json:"previousPage"`
}

// Pager derives the pagination controls for this meta block.
func (m Meta) Pager() listing.Pager {
	return listing.NewPager(m.CurrentPage, m.TotalPages, m.PreviousPage, m.NextPage)
}

// Page is the nested payload of a paginated endpoint.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// BookInput is the create payload.
type BookInput struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Published string `json:"published"`
	GenreID   string `json:"genreId"`
}

// BookPatch is the edit payload; only supplied fields are sent.
type BookPatch struct {
	Title     *string `json:"title,omitempty"`
	Author    *string `json:"author,omitempty"`
	Published *string `json:"published,omitempty"`
	GenreID   *string `json:"genreId,omitempty"`
}
