package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_EncodeOmitsDefaults(t *testing.T) {
	assert.Equal(t, "", DefaultParams().QueryString())

	p := Params{Page: 1, PerPage: 9, GenreKey: "", Search: ""}
	assert.Equal(t, "", p.QueryString())

	p = Params{Page: 2, PerPage: 9}
	assert.Equal(t, "page=2", p.QueryString())

	p = Params{Page: 1, PerPage: 20, GenreKey: "fantasy", Search: "dune"}
	values := p.Encode()
	assert.Equal(t, "fantasy", values.Get("genre"))
	assert.Equal(t, "20", values.Get("perPage"))
	assert.Equal(t, "dune", values.Get("q"))
	assert.False(t, values.Has("page"), "default page must be omitted")
}

func TestParams_EncodeDecodeRoundTrip(t *testing.T) {
	cases := []Params{
		DefaultParams(),
		{Page: 3, PerPage: 9},
		{Page: 1, PerPage: 12, GenreKey: "sci-fi"},
		{Page: 5, PerPage: 9, GenreKey: "horror", Search: "king"},
		{Page: 1, PerPage: 9, Search: "tolkien"},
	}

	for _, p := range cases {
		decoded := Decode(p.Encode())
		assert.Equal(t, p, decoded, "round-trip of %+v", p)
	}
}

func TestDecode_MalformedValuesFallBackToDefaults(t *testing.T) {
	values := url.Values{}
	values.Set("page", "banana")
	values.Set("perPage", "-4")

	p := Decode(values)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestParams_FilterChangesResetPage(t *testing.T) {
	p := Params{Page: 7, PerPage: 9}

	withGenre := p.WithGenre("fantasy")
	assert.Equal(t, 1, withGenre.Page)
	assert.Equal(t, "fantasy", withGenre.GenreKey)

	withSearch := p.WithSearch("dune")
	assert.Equal(t, 1, withSearch.Page)
	assert.Equal(t, "dune", withSearch.Search)

	// Clearing a filter also counts as a filter change.
	cleared := withGenre.WithPage(4).WithGenre("")
	assert.Equal(t, 1, cleared.Page)
}

func TestParams_WithPageKeepsPositive(t *testing.T) {
	p := DefaultParams().WithPage(0)
	assert.Equal(t, 1, p.Page)

	p = DefaultParams().WithPage(-3)
	assert.Equal(t, 1, p.Page)
}
