package catalog

// Pre-submission validation of book fields. A request carrying an invalid
// field is never sent; callers render the field messages inline.

import (
	"fmt"
	"regexp"
	"strings"
)

const maxFieldLength = 255

var publishedYear = regexp.MustCompile(`^\d{4}$`)

// FieldErrors maps field name to message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// Validate checks a create payload. Returns nil when all fields pass.
func (in BookInput) Validate() error {
	errs := FieldErrors{}
	checkTitle(errs, in.Title)
	checkAuthor(errs, in.Author)
	checkPublished(errs, in.Published)
	if in.GenreID == "" {
		errs["genreId"] = "genre is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks an edit payload; only supplied fields are checked.
func (p BookPatch) Validate() error {
	errs := FieldErrors{}
	if p.Title != nil {
		checkTitle(errs, *p.Title)
	}
	if p.Author != nil {
		checkAuthor(errs, *p.Author)
	}
	if p.Published != nil {
		checkPublished(errs, *p.Published)
	}
	if p.GenreID != nil && *p.GenreID == "" {
		errs["genreId"] = "genre is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkTitle(errs FieldErrors, title string) {
	if strings.TrimSpace(title) == "" {
		errs["title"] = "title is required"
	} else if len(title) > maxFieldLength {
		errs["title"] = fmt.Sprintf("title must be at most %d characters", maxFieldLength)
	}
}

func checkAuthor(errs FieldErrors, author string) {
	if strings.TrimSpace(author) == "" {
		errs["author"] = "author is required"
	} else if len(author) > maxFieldLength {
		errs["author"] = fmt.Sprintf("author must be at most %d characters", maxFieldLength)
	}
}

func checkPublished(errs FieldErrors, published string) {
	if !publishedYear.MatchString(published) {
		errs["published"] = "published must be a 4-digit year"
	}
}
