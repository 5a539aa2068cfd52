package listing

// Pager tells the view which pagination controls to enable, from the meta
// block of the last fetched page. Advisory only: bounds are not re-validated
// against a fresh fetch before the page changes.
type Pager struct {
	Current    int
	TotalPages int

	previous *int
	next     *int
}

func NewPager(current, totalPages int, previous, next *int) Pager {
	return Pager{
		Current:    current,
		TotalPages: totalPages,
		previous:   previous,
		next:       next,
	}
}

// CanPrev reports whether a previous page exists.
func (p Pager) CanPrev() bool {
	return p.previous != nil && p.Current > 1
}

// CanNext reports whether a next page exists.
func (p Pager) CanNext() bool {
	return p.next != nil && p.Current < p.TotalPages
}

// Prev returns the previous page number, or the current one when there is no
// previous page.
func (p Pager) Prev() int {
	if !p.CanPrev() {
		return p.Current
	}
	return *p.previous
}

// Next returns the next page number, or the current one when there is no next
// page.
func (p Pager) Next() int {
	if !p.CanNext() {
		return p.Current
	}
	return *p.next
}
