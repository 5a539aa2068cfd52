package command

// browse.go is the interactive list view: type to search (debounced), page
// with ctrl keys, cycle the genre filter. It is the one place where list
// state, the debouncer, and the pager all meet.

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bookshelf/internal/catalog"
	"bookshelf/internal/guard"
	"bookshelf/internal/listing"
)

const (
	searchQuiet   = 500 * time.Millisecond
	searchCeiling = 1000 * time.Millisecond
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse books interactively",
	Long: `Browse books in an interactive list. Type to search (committed after a
short pause), Ctrl+N/Ctrl+P to change page, Ctrl+G to cycle the genre filter,
Ctrl+U to clear the search, Esc or Ctrl+C to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireSession(app.tokens); err != nil {
			return err
		}

		genres, err := app.catalog.ListGenres(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load genres: %w", err)
		}

		params := listing.DefaultParams()
		params.PerPage = app.cfg.PerPage

		b := &browser{
			svc:      app.catalog,
			genres:   genres,
			params:   params,
			debounce: listing.NewDebouncer(searchQuiet, searchCeiling),
			refresh:  make(chan struct{}, 1),
			quit:     make(chan struct{}),
		}
		return b.run(cmd.Context())
	},
}

type browser struct {
	svc    *catalog.Service
	genres []catalog.Genre

	mu        sync.Mutex
	params    listing.Params
	searchBuf string
	genreIdx  int // 0 = all genres, otherwise index+1 into genres
	page      *catalog.Page[catalog.Book]
	status    string

	debounce *listing.Debouncer
	refresh  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

func (b *browser) run(ctx context.Context) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)
	defer b.debounce.Stop()

	go b.readKeys()

	b.requestRefresh()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.quit:
			fmt.Print("\r\n")
			return nil
		case <-b.refresh:
			b.fetch(ctx)
			b.render()
		}
	}
}

// readKeys turns raw keystrokes into state changes. Printable characters feed
// the search buffer; the commit to the actual search parameter is debounced.
func (b *browser) readKeys() {
	reader := bufio.NewReader(os.Stdin)
	for {
		ch, err := reader.ReadByte()
		if err != nil {
			b.stop()
			return
		}

		switch ch {
		case 0x03, 0x1b: // Ctrl+C, Esc
			b.stop()
			return
		case 0x0e: // Ctrl+N
			b.changePage(true)
		case 0x10: // Ctrl+P
			b.changePage(false)
		case 0x07: // Ctrl+G
			b.cycleGenre()
		case 0x15: // Ctrl+U
			b.setSearchBuf("")
		case 0x7f, 0x08: // Backspace
			b.mu.Lock()
			buf := b.searchBuf
			b.mu.Unlock()
			if buf != "" {
				b.setSearchBuf(buf[:len(buf)-1])
			}
		default:
			if ch >= 0x20 && ch < 0x7f {
				b.mu.Lock()
				buf := b.searchBuf + string(ch)
				b.mu.Unlock()
				b.setSearchBuf(buf)
			}
		}
	}
}

// setSearchBuf updates the visible search text immediately and schedules the
// committed update, which also resets the page to 1.
func (b *browser) setSearchBuf(buf string) {
	b.mu.Lock()
	b.searchBuf = buf
	b.mu.Unlock()
	b.render()

	b.debounce.Call(func() {
		b.mu.Lock()
		b.params = b.params.WithSearch(buf)
		b.mu.Unlock()
		b.requestRefresh()
	})
}

// changePage moves one page forward or back, gated by the last fetched meta.
func (b *browser) changePage(forward bool) {
	b.mu.Lock()
	if b.page == nil {
		b.mu.Unlock()
		return
	}
	pager := b.page.Meta.Pager()
	moved := false
	if forward && pager.CanNext() {
		b.params = b.params.WithPage(pager.Next())
		moved = true
	} else if !forward && pager.CanPrev() {
		b.params = b.params.WithPage(pager.Prev())
		moved = true
	}
	b.mu.Unlock()

	if moved {
		b.requestRefresh()
	}
}

// cycleGenre steps through no-filter and each genre in turn; the filter
// change resets the page in the same update.
func (b *browser) cycleGenre() {
	b.mu.Lock()
	b.genreIdx = (b.genreIdx + 1) % (len(b.genres) + 1)
	if b.genreIdx == 0 {
		b.params = b.params.WithGenre("")
	} else {
		b.params = b.params.WithGenre(b.genres[b.genreIdx-1].KeyName)
	}
	b.mu.Unlock()

	b.requestRefresh()
}

func (b *browser) requestRefresh() {
	select {
	case b.refresh <- struct{}{}:
	default:
	}
}

func (b *browser) stop() {
	b.quitOnce.Do(func() { close(b.quit) })
}

func (b *browser) fetch(ctx context.Context) {
	b.mu.Lock()
	params := b.params
	b.mu.Unlock()

	page, err := b.svc.ListBooks(ctx, params)

	b.mu.Lock()
	if err != nil {
		b.status = err.Error()
	} else {
		b.page = page
		b.status = ""
	}
	b.mu.Unlock()
}

func (b *browser) render() {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\x1b[2J\x1b[H") // clear screen, cursor home

	genreLabel := "all"
	if b.genreIdx > 0 {
		genreLabel = b.genres[b.genreIdx-1].Name
	}
	fmt.Fprintf(&sb, "bookshelf — genre: %s — search: %s_\r\n", genreLabel, b.searchBuf)
	sb.WriteString(strings.Repeat("-", 60) + "\r\n")

	switch {
	case b.status != "":
		fmt.Fprintf(&sb, "Error: %s\r\n", b.status)
	case b.page == nil:
		sb.WriteString("Loading...\r\n")
	case len(b.page.Data) == 0:
		sb.WriteString("No books found.\r\n")
	default:
		for _, book := range b.page.Data {
			fmt.Fprintf(&sb, "%-30s  %-20s  %s  %s\r\n",
				truncate(book.Title, 30), truncate(book.Author, 20), book.Published, book.Genre.Name)
		}
	}

	sb.WriteString(strings.Repeat("-", 60) + "\r\n")
	if b.page != nil {
		pager := b.page.Meta.Pager()
		prev, next := "[ prev ]", "[ next ]"
		if pager.CanPrev() {
			prev = "[<prev>]"
		}
		if pager.CanNext() {
			next = "[<next>]"
		}
		fmt.Fprintf(&sb, "%s page %d/%d %s — %d books\r\n",
			prev, pager.Current, pager.TotalPages, next, b.page.Meta.Total)
	}
	sb.WriteString("type to search — ^N/^P page — ^G genre — ^U clear — Esc quit\r\n")

	fmt.Print(sb.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
