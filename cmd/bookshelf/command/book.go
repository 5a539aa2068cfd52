package command

// book.go handles the book CRUD commands: list, get, create, edit, delete.

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bookshelf/internal/catalog"
	"bookshelf/internal/guard"
	"bookshelf/internal/listing"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Book management commands",
	Long:  `Manage books: list with filters and pagination, view, create, edit, and delete.`,
}

var listBooksCmd = &cobra.Command{
	Use:   "list",
	Short: "List books with optional filter, search, and pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireSession(app.tokens); err != nil {
			return err
		}

		params := listing.DefaultParams()
		params.PerPage = app.cfg.PerPage
		if v, _ := cmd.Flags().GetInt("per-page"); cmd.Flags().Changed("per-page") && v >= 1 {
			params.PerPage = v
		}
		if v, _ := cmd.Flags().GetString("genre"); v != "" {
			params = params.WithGenre(v)
		}
		if v, _ := cmd.Flags().GetString("search"); v != "" {
			params = params.WithSearch(v)
		}
		// Page is applied last so an explicit --page wins over the reset
		// that genre/search changes perform.
		if v, _ := cmd.Flags().GetInt("page"); cmd.Flags().Changed("page") {
			params = params.WithPage(v)
		}

		page, err := app.catalog.ListBooks(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list books: %w", err)
		}

		if len(page.Data) == 0 {
			fmt.Println("No books found.")
			return nil
		}

		fmt.Printf("Found %d books (page %d of %d):\n\n", page.Meta.Total, page.Meta.CurrentPage, page.Meta.TotalPages)
		for _, b := range page.Data {
			printBook(b)
			fmt.Println(strings.Repeat("-", 50))
		}

		pager := page.Meta.Pager()
		if pager.CanPrev() {
			fmt.Printf("Previous page: --page %d\n", pager.Prev())
		}
		if pager.CanNext() {
			fmt.Printf("Next page: --page %d\n", pager.Next())
		}
		return nil
	},
}

var getBookCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a book by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireSession(app.tokens); err != nil {
			return err
		}

		book, err := app.catalog.GetBook(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get book: %w", err)
		}

		printBook(*book)
		return nil
	},
}

var createBookCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new book",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireSession(app.tokens); err != nil {
			return err
		}

		var input catalog.BookInput
		input.Title, _ = cmd.Flags().GetString("title")
		input.Author, _ = cmd.Flags().GetString("author")
		input.Published, _ = cmd.Flags().GetString("published")
		input.GenreID, _ = cmd.Flags().GetString("genre-id")

		book, err := app.catalog.CreateBook(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create book: %w", err)
		}

		fmt.Println("✓ Book created.")
		printBook(*book)
		return nil
	},
}

var editBookCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a book; only the flags you pass are changed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireSession(app.tokens); err != nil {
			return err
		}

		var patch catalog.BookPatch
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("author") {
			v, _ := cmd.Flags().GetString("author")
			patch.Author = &v
		}
		if cmd.Flags().Changed("published") {
			v, _ := cmd.Flags().GetString("published")
			patch.Published = &v
		}
		if cmd.Flags().Changed("genre-id") {
			v, _ := cmd.Flags().GetString("genre-id")
			patch.GenreID = &v
		}
		if patch.Title == nil && patch.Author == nil && patch.Published == nil && patch.GenreID == nil {
			return fmt.Errorf("nothing to change, pass at least one of --title, --author, --published, --genre-id")
		}

		book, err := app.catalog.EditBook(cmd.Context(), args[0], patch)
		if err != nil {
			return fmt.Errorf("failed to edit book: %w", err)
		}

		fmt.Println("✓ Book updated.")
		printBook(*book)
		return nil
	},
}

var deleteBookCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireSession(app.tokens); err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete book %s? [y/N] ", args[0])) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := app.catalog.DeleteBook(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}

		fmt.Println("✓ Book deleted.")
		return nil
	},
}

func printBook(b catalog.Book) {
	fmt.Printf("ID: %s\n", b.ID)
	fmt.Printf("Title: %s\n", b.Title)
	fmt.Printf("Author: %s\n", b.Author)
	fmt.Printf("Published: %s\n", b.Published)
	if b.Genre.Name != "" {
		fmt.Printf("Genre: %s\n", b.Genre.Name)
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func init() {
	booksCmd.AddCommand(listBooksCmd)
	booksCmd.AddCommand(getBookCmd)
	booksCmd.AddCommand(createBookCmd)
	booksCmd.AddCommand(editBookCmd)
	booksCmd.AddCommand(deleteBookCmd)

	listBooksCmd.Flags().Int("page", 1, "Page number")
	listBooksCmd.Flags().Int("per-page", 9, "Books per page")
	listBooksCmd.Flags().StringP("genre", "g", "", "Filter by genre key name")
	listBooksCmd.Flags().StringP("search", "q", "", "Search by title or author")

	createBookCmd.Flags().String("title", "", "Book title")
	createBookCmd.Flags().String("author", "", "Book author")
	createBookCmd.Flags().String("published", "", "Publication year (4 digits)")
	createBookCmd.Flags().String("genre-id", "", "Genre ID (see 'bookshelf genres list')")
	createBookCmd.MarkFlagRequired("title")
	createBookCmd.MarkFlagRequired("author")
	createBookCmd.MarkFlagRequired("published")
	createBookCmd.MarkFlagRequired("genre-id")

	editBookCmd.Flags().String("title", "", "New title")
	editBookCmd.Flags().String("author", "", "New author")
	editBookCmd.Flags().String("published", "", "New publication year (4 digits)")
	editBookCmd.Flags().String("genre-id", "", "New genre ID")

	deleteBookCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
