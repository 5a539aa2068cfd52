package command

// genre.go handles the genre commands. Genres are read-only from the client;
// the key name is what book list filtering uses, the ID is what create/edit
// select by.

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/internal/guard"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Genre commands",
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List all genres",
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
			return fmt.Errorf("failed to list genres: %w", err)
		}

		if len(genres) == 0 {
			fmt.Println("No genres found.")
			return nil
		}

		fmt.Printf("%-6s %-25s %s\n", "ID", "NAME", "KEY")
		for _, g := range genres {
			fmt.Printf("%-6d %-25s %s\n", g.ID, g.Name, g.KeyName)
		}
		return nil
	},
}

func init() {
	genresCmd.AddCommand(listGenresCmd)
}
