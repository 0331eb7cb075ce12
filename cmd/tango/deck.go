package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tangolearn/tango/internal/words"
)

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Manage vocabulary decks",
	}

	deckCommand.AddCommand(newDeckImportCommand())
	deckCommand.AddCommand(newDeckListCommand())

	return deckCommand
}

func newDeckImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [directory]",
		Short: "Import deck files into the card store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			dir := cfg.Decks.Directory
			if len(args) > 0 {
				dir = args[0]
			}

			decks, err := words.LoadDecks(dir)
			if err != nil {
				return fmt.Errorf("words.LoadDecks(%s) > %w", dir, err)
			}
			if len(decks) == 0 {
				fmt.Printf("No deck files found in %s\n", dir)
				return nil
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			store := words.NewDBStore(db)

			names := make([]string, 0, len(decks))
			for name := range decks {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				added, err := words.Import(cmd.Context(), store, decks[name])
				if err != nil {
					return fmt.Errorf("words.Import(%s) > %w", name, err)
				}
				fmt.Printf("%s: %d new card(s)\n", name, added)
			}
			return nil
		},
	}
}

func newDeckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List deck files and their card counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			decks, err := words.LoadDecks(cfg.Decks.Directory)
			if err != nil {
				return fmt.Errorf("words.LoadDecks(%s) > %w", cfg.Decks.Directory, err)
			}
			if len(decks) == 0 {
				fmt.Printf("No deck files found in %s\n", cfg.Decks.Directory)
				return nil
			}

			names := make([]string, 0, len(decks))
			for name := range decks {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Printf("%-30s %d card(s)\n", name, len(decks[name].Cards))
			}
			return nil
		},
	}
}
