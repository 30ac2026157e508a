package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oljoi/brainwormsbot/internal/database"
	"github.com/oljoi/brainwormsbot/internal/dictionary"
)

// newLookupCommand queries the dictionary directly, bypassing the chat
// transport. Useful for checking what the bot would find.
func newLookupCommand() *cobra.Command {
	var lang string
	command := cobra.Command{
		Use:   "lookup <term>",
		Short: "Look up a term against the dictionary database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			db, err := database.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Connect() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			store := dictionary.NewDBRepository(db)
			entries, err := store.FindMany(cmd.Context(), term, lang)
			if err != nil {
				return fmt.Errorf("store.FindMany() > %w", err)
			}
			if len(entries) == 0 {
				fmt.Printf("no matches for %q\n", term)
				return nil
			}

			title := color.New(color.Bold)
			credit := color.New(color.FgHiBlack)
			for _, entry := range entries {
				title.Println(entry.ReadableName)
				fmt.Println(entry.Description)
				credit.Printf("added by %s (%s)\n\n", entry.AddedBy, entry.Lang)
			}
			return nil
		},
	}
	command.Flags().StringVar(&lang, "lang", "en", "language tag to search")
	return &command
}
