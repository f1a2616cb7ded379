package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leleka-app/leleka-go/client"
)

func newDiaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Diary entries",
	}
	cmd.AddCommand(newDiaryListCmd())
	cmd.AddCommand(newDiaryShowCmd())
	cmd.AddCommand(newDiaryAddCmd())
	cmd.AddCommand(newDiaryDeleteCmd())
	return cmd
}

func newDiaryListCmd() *cobra.Command {
	var sortOrder string
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List diary entries (newest first by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			e.feed.SetSortOrder(client.SortOrder(sortOrder))
			if err := e.feed.Load(cmd.Context()); err != nil {
				return err
			}
			if all {
				// Walk the pagination the way the infinite list does.
				for e.feed.HasNextPage() {
					if err := e.feed.EndReached(cmd.Context()); err != nil {
						return err
					}
				}
			}
			entries, _ := e.feed.Entries(cmd.Context())
			for _, en := range entries {
				emotions := make([]string, len(en.Emotions))
				for i, em := range en.Emotions {
					emotions[i] = em.Title
				}
				fmt.Printf("%s  %-10s  %-30s  [%s]\n", en.ID, en.Date, en.Title, strings.Join(emotions, ", "))
			}
			if e.feed.HasNextPage() {
				fmt.Println("... more pages available (use --all)")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sortOrder, "sort", "desc", "Sort order: asc or desc")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch every page, not just the first")
	return cmd
}

func newDiaryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one diary entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			entry, err := e.api.GetDiaryEntry(cmd.Context(), args[0], reqOpts()...)
			if err != nil {
				return err
			}
			return printJSON(entry)
		},
	}
}

func newDiaryAddCmd() *cobra.Command {
	var title, description, emotions string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a diary entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			form := client.DiaryForm{
				Title:       title,
				Description: description,
				Emotions:    strings.Split(emotions, ","),
			}
			entry, err := e.feed.Create(cmd.Context(), form)
			if err != nil {
				return err
			}
			return printJSON(entry)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&description, "description", "", "Entry text")
	cmd.Flags().StringVar(&emotions, "emotions", "", "Comma-separated emotion IDs")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("emotions")
	return cmd
}

func newDiaryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a diary entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.feed.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}
}
