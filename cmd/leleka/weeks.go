package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/leleka-app/leleka-go/client"
)

func newGreetingCmd() *cobra.Command {
	var public bool
	cmd := &cobra.Command{
		Use:   "greeting",
		Short: "Show the dashboard greeting block",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			var g *client.WeekGreeting
			if public {
				g, err = e.api.GetPublicGreeting(cmd.Context(), reqOpts()...)
			} else {
				g, err = e.api.GetGreeting(cmd.Context(), reqOpts()...)
			}
			if err != nil {
				return err
			}
			return printJSON(g)
		},
	}
	cmd.Flags().BoolVar(&public, "public", false, "Use the anonymous greeting endpoint")
	return cmd
}

func newWeekCmd() *cobra.Command {
	var mom bool
	cmd := &cobra.Command{
		Use:   "week <number>",
		Short: "Show baby (default) or mom content for a pregnancy week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("week must be a number: %w", err)
			}
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			if mom {
				m, err := e.api.GetMomWeek(cmd.Context(), week, reqOpts()...)
				if err != nil {
					return err
				}
				return printJSON(m)
			}
			b, err := e.api.GetBabyWeek(cmd.Context(), week, reqOpts()...)
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}
	cmd.Flags().BoolVar(&mom, "mom", false, "Show mom content instead of baby content")
	return cmd
}

func newCurrentWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current-week",
		Short: "Derive the current pregnancy week from the profile's due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			u, err := e.api.GetCurrentUser(cmd.Context(), reqOpts()...)
			if err != nil {
				return err
			}
			fmt.Println(client.WeekFromDueDate(u.DueDate, time.Now()))
			return nil
		},
	}
}

func newEmotionsCmd() *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "emotions",
		Short: "List the emotions catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			er, err := e.api.ListEmotions(cmd.Context(), client.EmotionsParams{Page: page, Limit: limit}, reqOpts()...)
			if err != nil {
				return err
			}
			for _, em := range er.Emotions {
				fmt.Printf("%s  %s\n", em.ID, em.Title)
			}
			if er.TotalPages > 1 {
				fmt.Printf("page %d of %d (%d total)\n", er.Page, er.TotalPages, er.TotalCount)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	return cmd
}
