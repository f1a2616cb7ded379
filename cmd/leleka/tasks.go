package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Daily tasks",
	}
	cmd.AddCommand(newTasksListCmd())
	cmd.AddCommand(newTasksAddCmd())
	cmd.AddCommand(newTasksToggleCmd())
	return cmd
}

func newTasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.board.Refresh(cmd.Context()); err != nil {
				return err
			}
			tasks, _ := e.board.Tasks(cmd.Context())
			for _, t := range tasks {
				mark := " "
				if t.IsDone {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %-10s  %s\n", mark, t.ID, t.Date, t.Name)
			}
			return nil
		},
	}
}

func newTasksAddCmd() *cobra.Command {
	var name, date string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			t, err := e.board.Add(cmd.Context(), name, date)
			if err != nil {
				return err
			}
			return printJSON(t)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&date, "date", "", "Task date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newTasksToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task's done status",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.board.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := e.board.Toggle(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(e.board.ToggleStateOf(args[0]))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}
