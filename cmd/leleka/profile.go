package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leleka-app/leleka-go/client"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Current account profile",
	}
	cmd.AddCommand(newProfileGetCmd())
	cmd.AddCommand(newProfileUpdateCmd())
	cmd.AddCommand(newProfileAvatarCmd())
	return cmd
}

func newProfileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the profile",
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
			return printJSON(u)
		},
	}
}

func newProfileUpdateCmd() *cobra.Command {
	var name, newEmail, dueDate, babyGender string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			u, err := e.api.UpdateCurrentUser(cmd.Context(), client.UpdateUserRequest{
				Name:       name,
				Email:      newEmail,
				DueDate:    dueDate,
				BabyGender: babyGender,
			}, reqOpts()...)
			if err != nil {
				return err
			}
			return printJSON(u)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&newEmail, "new-email", "", "New account email")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&babyGender, "baby-gender", "", "boy, girl or unknown")
	return cmd
}

func newProfileAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			u, err := e.api.UploadAvatar(cmd.Context(), filepath.Base(args[0]), f, reqOpts()...)
			if err != nil {
				return err
			}
			return printJSON(u)
		},
	}
}
