package main

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/linskybing/clientdesk/internal/application"
	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/internal/config/db"
	"github.com/linskybing/clientdesk/internal/domain/user"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/spf13/cobra"
)

func newUsersCmd(cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := user.CreateUserInput{Username: username, Password: password}
			if err := validateInput(input); err != nil {
				return err
			}

			svc, closeDB, err := openUserService(cfg())
			if err != nil {
				return err
			}
			defer closeDB()

			u, err := svc.RegisterUser(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d)\n", u.Username, u.ID)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "account name")
	create.Flags().StringVar(&password, "password", "", "account password")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	list := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := openUserService(cfg())
			if err != nil {
				return err
			}
			defer closeDB()

			users, err := svc.ListUsers()
			if err != nil {
				return err
			}
			renderUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}

	cmd.AddCommand(create, list)
	return cmd
}

func openUserService(cfg *config.Config) (*application.UserService, func(), error) {
	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return application.NewUserService(repository.NewRepositories(gormDB), nil), closeDB, nil
}

func renderUsers(w io.Writer, users []user.User) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Username", "Created"})
	for _, u := range users {
		tw.AppendRow(table.Row{u.ID, u.Username, u.CreatedAt.Format("2006-01-02 15:04")})
	}
	tw.AppendFooter(table.Row{"", "Total", len(users)})
	tw.Render()
}

// validateInput applies the same binding rules the HTTP register endpoint uses.
func validateInput(input user.CreateUserInput) error {
	v := validator.New()
	v.SetTagName("binding")
	if err := v.Struct(input); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}
