package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recordkit/recordkit/internal/domain/users"
)

// CreateUserCmd persists a new user through the factory-resolved user model.
func CreateUserCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}

	factory, err := setupFactory(cmd)
	if err != nil {
		return err
	}

	userModel, err := users.New(factory)
	if err != nil {
		return err
	}

	user := &users.User{Name: name, Email: email}
	if err := userModel.Create(cmd.Context(), user); err != nil {
		return err
	}

	cmd.Printf("Created user %s (%s)\n", user.ID, user.Email)
	return nil
}

// ListUsersCmd prints all users.
func ListUsersCmd(cmd *cobra.Command, _ []string) error {
	factory, err := setupFactory(cmd)
	if err != nil {
		return err
	}

	userModel, err := users.New(factory)
	if err != nil {
		return err
	}

	list, err := userModel.List(cmd.Context())
	if err != nil {
		return err
	}

	for _, user := range list {
		cmd.Printf("%s\t%s\t%s\n", user.ID, user.Name, user.Email)
	}
	return nil
}

// DeleteUserCmd removes a user by ID.
func DeleteUserCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}

	factory, err := setupFactory(cmd)
	if err != nil {
		return err
	}

	userModel, err := users.New(factory)
	if err != nil {
		return err
	}

	if err := userModel.Remove(cmd.Context(), userID); err != nil {
		return err
	}

	cmd.Printf("Deleted user %s\n", userID)
	return nil
}

// InitUserCommands registers user-related commands
func InitUserCommands(rootCmd *cobra.Command) error {
	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Create a user",
		RunE:  CreateUserCmd,
	}
	createUserCmd.Flags().StringP("name", "", "", "Display name of the user")
	createUserCmd.Flags().StringP("email", "", "", "Email address of the user")
	rootCmd.AddCommand(createUserCmd)

	var listUsersCmd = &cobra.Command{
		Use:   "list-users",
		Short: "List all users",
		RunE:  ListUsersCmd,
	}
	rootCmd.AddCommand(listUsersCmd)

	var deleteUserCmd = &cobra.Command{
		Use:   "delete-user",
		Short: "Delete a user by ID",
		RunE:  DeleteUserCmd,
	}
	deleteUserCmd.Flags().StringP("id", "", "", "ID of the user to delete")
	rootCmd.AddCommand(deleteUserCmd)

	return nil
}
