// Package main is the entry point for the recordkit-cli application.
// It initializes the root command, registers the user and order sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/recordkit/recordkit/cmd/recordkit-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "recordkit-cli",
		Short: "ActiveRecord-style data-access CLI tool",
		Long: `recordkit-cli is a command-line tool exercising the record layer.
It manages users and orders through factory-resolved models and DAOs backed
by a SQLite or PostgreSQL database. Pass --config to point at a YAML file;
without one a local SQLite database is used.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitOrderCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize order commands: %w", err)
	}

	return nil
}
