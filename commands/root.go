package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	envPath   string
	dbPath    string
	fromStore bool
	verbose   bool
)

// Config is populated from PARLEY_* environment variables after the .env
// file (if any) is loaded.
type Config struct {
	DBPath string `envconfig:"DB_PATH"`
	Active string `envconfig:"ACTIVE"`
}

var cfg Config

// The base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "A typed contact and messaging viewer for the terminal",
	Long: `Parley models a small contact/messaging demo with named record types
(person, conversation, message) and renders them through terminal display
components. Records come from built-in seed data or from a sqlite store.`,
	// Run before any subcommand
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envPath); err != nil && verbose {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
			fmt.Println("Continuing without environment variables from .env file...")
		}

		if err := envconfig.Process("parley", &cfg); err != nil {
			return fmt.Errorf("envconfig.Process: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "./.env", "Path to .env file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the sqlite store (default ~/.parley/contacts.db)")
	rootCmd.PersistentFlags().BoolVar(&fromStore, "store", false, "Read records from the sqlite store instead of the built-in seed data")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(conversationsCmd)
	rootCmd.AddCommand(threadCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tuiCmd)

	return rootCmd
}

// storePath resolves the sqlite file location: flag, then environment,
// then ~/.parley/contacts.db.
func storePath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parley", "contacts.db"), nil
}
