package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"networkbook/internal/app"
	"networkbook/internal/config"
	"networkbook/internal/encryption"
	"networkbook/internal/person"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	faint   = color.New(color.Faint)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		failure.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp reads the config and creates an NBApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "Exec", "Backup").
func newApp(operation, parameters string) (*app.NBApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewNBApp(cfg, operation, parameters)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// readPassphrase returns NB_PASSPHRASE when set, otherwise prompts on the
// terminal without echo.
func readPassphrase(prompt string) (string, error) {
	if p := os.Getenv("NB_PASSPHRASE"); p != "" {
		return p, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal to read passphrase from: set NB_PASSPHRASE")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(b), nil
}

func printPersons(persons []person.Person) {
	if len(persons) == 0 {
		faint.Println("No persons to show.")
		return
	}
	for i, p := range persons {
		fmt.Printf("%d. %s\n", i+1, p)
	}
}

// run executes one command line and prints its result. It reports whether
// the session should end.
func run(a *app.NBApp, line string) (exit bool, err error) {
	result, err := a.Execute(line)
	if err != nil {
		return false, err
	}
	success.Println(result.Message)
	if result.ShowList {
		printPersons(a.Displayed())
	}
	return result.Exit, nil
}

var rootCmd = &cobra.Command{
	Use:           "networkbook",
	Short:         "Contact book for your professional network",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypt, _ := cmd.Flags().GetBool("encrypt")
		storageType, _ := cmd.Flags().GetString("storage")

		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		bookID := uuid.New().String()
		cfg, err := app.DefaultConfig(bookID, storageType)
		if err != nil {
			return err
		}
		if encrypt {
			cfg.Encryption.Type = "age"
		}

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		if encrypt {
			passphrase, err := readPassphrase("Passphrase for the backup key: ")
			if err != nil {
				return err
			}
			enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
			if err != nil {
				return err
			}
			if err := enc.Setup(passphrase); err != nil {
				return fmt.Errorf("generating keys: %w", err)
			}
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Book ID:  %s\n", bookID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Read config
		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		// Display config
		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Book ID:    %s\n", cfg.BookID)
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Storage:    %s %s\n", cfg.Storage.Type, cfg.Storage.Path)
		fmt.Printf("Encryption: %s\n", cfg.Encryption.Type)
		for _, v := range cfg.Vaults {
			fmt.Printf("Vault:      %s (%s)\n", v.Name, v.Type)
		}
		return nil
	},
}

var configVaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage vault",
}

var configVaultCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the vault is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CheckVault", "")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.CheckVault(); err != nil {
			return err
		}
		success.Println("Vault is reachable.")
		return nil
	},
}

// exec command
var execCmd = &cobra.Command{
	Use:   "exec COMMAND [ARGS]...",
	Short: "Run a single command",
	Args:  cobra.MinimumNArgs(1),
	// Contact values may start with "-".
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Join(args, " ")
		a, err := newApp("Exec", line)
		if err != nil {
			return err
		}
		defer a.Close()

		_, err = run(a, line)
		return err
	},
}

// shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Shell", "")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Println("Welcome to Network Book! Type help to see every command.")
		printPersons(a.Displayed())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			exit, err := run(a, line)
			if err != nil {
				failure.Println(err)
				continue
			}
			if exit {
				return nil
			}
		}
		fmt.Println()
		return scanner.Err()
	},
}

// backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload a snapshot of the book to the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Backup", "")
		if err != nil {
			return err
		}
		defer a.Close()

		snap, err := a.Backup()
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		success.Printf("Backed up %d person(s) as version %d (%s)\n", snap.Persons, snap.Version, snap.ID)
		return nil
	},
}

// restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the book with the newest snapshot in the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Restore", "")
		if err != nil {
			return err
		}
		defer a.Close()

		var passphrase string
		if a.Encrypted() {
			passphrase, err = readPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
		}

		n, err := a.Restore(passphrase)
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		success.Printf("Restored %d person(s)\n", n)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("encrypt", false, "Encrypt backups with a passphrase-protected age key")
	configInitCmd.Flags().String("storage", "json", "Where contacts are kept: json or sqlite")
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configVaultCmd)
	configVaultCmd.AddCommand(configVaultCheckCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
