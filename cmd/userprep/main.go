package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/installkit/userprep/pkg/i18n"
	"github.com/installkit/userprep/pkg/logging"
	"github.com/installkit/userprep/pkg/profile"
	"github.com/installkit/userprep/pkg/strength"
	"github.com/installkit/userprep/pkg/users"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "userprep",
	Short:         "Installer user account preparation tool",
	SilenceUsage:  false,
	SilenceErrors: true,
	Long: `userprep - normalize installer user-account configuration

Reads a credentials profile (current or legacy format), normalizes it into
canonical user records, reports password strength per account, and optionally
writes the profile back in the current format.

Configuration file must be in JSON format with the following structure:
{
    "profile_path": "/path/to/user_credentials.json",
    "output_path": "/path/to/normalized_credentials.json",
    "language": "en",
    "app_log_path": "/var/log/userprep.log",
    "log_level": "info"
}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("userprep %s\n", version)
			return nil
		}

		if cfgFile == "" {
			return fmt.Errorf("config file is required (use --config)")
		}

		// Convert to absolute path if needed
		if !filepath.IsAbs(cfgFile) {
			var err error
			cfgFile, err = filepath.Abs(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %v", err)
			}
		}

		var config Config
		if err := LoadConfig(cfgFile, &config); err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}

		if err := logging.Initialize(config.AppLogPath, logging.LogLevel(config.LogLevel)); err != nil {
			return fmt.Errorf("failed to initialize logging: %v", err)
		}
		i18n.Init(config.Language)

		fs := afero.NewOsFs()
		source := users.NewFileSource(fs, config.ProfilePath)
		repository := users.NewRepository(source, time.Minute)

		list, err := repository.Users()
		if err != nil {
			return fmt.Errorf("failed to normalize profile: %v", err)
		}

		printUserTable(cmd, list)

		if config.OutputPath != "" {
			writer := profile.NewWriter(fs)
			if err := writer.Write(config.OutputPath, list); err != nil {
				return fmt.Errorf("failed to write normalized profile: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nWrote normalized profile to %s\n", config.OutputPath)
		}

		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <password>",
	Short: "Classify the strength of a single password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strength.Classify(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), renderStrength(category))
		return nil
	},
}

func printUserTable(cmd *cobra.Command, list []users.User) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No users in profile")
		return
	}

	fmt.Fprintf(out, "%-20s %-6s %s\n", "USERNAME", "SUDO", "PASSWORD STRENGTH")
	for _, u := range list {
		category := strength.Classify(u.Password)
		fmt.Fprintf(out, "%-20s %-6v %s\n", u.Username, u.Sudo, renderStrength(category))
	}
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to config file (required)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")
	rootCmd.AddCommand(checkCmd)
}
