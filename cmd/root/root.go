// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nickymouseeeeeee/bankstatement/internal/common"
	"github.com/nickymouseeeeeee/bankstatement/internal/config"
	"github.com/nickymouseeeeeee/bankstatement/internal/fileutils"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	OutputDir string
	Password  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankstatement",
		Short: "A CLI tool to reconstruct transaction tables from bank statement PDFs.",
		Long: `bankstatement reads statement PDFs that expose only positioned text,
rebuilds the transaction table from token coordinates, and writes two CSV
datasets: transactions and per-page headers.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankstatement!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			AppConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			fileutils.SetLogger(Log)
			common.SetLogger(Log)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input PDF file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.OutputDir, "output-dir", "o", "", "Output directory for the CSV datasets")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Password, "password", "p", "", "Password for encrypted PDFs (overrides PDF_PASSWORD)")
}
