// Package extract handles the statement extraction command
package extract

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nickymouseeeeeee/bankstatement/cmd/root"
	"github.com/nickymouseeeeeee/bankstatement/internal/common"
	"github.com/nickymouseeeeeee/bankstatement/internal/fileutils"
	"github.com/nickymouseeeeeee/bankstatement/internal/layout"
	"github.com/nickymouseeeeeee/bankstatement/internal/logging"
	"github.com/nickymouseeeeeee/bankstatement/internal/scbparser"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions and headers from a statement PDF",
	Long: `Extract reads one statement PDF, reconstructs its transaction table and
per-page headers, and writes them as two CSV files into the output directory.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file given, use --input")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("Input file not found: %s", input)
	}

	cfg := root.AppConfig
	outputDir := root.SharedFlags.OutputDir
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}
	password := root.SharedFlags.Password
	if password == "" {
		password = cfg.PDF.Password
	}

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	extractor := scbparser.New(layout.SCB(), log)

	stmt, err := extractor.ExtractFile(input, password)
	if err != nil {
		root.Log.Fatalf("Extraction failed: %v", err)
	}
	for _, pageErr := range stmt.Failures {
		root.Log.Warnf("Skipped page: %v", pageErr)
	}

	transactionsFile := filepath.Join(outputDir, cfg.Output.TransactionsFile)
	if err := common.WriteTransactionsCSV(stmt.Transactions, transactionsFile); err != nil {
		root.Log.Fatalf("Failed to write transactions: %v", err)
	}

	headersFile := filepath.Join(outputDir, cfg.Output.HeadersFile)
	if err := common.WriteHeadersCSV(stmt.Headers, headersFile); err != nil {
		root.Log.Fatalf("Failed to write headers: %v", err)
	}

	root.Log.WithFields(map[string]interface{}{
		"transactions": len(stmt.Transactions),
		"headers":      len(stmt.Headers),
	}).Info("Statement extraction completed successfully!")
}
