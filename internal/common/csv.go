// Package common provides the shared CSV output layer.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

var log = logrus.New()

// Delimiter is the global CSV delimiter, configurable via the application
// config or the CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteTransactionsCSV writes the transactions dataset to a CSV file,
// creating the output directory when needed.
func WriteTransactionsCSV(rows []models.TransactionRow, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	return writeCSV(rows, csvFile, "transactions")
}

// WriteHeadersCSV writes the per-page headers dataset to a CSV file,
// creating the output directory when needed.
func WriteHeadersCSV(rows []models.HeaderRow, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil headers to CSV")
	}
	return writeCSV(rows, csvFile, "headers")
}

func writeCSV(rows interface{}, csvFile, dataset string) error {
	log.WithFields(logrus.Fields{
		"file":    csvFile,
		"dataset": dataset,
	}).Info("Writing CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote CSV file")
	return nil
}
