// Package fileutils provides small filesystem helpers used by the CSV
// writers and the CLI.
package fileutils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Error checking if file exists")
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Error checking if directory exists")
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates the directory if it does not already exist.
func EnsureDirectoryExists(path string) error {
	if DirectoryExists(path) {
		return nil
	}
	log.WithField("path", path).Debug("Creating directory")
	return os.MkdirAll(path, 0o755)
}
