// Package fileutils provides common file operations used throughout the
// application: discovery of input PDFs, output directory fallbacks, and the
// optional auto-opening of generated files.
package fileutils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// FindPDFs returns the PDF files directly inside dir, sorted by name.
func FindPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// OutputDirCandidates returns the fallback list of output directories, in
// preference order: the configured directory first (when non-empty), then a
// timestamped folder on the user's Desktop, Documents and Downloads, in the
// working directory, and finally under the OS temp directory.
func OutputDirCandidates(configured string) []string {
	stamped := "Faculty_Data_" + time.Now().Format("20060102_150405")

	var candidates []string
	if configured != "" {
		candidates = append(candidates, configured)
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, "Desktop", stamped),
			filepath.Join(home, "Documents", stamped),
			filepath.Join(home, "Downloads", stamped),
		)
	}
	candidates = append(candidates, stamped, filepath.Join(os.TempDir(), stamped))
	return candidates
}

// FirstWritableDir creates and returns the first candidate directory that can
// be created. It returns the attempted candidates alongside the error when
// none is writable.
func FirstWritableDir(candidates []string) (string, []string, error) {
	var lastErr error
	for _, dir := range candidates {
		if err := os.MkdirAll(dir, 0750); err != nil {
			lastErr = err
			continue
		}
		return dir, candidates, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no output directory candidates")
	}
	return "", candidates, lastErr
}

// OpenInViewer asks the desktop environment to open the given file or
// directory. Failures are logged and ignored; opening files is a
// convenience, never a requirement.
func OpenInViewer(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		log.WithError(err).WithField("path", path).Debug("Could not open file in viewer")
	}
}
