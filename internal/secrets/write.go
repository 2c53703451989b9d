package secrets

import (
	"bufio"
	"fmt"
	"os"
)

// DefaultOutputFile is where the manifest lands when no path is given.
const DefaultOutputFile = "500-user-secrets.yaml"

// ManifestHeader is the comment block written before the first
// document. It names the consuming load script so operators know where
// the api_key derivation contract lives.
const ManifestHeader = "# 500 User API Key Secrets for Benchmarking\n" +
	"# 250 Free users (freeuser1-250) + 250 Premium users (premiumuser1-250)\n" +
	"# Generated for load testing with maas-k6.js\n"

// WriteManifest writes the header comment and all documents, in order,
// to path. The file is created or truncated.
func WriteManifest(documents []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(ManifestHeader); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, doc := range documents {
		if _, err := w.WriteString(doc); err != nil {
			f.Close()
			return fmt.Errorf("failed to write document to %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
