// Package storage persists the link secret file. It deliberately does
// not create directories: the secret directory belongs to the
// surrounding installation and must exist before a write.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// SecretFileMode keeps the written secret readable by the owning user only.
const SecretFileMode = 0o600

// SecretPath joins the secret directory and file name using platform
// path semantics. Neither component is validated.
func SecretPath(directory, fileName string) string {
	return filepath.Join(directory, fileName)
}

// WriteSecretFile writes encoded to path, truncating any existing
// content. The handle is closed on every exit path, including a failed
// write; a write error takes precedence over a close error.
func WriteSecretFile(path, encoded string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, SecretFileMode)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}

	_, werr := f.WriteString(encoded)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("could not write file: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("could not close file: %w", cerr)
	}

	return nil
}

// ReadSecretFile returns the raw content of a secret file.
func ReadSecretFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}
	return string(content), nil
}
