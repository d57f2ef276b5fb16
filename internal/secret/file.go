package secret

import (
	"fmt"

	"linksecret/internal/storage"
)

// WriteNew generates a fresh link secret and persists its hex encoding
// to fileName inside directory. The directory must already exist; it is
// not created here. Any previous file content is replaced, and the
// encoding is written without a trailing newline. Returns the joined
// path of the written file.
//
// WriteNew is not idempotent: every call overwrites the file with a new
// secret. Concurrent calls on the same path race and the last writer
// wins.
func WriteNew(directory, fileName string) (string, error) {
	s, err := New()
	if err != nil {
		return "", err
	}

	path := storage.SecretPath(directory, fileName)
	if err := storage.WriteSecretFile(path, s.Hex()); err != nil {
		return "", err
	}

	return path, nil
}

// Load reads a previously written link secret file and decodes it.
func Load(path string) (LinkSecret, error) {
	content, err := storage.ReadSecretFile(path)
	if err != nil {
		return LinkSecret{}, err
	}

	s, err := FromHex(content)
	if err != nil {
		return LinkSecret{}, fmt.Errorf("link secret file %s: %w", path, err)
	}

	return s, nil
}
