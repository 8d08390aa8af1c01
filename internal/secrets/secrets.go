// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// Supported key files: corpus-api-token (sent as a bearer token on
// snapshot downloads).
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CorpusAPIToken is the key file holding the snapshot-endpoint bearer token.
const CorpusAPIToken = "corpus-api-token"

// Secrets maps key file names to their trimmed contents.
type Secrets map[string]string

// Value returns the secret for key, preferring an explicit override (a
// flag or an environment value) when one is given.
func (s Secrets) Value(key, override string) string {
	if override != "" {
		return override
	}
	return s[key]
}

// Keys lists the loaded key names in sorted order, for startup logging.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads every key file in dir. A missing directory is not an error;
// Load returns an empty set so commands that need no credentials still
// run. Unreadable files produce a warning on stderr but do not abort, so
// one bad key file cannot take down the CLI.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	loaded := make(Secrets, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		value, err := readKeyFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value != "" {
			loaded[name] = value
		}
	}
	return loaded, nil
}

func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
