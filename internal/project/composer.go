package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	composerFile     = "composer.json"
	composerLockFile = "composer.lock"
	lighthousePkg    = "nuwave/lighthouse"
)

type composerJSON struct {
	Autoload struct {
		PSR4 map[string]json.RawMessage `json:"psr-4"`
	} `json:"autoload"`
}

type composerLock struct {
	Packages []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"packages"`
}

// readAutoload returns the PSR-4 map of composer.json in root. A namespace
// may map to one directory or a list; the first directory is used.
func readAutoload(root string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(root, composerFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", composerFile, err)
	}

	var cj composerJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", composerFile, err)
	}

	autoload := make(map[string]string, len(cj.Autoload.PSR4))
	for ns, raw := range cj.Autoload.PSR4 {
		var dir string
		if err := json.Unmarshal(raw, &dir); err != nil {
			var dirs []string
			if err := json.Unmarshal(raw, &dirs); err != nil {
				return nil, fmt.Errorf("parsing psr-4 entry %q: %w", ns, err)
			}
			if len(dirs) == 0 {
				continue
			}
			dir = dirs[0]
		}
		autoload[normalizePrefix(ns)] = strings.TrimSuffix(filepath.ToSlash(dir), "/")
	}

	return autoload, nil
}

// readLockedVersion returns the nuwave/lighthouse version string pinned in
// composer.lock, or "" when the lock file or the package is absent.
func readLockedVersion(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, composerLockFile))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", composerLockFile, err)
	}

	var lock composerLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return "", fmt.Errorf("parsing %s: %w", composerLockFile, err)
	}

	for _, p := range lock.Packages {
		if p.Name == lighthousePkg {
			return p.Version, nil
		}
	}
	return "", nil
}

// normalizePrefix makes sure a namespace prefix ends in exactly one backslash.
func normalizePrefix(ns string) string {
	return strings.TrimRight(ns, `\`) + `\`
}
