package stubs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
)

//go:embed files
var embedded embed.FS

const (
	rootDir   = "files"
	commonSet = "common"
)

// ErrStubNotFound is returned when no layer provides the requested stub.
var ErrStubNotFound = errors.New("stub not found")

// versionSets maps a Lighthouse version constraint to the stub set that
// overrides the common stubs for it. The first matching entry wins.
var versionSets = []struct {
	constraint string
	set        string
}{
	{">= 6.0.0-0", "v6"},
}

// SetFor returns the stub set name for an installed Lighthouse version, or
// "" when only the common set applies. A nil version selects the common set.
func SetFor(v *semver.Version) string {
	if v == nil {
		return ""
	}
	for _, vs := range versionSets {
		c, err := semver.NewConstraint(vs.constraint)
		if err != nil {
			continue
		}
		if c.Check(v) {
			return vs.set
		}
	}
	return ""
}

// Store reads stubs by slash-separated name, e.g. "directive.stub" or
// "directives/field_resolver.stub".
type Store struct {
	overrideDir string
	set         string
}

// Option configures a Store.
type Option func(*Store)

// WithOverrideDir makes the store look in dir before the embedded stubs.
// A missing directory is not an error.
func WithOverrideDir(dir string) Option {
	return func(s *Store) { s.overrideDir = dir }
}

// WithSet selects a version stub set layered over the common set.
func WithSet(set string) Option {
	return func(s *Store) { s.set = set }
}

// New creates a Store.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set returns the active version set name ("" for common only).
func (s *Store) Set() string { return s.set }

// OverrideDir returns the project override directory, if any.
func (s *Store) OverrideDir() string { return s.overrideDir }

// Read returns the content of the named stub from the first layer that has it.
func (s *Store) Read(name string) ([]byte, error) {
	if s.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(s.overrideDir, filepath.FromSlash(name)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading stub override %s: %w", name, err)
		}
	}

	data, err := s.readEmbedded(name)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Source reports which layer Read would take the named stub from:
// "override", the version set name, or "common".
func (s *Store) Source(name string) (string, error) {
	if s.overrideDir != "" {
		if _, err := os.Stat(filepath.Join(s.overrideDir, filepath.FromSlash(name))); err == nil {
			return "override", nil
		}
	}
	if s.set != "" {
		if _, err := fs.Stat(embedded, path.Join(rootDir, s.set, name)); err == nil {
			return s.set, nil
		}
	}
	if _, err := fs.Stat(embedded, path.Join(rootDir, commonSet, name)); err == nil {
		return commonSet, nil
	}
	return "", fmt.Errorf("%s: %w", name, ErrStubNotFound)
}

func (s *Store) readEmbedded(name string) ([]byte, error) {
	if s.set != "" {
		data, err := fs.ReadFile(embedded, path.Join(rootDir, s.set, name))
		if err == nil {
			return data, nil
		}
	}
	data, err := fs.ReadFile(embedded, path.Join(rootDir, commonSet, name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrStubNotFound)
	}
	return data, nil
}

// List returns the names of all embedded stubs, sorted. Version set files
// share names with the common files they override, so no duplicates appear.
func (s *Store) List() ([]string, error) {
	seen := make(map[string]bool)
	var names []string

	sets := []string{commonSet}
	if s.set != "" {
		sets = append(sets, s.set)
	}

	for _, set := range sets {
		base := path.Join(rootDir, set)
		err := fs.WalkDir(embedded, base, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel := p[len(base)+1:]
			if !seen[rel] {
				seen[rel] = true
				names = append(names, rel)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking stub set %s: %w", set, err)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Publish writes the effective embedded stubs into dir so a project can edit
// them. Existing files are skipped unless force is set. It returns the names
// that were written.
func (s *Store) Publish(dir string, force bool) ([]string, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range names {
		dest := filepath.Join(dir, filepath.FromSlash(name))
		if !force {
			if _, err := os.Stat(dest); err == nil {
				continue
			}
		}

		data, err := s.readEmbedded(name)
		if err != nil {
			return written, err
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", dest, err)
		}
		written = append(written, name)
	}

	return written, nil
}
