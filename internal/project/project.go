package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// ErrNoProject is returned when no composer.json is found walking up.
var ErrNoProject = errors.New("no composer.json found in this directory or any parent")

// Project is a loaded Laravel project.
type Project struct {
	Root         string
	Autoload     map[string]string // namespace prefix (with trailing \) -> dir relative to Root
	Settings     Settings
	SettingsFile string // "" when running on defaults

	// VersionString is the raw Lighthouse version from settings or
	// composer.lock; Version is nil when it is absent or unparseable.
	VersionString string
	Version       *semver.Version

	Warnings []string
}

// Find walks up from start until it finds a directory with composer.json.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, composerFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", start, ErrNoProject)
		}
		dir = parent
	}
}

// Open finds the project containing start and loads it.
func Open(start string) (*Project, error) {
	root, err := Find(start)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// Load reads the project rooted at root.
func Load(root string) (*Project, error) {
	autoload, err := readAutoload(root)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Root:         root,
		Autoload:     autoload,
		SettingsFile: findSettingsFile(root),
	}

	p.Settings, err = loadSettings(p.SettingsFile)
	if err != nil {
		return nil, err
	}

	p.VersionString = p.Settings.LighthouseVersion
	if p.VersionString == "" {
		p.VersionString, err = readLockedVersion(root)
		if err != nil {
			return nil, err
		}
	}

	if p.VersionString != "" {
		v, err := ParseVersion(p.VersionString)
		if err != nil {
			p.Warnings = append(p.Warnings, fmt.Sprintf("ignoring lighthouse version: %v", err))
		} else {
			p.Version = v
		}
	}

	return p, nil
}

// StubsDir returns the absolute stub override directory. The project
// setting wins over fallback (the user-level stubs_path), which wins over
// DefaultStubsPath.
func (p *Project) StubsDir(fallback string) string {
	dir := p.Settings.StubsPath
	if dir == "" {
		dir = fallback
	}
	if dir == "" {
		dir = DefaultStubsPath
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.Root, filepath.FromSlash(dir))
}
