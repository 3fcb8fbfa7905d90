package project

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoNamespace is returned when a namespace setting is empty.
	ErrNoNamespace = errors.New("a default namespace is required for code generation")
	// ErrNoAutoload is returned when no PSR-4 root covers a class.
	ErrNoAutoload = errors.New("no psr-4 autoload entry covers the namespace")
	// ErrOutsideAutoload is returned when a class path resolves outside its
	// PSR-4 directory.
	ErrOutsideAutoload = errors.New("class path leaves its psr-4 directory")
)

const defaultRootNamespace = `App\`

// CommonNamespace picks the namespace generated classes go into when several
// are configured: the longest common prefix of whole segments. With nothing
// in common the first configured namespace wins.
func CommonNamespace(namespaces []string) (string, error) {
	var cleaned []string
	for _, ns := range namespaces {
		ns = strings.Trim(strings.TrimSpace(ns), `\`)
		if ns != "" {
			cleaned = append(cleaned, ns)
		}
	}

	switch len(cleaned) {
	case 0:
		return "", ErrNoNamespace
	case 1:
		return cleaned[0], nil
	}

	preferred := cleaned[0]

	// Once sorted, a prefix shared by the first and last entries is shared
	// by all of them.
	sorted := append([]string(nil), cleaned...)
	sort.Strings(sorted)
	first := strings.Split(sorted[0], `\`)
	last := strings.Split(sorted[len(sorted)-1], `\`)

	var matching []string
	for i, part := range first {
		if i >= len(last) || last[i] != part {
			break
		}
		matching = append(matching, part)
	}

	if len(matching) == 0 {
		return preferred, nil
	}
	return strings.Join(matching, `\`), nil
}

// DefaultNamespace resolves the namespace for a setting key such as
// "directives".
func (p *Project) DefaultNamespace(key string) (string, error) {
	ns, err := CommonNamespace(p.Settings.Namespaces[key])
	if err != nil {
		return "", fmt.Errorf("namespaces.%s: %w", key, err)
	}
	return ns, nil
}

// RootNamespace returns the PSR-4 namespace mapped to app/, with a trailing
// backslash. When several prefixes map there the shortest wins. Projects
// without one get App\.
func (p *Project) RootNamespace() string {
	root := ""
	for ns, dir := range p.Autoload {
		if path.Clean(filepath.ToSlash(dir)) != "app" {
			continue
		}
		if root == "" || len(ns) < len(root) || (len(ns) == len(root) && ns < root) {
			root = ns
		}
	}
	if root == "" {
		return defaultRootNamespace
	}
	return root
}

// ClassPath returns the absolute file path for a fully qualified class name,
// using the longest PSR-4 prefix that covers it.
func (p *Project) ClassPath(class string) (string, error) {
	class = strings.TrimLeft(class, `\`)

	best := ""
	for ns := range p.Autoload {
		if strings.HasPrefix(class, ns) && len(ns) > len(best) {
			best = ns
		}
	}
	if best == "" {
		return "", fmt.Errorf("%s: %w", class, ErrNoAutoload)
	}

	base := filepath.Join(p.Root, filepath.FromSlash(p.Autoload[best]))
	rel := strings.ReplaceAll(strings.TrimPrefix(class, best), `\`, "/") + ".php"
	target := filepath.Join(base, filepath.FromSlash(rel))

	if r, err := filepath.Rel(base, target); err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", class, ErrOutsideAutoload)
	}
	return target, nil
}
