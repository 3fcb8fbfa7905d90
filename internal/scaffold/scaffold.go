package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lhgen-dev/lhgen/internal/logger"
	"github.com/lhgen-dev/lhgen/internal/project"
	"github.com/lhgen-dev/lhgen/internal/prompt"
)

var (
	// ErrAlreadyExists is returned when the target file exists and --force
	// was not given.
	ErrAlreadyExists = errors.New("already exists")
	// ErrReservedName is returned for class names PHP does not allow.
	ErrReservedName = errors.New("is reserved by PHP")
	// ErrEmptyName is returned for a blank name argument.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrInvalidName is returned when a name segment is not a PHP identifier.
	ErrInvalidName = errors.New("is not a valid PHP class name")
)

// Kind is one kind of generated class.
type Kind struct {
	Name         string // command name, e.g. "directive"
	Label        string // used in messages, e.g. "Directive"
	NamespaceKey string // project namespace setting
	Suffix       string // appended to the class name when missing
	Stub         string
	FullStub     string // alternative stub for --full, if supported
}

var (
	KindDirective    = Kind{"directive", "Directive", project.NSDirectives, "Directive", "directive.stub", ""}
	KindValidator    = Kind{"validator", "Validator", project.NSValidators, "Validator", "validator.stub", ""}
	KindScalar       = Kind{"scalar", "Scalar", project.NSScalars, "", "scalar.stub", ""}
	KindQuery        = Kind{"query", "Query", project.NSQueries, "", "query.stub", "query_full.stub"}
	KindMutation     = Kind{"mutation", "Mutation", project.NSMutations, "", "mutation.stub", "mutation_full.stub"}
	KindSubscription = Kind{"subscription", "Subscription", project.NSSubscriptions, "", "subscription.stub", ""}
	KindUnion        = Kind{"union", "Union", project.NSUnions, "", "union.stub", ""}
	KindInterface    = Kind{"interface", "Interface", project.NSInterfaces, "", "interface.stub", ""}
)

// Kinds lists every generator kind in display order.
var Kinds = []Kind{
	KindDirective, KindValidator, KindScalar, KindQuery,
	KindMutation, KindSubscription, KindUnion, KindInterface,
}

// LookupKind finds a kind by command name.
func LookupKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Layout maps class names to namespaces and files. *project.Project
// implements it.
type Layout interface {
	RootNamespace() string
	DefaultNamespace(key string) (string, error)
	ClassPath(class string) (string, error)
}

// Generator builds and writes classes.
type Generator struct {
	Layout  Layout
	Stubs   StubReader
	Confirm prompt.Confirmer
	Logger  *slog.Logger
}

// Request describes one class to generate.
type Request struct {
	Kind      Kind
	Name      string
	Full      bool
	Directive DirectiveOptions
	Force     bool
	DryRun    bool
}

// Result holds the outcome of a generation.
type Result struct {
	Kind      Kind
	Class     string // fully qualified class name
	Path      string
	Content   string
	Written   bool
	Overwrote bool
	Diff      string // dry run against an existing file
	Warnings  []string
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*[A-Za-z]+\s*\}\}|\bDummy(?:Root)?(?:Namespace|Class)\b`)

// Generate builds the requested class and writes it unless DryRun is set.
func (g *Generator) Generate(req Request) (*Result, error) {
	log := g.logger().With("kind", req.Kind.Name)

	input := NameInput(req.Kind, req.Name)
	if input == "" {
		return nil, ErrEmptyName
	}

	if seg := invalidSegment(input); seg != "" {
		return nil, fmt.Errorf("the name %q %w (segment %q)", input, ErrInvalidName, seg)
	}

	short := shortName(input)
	if IsReserved(short) {
		return nil, fmt.Errorf("the name %q %w", short, ErrReservedName)
	}

	class, err := g.qualifyClass(req.Kind, input)
	if err != nil {
		return nil, err
	}

	path, err := g.Layout.ClassPath(class)
	if err != nil {
		return nil, err
	}

	existing, readErr := os.ReadFile(path)
	exists := readErr == nil
	if exists && !req.Force && !req.DryRun {
		return nil, fmt.Errorf("%s %w: %s", req.Kind.Label, ErrAlreadyExists, path)
	}

	content, err := g.buildClass(req, class)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:     req.Kind,
		Class:    class,
		Path:     path,
		Content:  content,
		Warnings: leftoverPlaceholders(content),
	}

	if req.DryRun {
		if exists {
			result.Diff = LineDiff(string(existing), content)
		}
		log.Debug("class.dry_run", "class", class, "path", path)
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	result.Written = true
	result.Overwrote = exists
	log.Info("class.generated", "class", class, "path", path, "overwrote", exists)

	return result, nil
}

// qualifyClass prefixes the kind's default namespace unless the name is
// already rooted in the project's root namespace.
func (g *Generator) qualifyClass(k Kind, name string) (string, error) {
	name = strings.TrimLeft(name, `\`)

	root := g.Layout.RootNamespace()
	if strings.HasPrefix(name, root) {
		return name, nil
	}

	ns, err := g.Layout.DefaultNamespace(k.NamespaceKey)
	if err != nil {
		return "", err
	}
	return ns + `\` + name, nil
}

func (g *Generator) buildClass(req Request, class string) (string, error) {
	stubName := req.Kind.Stub
	if req.Full && req.Kind.FullStub != "" {
		stubName = req.Kind.FullStub
	}

	raw, err := g.Stubs.Read(stubName)
	if err != nil {
		return "", fmt.Errorf("%s stub: %w", req.Kind.Label, err)
	}

	stub := replaceNamespace(string(raw), namespaceOf(class), g.Layout.RootNamespace())
	stub = replaceClass(stub, shortName(class))

	if req.Kind.Name == KindDirective.Name {
		return BuildDirective(stub, shortName(class), req.Directive, g.Stubs, g.confirmer())
	}
	return stub, nil
}

func (g *Generator) confirmer() prompt.Confirmer {
	if g.Confirm == nil {
		return prompt.Defaults{}
	}
	return g.Confirm
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return logger.L()
	}
	return g.Logger
}

func replaceNamespace(stub, namespace, rootNamespace string) string {
	r := strings.NewReplacer(
		"DummyRootNamespace", rootNamespace,
		"{{ rootNamespace }}", rootNamespace,
		"{{rootNamespace}}", rootNamespace,
		"DummyNamespace", namespace,
		"{{ namespace }}", namespace,
		"{{namespace}}", namespace,
	)
	return r.Replace(stub)
}

func replaceClass(stub, class string) string {
	r := strings.NewReplacer(
		"DummyClass", class,
		"{{ class }}", class,
		"{{class}}", class,
	)
	return r.Replace(stub)
}

// leftoverPlaceholders reports placeholder tokens a custom stub left unfilled.
func leftoverPlaceholders(content string) []string {
	matches := placeholderPattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var warnings []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		warnings = append(warnings, fmt.Sprintf("unfilled placeholder %s left in output", m))
	}
	return warnings
}
