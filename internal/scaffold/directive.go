package scaffold

import (
	"fmt"
	"strings"

	"github.com/lhgen-dev/lhgen/internal/prompt"
)

// Stub placeholders filled in by the directive builder.
const (
	importsPlaceholder    = "{{ imports }}"
	implementsPlaceholder = "{{ implements }}"
	methodsPlaceholder    = "{{ methods }}"
	namePlaceholder       = "{{ name }}"
	locationsPlaceholder  = "{{ locations }}"
)

// ListQuestion is asked for argument directives before the interface
// questions. Its key is ArgDirectiveForArray so --implements can preset it.
const ListQuestion = "Will your argument directive apply to a list of items?"

// DirectiveOptions selects which interface groups a directive is asked about.
type DirectiveOptions struct {
	Type      bool
	Field     bool
	Argument  bool
	Validator bool
}

// StubReader reads a stub by name.
type StubReader interface {
	Read(name string) ([]byte, error)
}

type directiveBuilder struct {
	stub    string
	imports []string
	stubs   StubReader
	confirm prompt.Confirmer
}

// BuildDirective fills the directive placeholders of stub. class is the short
// class name, used to derive the SDL directive name.
func BuildDirective(stub, class string, opts DirectiveOptions, stubs StubReader, confirm prompt.Confirmer) (string, error) {
	b := &directiveBuilder{stub: stub, stubs: stubs, confirm: confirm}

	if opts.Type {
		if err := b.askForInterfaces(TypeInterfaces); err != nil {
			return "", err
		}
	}

	if opts.Field {
		if err := b.askForInterfaces(FieldInterfaces); err != nil {
			return "", err
		}
	}

	if opts.Argument {
		// Argument directives are always exactly one of the two markers.
		list, err := confirm.Confirm(prompt.Question{Key: ArgDirectiveForArray, Text: ListQuestion})
		if err != nil {
			return "", err
		}
		marker := ArgDirective
		if list {
			marker = ArgDirectiveForArray
		}
		if err := b.insertInterface(marker, false); err != nil {
			return "", err
		}

		if err := b.askForInterfaces(ArgumentInterfaces); err != nil {
			return "", err
		}
	}

	if opts.Validator {
		if err := b.insertInterface(ArgumentValidation, true); err != nil {
			return "", err
		}
	}

	// Empty import stubs contribute nothing; cleanup then drops the line.
	if imports := uniqueLines(b.imports); len(imports) > 0 {
		b.stub = strings.ReplaceAll(b.stub, importsPlaceholder, strings.Join(imports, "\n"))
	}

	b.cleanup()

	b.stub = strings.ReplaceAll(b.stub, namePlaceholder, DirectiveName(class))
	b.stub = strings.ReplaceAll(b.stub, locationsPlaceholder, DirectiveLocations(opts))

	return b.stub, nil
}

// InterfaceQuestion is the question asked for each optional interface.
func InterfaceQuestion(name string) string {
	return fmt.Sprintf("Should the directive implement the %s interface?", name)
}

func (b *directiveBuilder) askForInterfaces(names []string) error {
	for _, name := range names {
		ok, err := b.confirm.Confirm(prompt.Question{Key: name, Text: InterfaceQuestion(name)})
		if err != nil {
			return err
		}
		if ok {
			if err := b.insertInterface(name, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// insertInterface adds the use statement and implements entry for name and,
// when withMethods is set, the method stubs and the imports they need.
func (b *directiveBuilder) insertInterface(name string, withMethods bool) error {
	b.stub = strings.ReplaceAll(b.stub, importsPlaceholder,
		"use "+ContractsNamespace+`\`+name+";\n"+importsPlaceholder)

	b.stub = strings.ReplaceAll(b.stub, implementsPlaceholder,
		name+", "+implementsPlaceholder)

	if !withMethods {
		return nil
	}

	imports, err := b.stubs.Read(ImportsStub(name))
	if err != nil {
		return fmt.Errorf("imports for %s: %w", name, err)
	}
	b.imports = append(b.imports, strings.Split(string(imports), "\n")...)

	methods, err := b.stubs.Read(MethodsStub(name))
	if err != nil {
		return fmt.Errorf("methods for %s: %w", name, err)
	}
	// A trailing newline in an edited stub would leave a blank line before
	// the closing brace.
	body := strings.TrimRight(string(methods), "\r\n")

	b.stub = strings.ReplaceAll(b.stub, methodsPlaceholder, body+"\n\n"+methodsPlaceholder)
	return nil
}

// cleanup removes what is left of the placeholders. The order matters: the
// implements list is trimmed before the bare keyword is dropped.
func (b *directiveBuilder) cleanup() {
	// One or more interfaces leave ", {{ implements }}".
	b.stub = strings.ReplaceAll(b.stub, ", "+implementsPlaceholder, "")

	// No interfaces leave "implements {{ implements }}".
	b.stub = strings.ReplaceAll(b.stub, " implements "+implementsPlaceholder, "")
	b.stub = strings.ReplaceAll(b.stub, "implements "+implementsPlaceholder, "")

	// No method imports leave the imports line.
	b.stub = strings.ReplaceAll(b.stub, importsPlaceholder+"\n", "")

	// The methods placeholder is always left.
	b.stub = strings.ReplaceAll(b.stub, "\n\n"+methodsPlaceholder, "")
}

// uniqueLines drops empty lines and repeated lines, keeping first occurrences.
func uniqueLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	var out []string
	for _, l := range lines {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// DirectiveName returns the SDL name for a directive class:
// "UpperCaseDirective" becomes "upperCase".
func DirectiveName(class string) string {
	return LowerFirst(strings.TrimSuffix(class, KindDirective.Suffix))
}

// DirectiveLocations returns the GraphQL locations implied by the options.
func DirectiveLocations(opts DirectiveOptions) string {
	var locs []string
	add := func(names ...string) {
		for _, n := range names {
			found := false
			for _, l := range locs {
				if l == n {
					found = true
					break
				}
			}
			if !found {
				locs = append(locs, n)
			}
		}
	}

	if opts.Type {
		add("OBJECT")
	}
	if opts.Field {
		add("FIELD_DEFINITION")
	}
	if opts.Argument || opts.Validator {
		add("ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION")
	}
	if len(locs) == 0 {
		add("FIELD_DEFINITION")
	}

	return strings.Join(locs, " | ")
}
