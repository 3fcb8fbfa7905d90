package scaffold

import "strings"

// ContractsNamespace is where Lighthouse declares its directive interfaces.
const ContractsNamespace = `Nuwave\Lighthouse\Support\Contracts`

// Group is the directive location an interface belongs to.
type Group string

const (
	GroupType       Group = "type"
	GroupField      Group = "field"
	GroupArgument   Group = "argument"
	GroupValidation Group = "validation"
)

// Interface names with special handling.
const (
	ArgDirective         = "ArgDirective"
	ArgDirectiveForArray = "ArgDirectiveForArray"
	ArgumentValidation   = "ArgumentValidation"
)

// The interfaces offered, in the order they are asked about.
var (
	TypeInterfaces     = []string{"TypeManipulator", "TypeMiddleware", "TypeResolver", "TypeExtensionManipulator"}
	FieldInterfaces    = []string{"FieldResolver", "FieldMiddleware", "FieldManipulator"}
	ArgumentInterfaces = []string{"ArgTransformerDirective", "ArgBuilderDirective", "ArgResolver", "ArgManipulator"}
)

// Interface describes one directive interface.
type Interface struct {
	Name        string
	Group       Group
	Methods     bool // whether implementing it adds method stubs
	Description string
}

// Interfaces is the catalog of every interface the directive generator knows.
var Interfaces = []Interface{
	{"TypeManipulator", GroupType, true, "Manipulate the AST of a type definition"},
	{"TypeMiddleware", GroupType, true, "Wrap the construction of a type"},
	{"TypeResolver", GroupType, true, "Build the type itself"},
	{"TypeExtensionManipulator", GroupType, true, "Manipulate the AST of a type extension"},
	{"FieldResolver", GroupField, true, "Provide the resolver of a field"},
	{"FieldMiddleware", GroupField, true, "Wrap the resolver of a field"},
	{"FieldManipulator", GroupField, true, "Manipulate the AST of a field definition"},
	{ArgDirective, GroupArgument, false, "Marker for directives on single argument values"},
	{ArgDirectiveForArray, GroupArgument, false, "Marker for directives on list argument values"},
	{"ArgTransformerDirective", GroupArgument, true, "Transform an argument value"},
	{"ArgBuilderDirective", GroupArgument, true, "Apply an argument to a query builder"},
	{"ArgResolver", GroupArgument, true, "Resolve a nested argument"},
	{"ArgManipulator", GroupArgument, true, "Manipulate the AST of an argument definition"},
	{ArgumentValidation, GroupValidation, true, "Provide Laravel validation rules for an argument"},
}

// LookupInterface finds an interface by name, ignoring case.
func LookupInterface(name string) (Interface, bool) {
	name = strings.TrimSpace(name)
	for _, i := range Interfaces {
		if strings.EqualFold(i.Name, name) {
			return i, true
		}
	}
	return Interface{}, false
}

// FQN returns the fully qualified interface name.
func (i Interface) FQN() string {
	return ContractsNamespace + `\` + i.Name
}

// MethodsStub returns the stub holding the methods an interface requires.
func MethodsStub(name string) string {
	return "directives/" + Snake(name) + ".stub"
}

// ImportsStub returns the stub holding the imports those methods need.
func ImportsStub(name string) string {
	return "directives/" + Snake(name) + "_imports.stub"
}
