package scaffold

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// identPattern matches a PHP label; bytes 0x80-0xff cover any UTF-8 letter.
var identPattern = regexp.MustCompile(`^[A-Za-z_\x80-\x{10FFFF}][A-Za-z0-9_\x80-\x{10FFFF}]*$`)

// UpperFirst upper-cases the first letter of s and leaves the rest alone.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first letter of s and leaves the rest alone.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Snake converts a StudlyCase identifier to snake_case, inserting an
// underscore before every upper-case letter that is not the first rune:
// "TypeExtensionManipulator" becomes "type_extension_manipulator".
func Snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return lower.String(b.String())
}

// reservedNames are PHP keywords and magic constants that cannot be class names.
var reservedNames = map[string]bool{}

func init() {
	for _, n := range []string{
		"__halt_compiler", "abstract", "and", "array", "as", "break", "callable",
		"case", "catch", "class", "clone", "const", "continue", "declare",
		"default", "die", "do", "echo", "else", "elseif", "empty", "enddeclare",
		"endfor", "endforeach", "endif", "endswitch", "endwhile", "enum", "eval",
		"exit", "extends", "false", "final", "finally", "fn", "for", "foreach",
		"function", "global", "goto", "if", "implements", "include",
		"include_once", "instanceof", "insteadof", "interface", "isset", "list",
		"match", "namespace", "new", "or", "parent", "print", "private",
		"protected", "public", "readonly", "require", "require_once", "return",
		"self", "static", "switch", "throw", "trait", "true", "try", "unset",
		"use", "var", "while", "xor", "yield",
		"__class__", "__dir__", "__file__", "__function__", "__line__",
		"__method__", "__namespace__", "__trait__",
	} {
		reservedNames[n] = true
	}
}

// IsReserved reports whether name is a PHP reserved word, ignoring case.
func IsReserved(name string) bool {
	return reservedNames[lower.String(name)]
}

// NameInput normalizes the name argument for a kind: trims it, accepts "/"
// as a namespace separator, upper-cases the first letter of every segment
// and appends the kind's suffix unless the name already ends with it.
func NameInput(k Kind, name string) string {
	name = strings.Trim(strings.TrimSpace(name), `/\`)
	if name == "" {
		return ""
	}

	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
	for i, seg := range segments {
		segments[i] = UpperFirst(strings.TrimSpace(seg))
	}

	last := segments[len(segments)-1]
	if k.Suffix != "" && !strings.HasSuffix(last, k.Suffix) {
		segments[len(segments)-1] = last + k.Suffix
	}

	return strings.Join(segments, `\`)
}

// invalidSegment returns the first backslash-separated segment of class
// that is not a PHP identifier, or "" when all of them are.
func invalidSegment(class string) string {
	for _, seg := range strings.Split(class, `\`) {
		if !identPattern.MatchString(seg) {
			return seg
		}
	}
	return ""
}

// namespaceOf returns everything before the last backslash of a class name.
func namespaceOf(class string) string {
	i := strings.LastIndex(class, `\`)
	if i < 0 {
		return ""
	}
	return class[:i]
}

// shortName returns the class name without its namespace.
func shortName(class string) string {
	return class[strings.LastIndex(class, `\`)+1:]
}
