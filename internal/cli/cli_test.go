package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lhgen-dev/lhgen/internal/project"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newProject writes a minimal Laravel project and returns its root.
func newProject(t *testing.T, lighthouseVersion string) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "composer.json"), `{"autoload": {"psr-4": {"App\\": "app/"}}}`)
	if lighthouseVersion != "" {
		writeFile(t, filepath.Join(root, "composer.lock"),
			`{"packages": [{"name": "nuwave/lighthouse", "version": "`+lighthouseVersion+`"}]}`)
	}
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// resetFlags puts every flag back to its default so runs don't leak into
// each other through the package-level flag variables.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the CLI with stdin and returns everything written to
// stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LHGEN_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := Execute("1.2.3", "abc123", "2026-01-01")
	return out.String(), err
}

func TestDirectiveAsksQuestions(t *testing.T) {
	root := newProject(t, "")

	out, err := run(t, "yes\nno\nno\n", "directive", "upperCase", "--field", "--project", root)
	if err != nil {
		t.Fatalf("directive: %v\n%s", err, out)
	}

	for _, q := range []string{
		"Should the directive implement the FieldResolver interface?",
		"Should the directive implement the FieldMiddleware interface?",
		"Should the directive implement the FieldManipulator interface?",
		"Directive created successfully.",
		filepath.Join("app", "GraphQL", "Directives", "UpperCaseDirective.php"),
	} {
		if !strings.Contains(out, q) {
			t.Errorf("output missing %q:\n%s", q, out)
		}
	}

	content := readFile(t, filepath.Join(root, "app", "GraphQL", "Directives", "UpperCaseDirective.php"))
	for _, want := range []string{
		`namespace App\GraphQL\Directives;`,
		`use Nuwave\Lighthouse\Support\Contracts\FieldResolver;`,
		"final class UpperCaseDirective extends BaseDirective implements FieldResolver\n",
		"directive @upperCase on FIELD_DEFINITION",
		"public function resolveField(",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("generated class missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "{{") {
		t.Errorf("generated class has leftover placeholders:\n%s", content)
	}
}

func TestDirectiveImplementsFlag(t *testing.T) {
	root := newProject(t, "")

	out, err := run(t, "", "directive", "trim", "--argument", "--list",
		"--implements", "argtransformerdirective", "--project", root)
	if err != nil {
		t.Fatalf("directive: %v\n%s", err, out)
	}
	if strings.Contains(out, "Should the directive") {
		t.Errorf("--implements should not prompt:\n%s", out)
	}

	content := readFile(t, filepath.Join(root, "app", "GraphQL", "Directives", "TrimDirective.php"))
	want := "implements ArgDirectiveForArray, ArgTransformerDirective\n"
	if !strings.Contains(content, want) {
		t.Errorf("generated class missing %q:\n%s", want, content)
	}
	if !strings.Contains(content, "public function transform(") {
		t.Errorf("generated class missing transform():\n%s", content)
	}
}

func TestDirectiveNoInteraction(t *testing.T) {
	root := newProject(t, "")

	out, err := run(t, "", "directive", "plain", "--type", "--field", "-n", "--project", root)
	if err != nil {
		t.Fatalf("directive: %v\n%s", err, out)
	}

	content := readFile(t, filepath.Join(root, "app", "GraphQL", "Directives", "PlainDirective.php"))
	if !strings.Contains(content, "final class PlainDirective extends BaseDirective\n") {
		t.Errorf("expected no implements clause:\n%s", content)
	}
	if !strings.Contains(content, "directive @plain on OBJECT | FIELD_DEFINITION") {
		t.Errorf("expected both locations:\n%s", content)
	}
}

func TestDirectiveUnknownInterface(t *testing.T) {
	root := newProject(t, "")

	_, err := run(t, "", "directive", "foo", "--implements", "Nope", "--project", root)
	if err == nil || !strings.Contains(err.Error(), `unknown interface "Nope"`) {
		t.Fatalf("expected unknown interface error, got %v", err)
	}
}

func TestGenerateExistingFile(t *testing.T) {
	root := newProject(t, "")

	if _, err := run(t, "", "scalar", "Money", "--project", root); err != nil {
		t.Fatalf("first run: %v", err)
	}

	_, err := run(t, "", "scalar", "Money", "--project", root)
	if err == nil || !strings.Contains(err.Error(), "Scalar already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}

	out, err := run(t, "", "scalar", "Money", "--force", "--project", root)
	if err != nil {
		t.Fatalf("--force: %v", err)
	}
	if !strings.Contains(out, "Scalar created successfully.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestGenerateDryRun(t *testing.T) {
	root := newProject(t, "")

	out, err := run(t, "", "union", "SearchResult", "--dry-run", "--project", root)
	if err != nil {
		t.Fatalf("dry-run: %v", err)
	}
	if !strings.Contains(out, "final class SearchResult") {
		t.Errorf("dry-run should print the class:\n%s", out)
	}
	if strings.Contains(out, "created successfully") {
		t.Errorf("dry-run should not report creation:\n%s", out)
	}

	path := filepath.Join(root, "app", "GraphQL", "Unions", "SearchResult.php")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("dry-run wrote %s", path)
	}
}

func TestGenerateFullQuery(t *testing.T) {
	root := newProject(t, "")

	if _, err := run(t, "", "query", "LatestPosts", "--full", "--project", root); err != nil {
		t.Fatalf("query: %v", err)
	}

	content := readFile(t, filepath.Join(root, "app", "GraphQL", "Queries", "LatestPosts.php"))
	if !strings.Contains(content, "ResolveInfo $resolveInfo") {
		t.Errorf("--full should use the full stub:\n%s", content)
	}
}

func TestGenerateNoProject(t *testing.T) {
	_, err := run(t, "", "scalar", "Money", "--project", t.TempDir())
	if !errors.Is(err, project.ErrNoProject) {
		t.Fatalf("expected ErrNoProject, got %v", err)
	}
}

func TestInterfacesCommand(t *testing.T) {
	out, err := run(t, "", "interfaces")
	if err != nil {
		t.Fatalf("interfaces: %v", err)
	}
	for _, name := range []string{"TypeManipulator", "FieldResolver", "ArgDirectiveForArray", "ArgumentValidation"} {
		if !strings.Contains(out, name) {
			t.Errorf("interfaces output missing %s", name)
		}
	}

	out, err = run(t, "", "interfaces", "--group", "field")
	if err != nil {
		t.Fatalf("interfaces --group: %v", err)
	}
	if strings.Contains(out, "TypeManipulator") || !strings.Contains(out, "FieldMiddleware") {
		t.Errorf("--group field filtered wrong:\n%s", out)
	}

	if _, err := run(t, "", "interfaces", "--group", "bogus"); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestStubPublishAndList(t *testing.T) {
	root := newProject(t, "6.0.0")

	out, err := run(t, "", "stub:publish", "--project", root)
	if err != nil {
		t.Fatalf("stub:publish: %v", err)
	}
	if !strings.Contains(out, "Published") {
		t.Errorf("unexpected output:\n%s", out)
	}

	published := readFile(t, filepath.Join(root, "stubs", "lighthouse", "directives", "field_middleware.stub"))
	if !strings.Contains(published, "handleField") {
		t.Errorf("expected the v6 field_middleware stub, got:\n%s", published)
	}

	out, err = run(t, "", "stub:publish", "--project", root)
	if err != nil {
		t.Fatalf("second stub:publish: %v", err)
	}
	if !strings.Contains(out, "already published") {
		t.Errorf("second publish should skip existing files:\n%s", out)
	}

	out, err = run(t, "", "stub:list", "--project", root)
	if err != nil {
		t.Fatalf("stub:list: %v", err)
	}
	if !strings.Contains(out, "directive.stub") || !strings.Contains(out, "override") {
		t.Errorf("stub:list output unexpected:\n%s", out)
	}
}

func TestPublishedStubIsUsed(t *testing.T) {
	root := newProject(t, "")
	writeFile(t, filepath.Join(root, "stubs", "lighthouse", "scalar.stub"),
		"<?php\n\nnamespace {{ namespace }};\n\n// custom\nfinal class {{ class }} {}\n")

	if _, err := run(t, "", "scalar", "Date", "--project", root); err != nil {
		t.Fatalf("scalar: %v", err)
	}

	content := readFile(t, filepath.Join(root, "app", "GraphQL", "Scalars", "Date.php"))
	if !strings.Contains(content, "// custom") {
		t.Errorf("published stub was not used:\n%s", content)
	}
}

func TestDoctor(t *testing.T) {
	root := newProject(t, "v6.2.0")

	out, err := run(t, "", "doctor", "--project", root)
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	for _, want := range []string{"Composer autoload", "6.2.0", "namespaces.directives", "set v6"} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorReportsProblems(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		settings string
		want     string
	}{
		{"old lighthouse", "4.18.0", "", "not supported"},
		{"bad settings", "6.0.0", "namespaces:\n  resolvers: App\\Resolvers\n", "lighthouse.yaml"},
		{"empty namespace", "6.0.0", "namespaces:\n  directives: []\n", "a default namespace is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newProject(t, tt.version)
			if tt.settings != "" {
				writeFile(t, filepath.Join(root, "lighthouse.yaml"), tt.settings)
			}

			out, err := run(t, "", "doctor", "--project", root)
			if !errors.Is(err, errDoctorFailed) {
				t.Fatalf("expected errDoctorFailed, got %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("doctor output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}

	out, err = run(t, "", "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"commit": "abc123"`) {
		t.Errorf("version --json = %q", out)
	}
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()

	resetFlags(rootCmd)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("LHGEN_HOME", home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	rootCmd.SetArgs([]string{"config", "set", "log_level", "debug"})
	if err := Execute("dev", "", ""); err != nil {
		t.Fatalf("config set: %v", err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"config", "get", "log_level"})
	if err := Execute("dev", "", ""); err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out.String()) != "debug" {
		t.Errorf("config get = %q, want debug", out.String())
	}

	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" FieldResolver, ,FieldMiddleware ")
	if len(got) != 2 || got[0] != "FieldResolver" || got[1] != "FieldMiddleware" {
		t.Errorf("splitList() = %v", got)
	}
	if splitList("") != nil {
		t.Error("splitList(\"\") should be nil")
	}
}
