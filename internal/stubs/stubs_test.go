package stubs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestSetFor(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"5.71.0", ""},
		{"6.0.0", "v6"},
		{"6.36.1", "v6"},
		{"6.0.0-beta.1", "v6"},
		{"4.18.0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			v := semver.MustParse(tt.version)
			if got := SetFor(v); got != tt.want {
				t.Errorf("SetFor(%s) = %q, want %q", tt.version, got, tt.want)
			}
		})
	}

	if got := SetFor(nil); got != "" {
		t.Errorf("SetFor(nil) = %q, want empty", got)
	}
}

func TestReadCommonAndVersionSet(t *testing.T) {
	common := New()
	data, err := common.Read("directives/field_middleware.stub")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !strings.Contains(string(data), "Closure $next): FieldValue") {
		t.Errorf("common field middleware stub has unexpected content:\n%s", data)
	}

	v6 := New(WithSet("v6"))
	data, err = v6.Read("directives/field_middleware.stub")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !strings.Contains(string(data), "handleField(FieldValue $fieldValue): void") {
		t.Errorf("v6 field middleware stub has unexpected content:\n%s", data)
	}

	// Files the version set does not override fall through to common.
	if _, err := v6.Read("directives/arg_manipulator.stub"); err != nil {
		t.Errorf("fallthrough Read() error: %v", err)
	}
	if src, _ := v6.Source("directives/arg_manipulator.stub"); src != "common" {
		t.Errorf("Source() = %q, want %q", src, "common")
	}
	if src, _ := v6.Source("directives/field_middleware.stub"); src != "v6" {
		t.Errorf("Source() = %q, want %q", src, "v6")
	}
}

func TestReadMissing(t *testing.T) {
	_, err := New().Read("directives/no_such_interface.stub")
	if !errors.Is(err, ErrStubNotFound) {
		t.Fatalf("expected ErrStubNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "no_such_interface.stub") {
		t.Errorf("error should name the stub, got %v", err)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scalar.stub"), []byte("custom scalar"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(WithOverrideDir(dir))
	data, err := s.Read("scalar.stub")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if string(data) != "custom scalar" {
		t.Errorf("Read() = %q, want override content", data)
	}
	if src, _ := s.Source("scalar.stub"); src != "override" {
		t.Errorf("Source() = %q, want override", src)
	}

	// Stubs absent from the override dir come from the embedded set.
	if _, err := s.Read("union.stub"); err != nil {
		t.Errorf("Read(union.stub) error: %v", err)
	}
}

func TestListHasNoDuplicates(t *testing.T) {
	names, err := New(WithSet("v6")).List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate stub %q", n)
		}
		seen[n] = true
	}
	for _, want := range []string{"directive.stub", "validator.stub", "directives/field_resolver.stub"} {
		if !seen[want] {
			t.Errorf("List() missing %q", want)
		}
	}
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	s := New(WithSet("v6"))

	written, err := s.Publish(dir, false)
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	names, _ := s.List()
	if len(written) != len(names) {
		t.Errorf("Publish() wrote %d stubs, want %d", len(written), len(names))
	}

	data, err := os.ReadFile(filepath.Join(dir, "directives", "field_middleware.stub"))
	if err != nil {
		t.Fatalf("reading published stub: %v", err)
	}
	if !strings.Contains(string(data), "wrapResolver") {
		t.Error("published stub should come from the v6 set")
	}

	// A second publish without force leaves edited files alone.
	edited := filepath.Join(dir, "directive.stub")
	if err := os.WriteFile(edited, []byte("edited"), 0644); err != nil {
		t.Fatal(err)
	}
	written, err = s.Publish(dir, false)
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("expected nothing written, got %v", written)
	}
	if data, _ := os.ReadFile(edited); string(data) != "edited" {
		t.Error("publish without force overwrote an existing stub")
	}

	written, err = s.Publish(dir, true)
	if err != nil {
		t.Fatalf("Publish(force) error: %v", err)
	}
	if len(written) != len(names) {
		t.Errorf("Publish(force) wrote %d, want %d", len(written), len(names))
	}
}
