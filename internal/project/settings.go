package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lhgen-dev/lhgen/internal/branding"
	"github.com/spf13/viper"
)

// Namespace setting keys, matching the keys of Lighthouse's
// config/lighthouse.php "namespaces" section.
const (
	NSDirectives    = "directives"
	NSValidators    = "validators"
	NSScalars       = "scalars"
	NSQueries       = "queries"
	NSMutations     = "mutations"
	NSSubscriptions = "subscriptions"
	NSUnions        = "unions"
	NSInterfaces    = "interfaces"
)

// DefaultStubsPath is where published stubs live relative to the project root.
const DefaultStubsPath = "stubs/lighthouse"

// DefaultNamespaces mirrors the defaults Lighthouse ships in its config.
var DefaultNamespaces = map[string][]string{
	NSDirectives:    {`App\GraphQL\Directives`},
	NSValidators:    {`App\GraphQL\Validators`},
	NSScalars:       {`App\GraphQL\Scalars`},
	NSQueries:       {`App\GraphQL\Queries`},
	NSMutations:     {`App\GraphQL\Mutations`},
	NSSubscriptions: {`App\GraphQL\Subscriptions`},
	NSUnions:        {`App\GraphQL\Unions`},
	NSInterfaces:    {`App\GraphQL\Interfaces`},
}

// settingsFiles are tried in order; the first one present is read.
var settingsFiles = []string{"lighthouse.yaml", "lighthouse.yml", ".lhgen.yaml"}

// Settings holds the project-level generator settings.
type Settings struct {
	Namespaces        map[string][]string
	StubsPath         string
	LighthouseVersion string
}

// NamespaceKeys returns the known namespace keys in sorted order.
func NamespaceKeys() []string {
	keys := make([]string, 0, len(DefaultNamespaces))
	for k := range DefaultNamespaces {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// findSettingsFile returns the first settings file present in root, or "".
func findSettingsFile(root string) string {
	for _, name := range settingsFiles {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadSettings reads the settings file (if any) through a dedicated Viper
// instance layered over the defaults and LHGEN_* environment variables.
func loadSettings(path string) (Settings, error) {
	v := viper.New()
	for key, ns := range DefaultNamespaces {
		v.SetDefault("namespaces."+key, ns)
	}
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	s := Settings{
		Namespaces:        make(map[string][]string),
		StubsPath:         v.GetString("stubs.path"),
		LighthouseVersion: v.GetString("lighthouse_version"),
	}
	for _, key := range NamespaceKeys() {
		s.Namespaces[key] = v.GetStringSlice("namespaces." + key)
	}

	return s, nil
}
