// Package config manages user-level settings stored at ~/.lhgen/config.yaml.
// It provides functions to load, read, and write keys such as no_color and
// stubs_path, and resolves the directories the CLI writes its own state to.
package config
