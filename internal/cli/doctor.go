package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lhgen-dev/lhgen/internal/config"
	"github.com/lhgen-dev/lhgen/internal/logger"
	"github.com/lhgen-dev/lhgen/internal/project"
	"github.com/lhgen-dev/lhgen/internal/stubs"
	"github.com/spf13/cobra"
)

var errDoctorFailed = errors.New("doctor found problems")

const (
	statusOK   = "OK"
	statusWarn = "WARN"
	statusFail = "FAIL"
	statusInfo = "INFO"
)

type check struct {
	name   string
	status string
	detail string
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the project is set up for code generation",
	Long: `Run diagnostic checks on the current Laravel project: composer.json
autoloading, the installed Lighthouse version, the settings file and the
namespaces every generator writes to.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := projectDir
		if start == "" {
			start = "."
		}

		checks := runChecks(start)

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Check", "Status", "Detail"})
		failed := false
		for _, c := range checks {
			t.AppendRow(table.Row{c.name, colorStatus(c.status), c.detail})
			if c.status == statusFail {
				failed = true
			}
		}
		t.Render()

		if failed {
			return errDoctorFailed
		}
		return nil
	},
}

func runChecks(start string) []check {
	var checks []check

	root, err := project.Find(start)
	if err != nil {
		return append(checks, check{"Project", statusFail, err.Error()})
	}
	checks = append(checks, check{"Project", statusOK, root})

	p, err := project.Load(root)
	if err != nil {
		return append(checks, check{"Composer autoload", statusFail, err.Error()})
	}
	checks = append(checks, check{"Composer autoload", statusOK, "root namespace " + p.RootNamespace()})

	checks = append(checks, settingsCheck(p))
	checks = append(checks, versionCheck(p))

	for _, key := range project.NamespaceKeys() {
		checks = append(checks, namespaceCheck(p, key))
	}

	store := stubs.New(
		stubs.WithOverrideDir(p.StubsDir(config.Get(config.KeyStubsPath))),
		stubs.WithSet(stubs.SetFor(p.Version)),
	)
	checks = append(checks, stubsCheck(p, store))

	if err := logger.IsReady(); err != nil {
		checks = append(checks, check{"Log file", statusWarn, err.Error()})
	} else {
		checks = append(checks, check{"Log file", statusOK, logger.Path()})
	}

	return checks
}

func settingsCheck(p *project.Project) check {
	if p.SettingsFile == "" {
		return check{"Settings", statusInfo, "no settings file, using defaults"}
	}
	name := filepath.Base(p.SettingsFile)

	res, err := project.ValidateSettingsFile(p.SettingsFile)
	if err != nil {
		return check{"Settings", statusFail, err.Error()}
	}
	if !res.Valid {
		issues := make([]string, 0, len(res.Issues))
		for _, issue := range res.Issues {
			issues = append(issues, issue.String())
		}
		return check{"Settings", statusFail, name + ": " + strings.Join(issues, "; ")}
	}
	return check{"Settings", statusOK, name}
}

func versionCheck(p *project.Project) check {
	switch {
	case p.VersionString == "":
		return check{"Lighthouse", statusWarn, "version not detected (composer.lock or lighthouse_version)"}
	case p.Version == nil:
		return check{"Lighthouse", statusWarn, strings.Join(p.Warnings, "; ")}
	case !project.IsSupported(p.Version):
		return check{"Lighthouse", statusFail, fmt.Sprintf("%s is not supported (requires %s)", p.VersionString, project.SupportedConstraint)}
	}
	return check{"Lighthouse", statusOK, p.VersionString}
}

func namespaceCheck(p *project.Project, key string) check {
	name := "namespaces." + key

	ns, err := p.DefaultNamespace(key)
	if err != nil {
		return check{name, statusFail, err.Error()}
	}
	path, err := p.ClassPath(ns + `\Example`)
	if err != nil {
		return check{name, statusFail, ns + " is not covered by composer autoload"}
	}
	rel, err := filepath.Rel(p.Root, filepath.Dir(path))
	if err != nil {
		rel = filepath.Dir(path)
	}
	return check{name, statusOK, ns + " -> " + filepath.ToSlash(rel)}
}

func stubsCheck(p *project.Project, store *stubs.Store) check {
	set := store.Set()
	if set == "" {
		set = "common"
	}

	dir := store.OverrideDir()
	rel, err := filepath.Rel(p.Root, dir)
	if err != nil {
		rel = dir
	}
	if _, err := os.Stat(dir); err == nil {
		return check{"Stubs", statusOK, fmt.Sprintf("set %s, overrides in %s", set, filepath.ToSlash(rel))}
	}
	return check{"Stubs", statusOK, "set " + set}
}

func colorStatus(status string) string {
	switch status {
	case statusOK:
		return color.GreenString(status)
	case statusWarn:
		return color.YellowString(status)
	case statusFail:
		return color.RedString(status)
	}
	return status
}
