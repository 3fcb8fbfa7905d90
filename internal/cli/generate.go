package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lhgen-dev/lhgen/internal/config"
	"github.com/lhgen-dev/lhgen/internal/logger"
	"github.com/lhgen-dev/lhgen/internal/project"
	"github.com/lhgen-dev/lhgen/internal/prompt"
	"github.com/lhgen-dev/lhgen/internal/scaffold"
	"github.com/lhgen-dev/lhgen/internal/stubs"
	"github.com/spf13/cobra"
)

// Flags shared by every generator command.
var (
	genForce         bool
	genDryRun        bool
	genNoInteraction bool
	genFull          bool
)

// Directive-only flags.
var (
	directiveType      bool
	directiveField     bool
	directiveArgument  bool
	directiveValidator bool
	directiveList      bool
	directiveImplement string
)

var directiveCmd = &cobra.Command{
	Use:   "directive <name>",
	Short: "Create a class for a directive",
	Long: `Create a class for a custom Lighthouse directive.

For each of --type, --field and --argument you are asked which of the
matching interfaces the directive should implement; their use statements,
implements entries and method stubs are added to the class. --validator adds
the ArgumentValidation interface without asking.

Examples:
  lhgen directive upperCase --field
  lhgen directive trim --argument --implements ArgTransformerDirective
  lhgen directive admin/can --field --type -n`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, scaffold.KindDirective, args[0])
	},
}

func init() {
	addGeneratorFlags(directiveCmd)
	directiveCmd.Flags().BoolVar(&directiveType, "type", false, "Create a directive that can be applied to types")
	directiveCmd.Flags().BoolVar(&directiveField, "field", false, "Create a directive that can be applied to fields")
	directiveCmd.Flags().BoolVar(&directiveArgument, "argument", false, "Create a directive that can be applied to arguments")
	directiveCmd.Flags().BoolVar(&directiveValidator, "validator", false, "Create a directive that validates arguments")
	directiveCmd.Flags().BoolVar(&directiveList, "list", false, "Answer yes to the argument list question")
	directiveCmd.Flags().StringVar(&directiveImplement, "implements", "", "Comma-separated interfaces to implement without asking (others are declined)")
	rootCmd.AddCommand(directiveCmd)

	for _, k := range scaffold.Kinds {
		if k.Name == scaffold.KindDirective.Name {
			continue
		}
		rootCmd.AddCommand(newKindCmd(k))
	}
}

// newKindCmd builds the command for a kind that needs no questions.
func newKindCmd(k scaffold.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.Name + " <name>",
		Short: fmt.Sprintf("Create a class for a GraphQL %s", strings.ToLower(k.Label)),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, k, args[0])
		},
	}
	addGeneratorFlags(cmd)
	if k.FullStub != "" {
		cmd.Flags().BoolVar(&genFull, "full", false, "Include the seldom needed resolver arguments $context and $resolveInfo")
	}
	return cmd
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&genForce, "force", "f", false, "Overwrite the class if it already exists")
	cmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Print the class (or a diff against the existing file) without writing")
	cmd.Flags().BoolVarP(&genNoInteraction, "no-interaction", "n", false, "Do not ask any questions; every answer is no")
}

func runGenerate(cmd *cobra.Command, k scaffold.Kind, name string) error {
	p, store, err := openProject()
	if err != nil {
		return err
	}
	for _, w := range p.Warnings {
		printWarning(cmd.ErrOrStderr(), w)
	}

	confirm, err := buildConfirmer(cmd)
	if err != nil {
		return err
	}
	recorder := &prompt.Recorder{Inner: confirm}

	g := &scaffold.Generator{
		Layout:  p,
		Stubs:   store,
		Confirm: recorder,
		Logger:  logger.L(),
	}

	req := scaffold.Request{
		Kind:   k,
		Name:   name,
		Full:   genFull,
		Force:  genForce,
		DryRun: genDryRun,
	}
	if k.Name == scaffold.KindDirective.Name {
		req.Directive = scaffold.DirectiveOptions{
			Type:      directiveType,
			Field:     directiveField,
			Argument:  directiveArgument,
			Validator: directiveValidator,
		}
	}

	result, err := g.Generate(req)
	if err != nil {
		return err
	}

	logger.L().Debug("prompt.answers", "answers", recorder.Answers)
	printResult(cmd.OutOrStdout(), p.Root, result, genDryRun)
	return nil
}

// openProject loads the project and the stub store that goes with it.
func openProject() (*project.Project, *stubs.Store, error) {
	start := projectDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving working directory: %w", err)
		}
		start = wd
	}

	p, err := project.Open(start)
	if err != nil {
		return nil, nil, err
	}

	store := stubs.New(
		stubs.WithOverrideDir(p.StubsDir(config.Get(config.KeyStubsPath))),
		stubs.WithSet(stubs.SetFor(p.Version)),
	)
	logger.L().Debug("project.opened", "root", p.Root, "version", p.VersionString, "stub_set", store.Set())

	return p, store, nil
}

// buildConfirmer picks how questions get answered: --implements presets the
// named interfaces and declines the rest, --no-interaction takes every
// default, otherwise questions go to the terminal.
func buildConfirmer(cmd *cobra.Command) (prompt.Confirmer, error) {
	var keys []string
	for _, name := range splitList(directiveImplement) {
		i, ok := scaffold.LookupInterface(name)
		if !ok {
			return nil, fmt.Errorf("unknown interface %q (see '%s interfaces')", name, rootCmd.Name())
		}
		keys = append(keys, i.Name)
	}

	var base prompt.Confirmer = prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	if genNoInteraction || len(keys) > 0 {
		base = prompt.Defaults{}
	}

	if directiveList {
		keys = append(keys, scaffold.ArgDirectiveForArray)
	}
	if len(keys) == 0 {
		return base, nil
	}
	return prompt.NewPreset(base, keys...), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
