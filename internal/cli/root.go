package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/lhgen-dev/lhgen/internal/branding"
	"github.com/lhgen-dev/lhgen/internal/config"
	"github.com/lhgen-dev/lhgen/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectDir string
	noColor    bool
	debug      bool

	logCleanup func() error
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates Lighthouse GraphQL classes (directives, validators, scalars,
resolvers, unions and interfaces) from stubs, placing each file where the
project's namespace settings and PSR-4 autoloading expect it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		if noColor || config.GetBool(config.KeyNoColor) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}

		// A log file that cannot be opened is not worth failing a command over.
		cleanup, err := logger.Setup(logger.Config{
			Dir:   config.LogDir(),
			Level: config.Get(config.KeyLogLevel),
			Debug: debug,
		})
		if err == nil {
			logCleanup = cleanup
		}
		logger.L().Debug("command.start", "command", cmd.CommandPath(), "args", args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", "", "Project directory (default: search upward from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to the log file")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		logger.L().Error("command.failed", "error", err)
		color.New(color.FgRed).Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}

	if logCleanup != nil {
		_ = logCleanup()
		logCleanup = nil
	}
	return err
}
