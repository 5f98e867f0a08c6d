package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/workspace-manager/internal/config"
)

var version = "dev"

// rootFlags holds the flag values of one command tree.
type rootFlags struct {
	opts       config.Options
	configFile string
	dryRun     bool
	jsonOutput bool
	verbose    bool
	quiet      bool
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// NewRootCmd builds the workspace-manager command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "workspace-manager",
		Version: version,
		Short:   "VS Code workspace manager that creates workspace entries for folders",
		Long: `workspace-manager writes <name>.code-workspace in the current directory with
one folder entry per subdirectory of the scan path.

Folders are rebuilt on every run. Other sections of an existing workspace
file (settings, launch, extensions, ...) are kept as they are, and an
"Update Workspace" task is added so the file can be refreshed from the editor.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), logLevel(flags.verbose, flags.quiet)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetHelpFunc(customHelpFunc)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.opts.ScanPath, config.FlagPath, "p", config.DefaultScanPath,
		"Directory to scan for workspace folders")
	pf.BoolVarP(&flags.opts.ExcludeCurrent, config.FlagExcludeCurrent, "e", false,
		"Exclude current directory from workspace (default: include)")
	pf.StringVarP(&flags.opts.Name, config.FlagName, "n", "",
		"Custom name for the workspace file (without .code-workspace extension)")
	pf.BoolVarP(&flags.opts.UpdateTask, config.FlagUpdateTask, "u", false,
		"Update workspace task even if file exists")
	pf.BoolVar(&flags.opts.Strict, config.FlagStrict, false,
		"Fail instead of starting over when the existing workspace file cannot be parsed")
	pf.StringVar(&flags.configFile, "config", "",
		"Config file (default: "+config.DefaultConfigFile+" in the current directory, if present)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Only log errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the workspace file instead of writing it")
	rootCmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Output the run result in JSON format")

	rootCmd.AddCommand(newWatchCmd(flags))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the workspace-manager version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	})

	return rootCmd
}

// customHelpFunc colors the section titles of the help output
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(headerColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	hasCommands := false
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		if !hasCommands {
			help.WriteString(headerColor.Sprint("Commands:"))
			help.WriteString("\n")
			hasCommands = true
		}
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}
	if hasCommands {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		help.WriteString(headerColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if hasCommands {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	return formatError(err)
}
