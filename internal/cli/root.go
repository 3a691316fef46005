package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cedi-search/addtarget/internal/branding"
	"github.com/cedi-search/addtarget/internal/config"
	"github.com/cedi-search/addtarget/internal/logging"
	"github.com/cedi-search/addtarget/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Env is the process state a run depends on.
type Env struct {
	Cwd        string
	Stdout     io.Writer
	Stderr     io.Writer
	Fs         afero.Fs
	ConfigPath string // empty skips the config file; env overrides still apply
}

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Execute runs the CLI against the real process and returns the exit code.
func Execute(version, commit, date string) int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: resolving working directory: %v\n", err)
		return ExitFilesystem
	}

	env := Env{
		Cwd:        cwd,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Fs:         afero.NewOsFs(),
		ConfigPath: config.FilePath(),
	}
	return Run(os.Args[1:], env, BuildInfo{Version: version, Commit: commit, Date: date})
}

// Run executes the root command with args (program name excluded) and
// returns the process exit code.
func Run(args []string, env Env, info BuildInfo) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(env, info)
	cmd.SetArgs(args)
	return report(env.Stdout, env.Stderr, cmd.Execute())
}

func newRootCmd(env Env, info BuildInfo) *cobra.Command {
	// A plain flag rather than cobra's Version, which would skip Args.
	var showVersion bool

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <target-name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates <target-name>/<target-name>.go in the current directory,
a crawler target skeleton with a constructor and no-op Index and Sniff methods.
The directory is created when missing; an existing file is overwritten.

Example:
  ` + branding.CLIName() + ` jumia`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion && len(args) == 0 {
				return nil
			}
			if showVersion || len(args) != 1 {
				return newUsageError(errors.New(msgArgCount))
			}
			if err := scaffold.ValidateTarget(args[0]); err != nil {
				return newUsageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
					cmd.Name(), info.Version, info.Commit, info.Date)
				return nil
			}
			return runScaffold(cmd, env, args[0])
		},
	}

	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	cmd.Flags().BoolVar(&showVersion, "version", false, "Print version information and exit")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newUsageError(err)
	})
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func runScaffold(cmd *cobra.Command, env Env, target string) error {
	cfg, err := config.Load(env.Fs, env.ConfigPath)
	if err != nil {
		return err
	}
	logger := logging.New(env.Stderr, cfg.LogLevel, cfg.LogFormat)

	result, err := scaffold.NewGenerator(env.Fs, logger).Generate(env.Cwd, target)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), target, result)
	return nil
}

func printResult(w io.Writer, target string, result *scaffold.Result) {
	fmt.Fprintf(w, "Created target %s at %s/\n", target, target)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Implement Sniff and Index in %s/%s%s\n", target, target, scaffold.Extension)
	fmt.Fprintf(w, "  2. Add %s to the engine's target list\n", scaffold.Title(target))
}
