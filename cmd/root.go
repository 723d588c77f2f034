package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/CosmoTheDev/discord-pr-notify/internal/actions"
	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool

	// manifest is parsed from the embedded action.yml in Execute.
	manifest *config.Manifest
	action   = githubactions.New()
)

// rootCmd sends the notification when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "discord-pr-notify",
	Short: "Post pull request events to Discord webhooks",
	Long: `discord-pr-notify posts a Discord embed describing the pull request
event that triggered the current GitHub Actions run.

Inputs are read from INPUT_<NAME> environment variables, so the binary can be
used directly as a Docker action. Every input is also available as a flag.

  discord-pr-notify                  Send the notification
  discord-pr-notify preview          Print the message without sending it
  discord-pr-notify config inputs    List the supported inputs`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNotify,
}

// Execute parses the action manifest, runs the command tree and returns the
// process exit code.
func Execute(ctx context.Context, actionManifest []byte) int {
	m, err := config.ParseManifest(actionManifest)
	if err != nil {
		reportFailure(err)
		return 1
	}
	manifest = m
	registerInputFlags(rootCmd, m)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportFailure(err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"optional JSON, YAML or TOML file keyed by input name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")

	rootCmd.Version = Version
	rootCmd.AddCommand(previewCmd, configCmd)
}

// registerInputFlags adds one persistent flag per manifest input. Inputs
// whose default is a boolean become boolean flags.
func registerInputFlags(c *cobra.Command, m *config.Manifest) {
	flags := c.PersistentFlags()
	for _, in := range m.Inputs {
		name := config.FlagName(in.Name)
		if flags.Lookup(name) != nil {
			continue
		}
		if def, err := strconv.ParseBool(in.Default); err == nil {
			flags.Bool(name, def, in.Description)
			continue
		}
		flags.String(name, in.Default, in.Description)
	}
}

func initLogging() {
	if actions.Enabled(os.Getenv) {
		// The runner decides whether ::debug:: lines are shown.
		slog.SetDefault(slog.New(actions.NewHandler(action, nil)))
		return
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("Verbose logging enabled")
}

// reportFailure marks the step failed. Inside Actions this is an ::error::
// annotation, elsewhere a line on the root command's error stream.
func reportFailure(err error) {
	if actions.Enabled(os.Getenv) {
		action.Errorf("%s", err.Error())
		return
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
}
