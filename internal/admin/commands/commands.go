// Package commands builds the dashpro command line: the console server and
// the operator tools around the message catalog and stored preferences.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"finitefield.org/dashpro-admin/internal/admin/config"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	prefsDir string
}

// New returns the root command.
func New() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "dashpro",
		Short:         "DashPro admin console.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.prefsDir, "prefs-dir", "", "directory of the stored CLI preferences (defaults to DASHPRO_PREFS_DIR)")

	AddCommands(cmd, opts)
	return cmd
}

// AddCommands attaches every subcommand to topLevel.
func AddCommands(topLevel *cobra.Command, opts *globalOptions) {
	addServe(topLevel)
	addCatalog(topLevel)
	addPrefs(topLevel, opts)
	addRender(topLevel, opts)
}

// resolvePrefsDir prefers the flag over the environment.
func (o *globalOptions) resolvePrefsDir() (string, error) {
	if o.prefsDir != "" {
		return o.prefsDir, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.PrefsDir, nil
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
