package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/preferences"
	"finitefield.org/dashpro-admin/internal/admin/theme"
)

var prefKeys = []string{preferences.KeyLanguage, preferences.KeyPrimaryColor}

func addPrefs(topLevel *cobra.Command, opts *globalOptions) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or write the stored CLI preferences.",
		Long:  "Read or write the preferences used by render. They live on disk, one file per key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the stored preferences with defaults applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.resolvePrefsDir()
			if err != nil {
				return err
			}
			return printPrefs(cmd.Context(), cmd.OutOrStdout(), preferences.NewDiskStore(dir))
		},
	}

	set := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Store one preference.",
		ValidArgs: prefKeys,
		Example: `
dashpro prefs set language id
dashpro prefs set primaryColor "#E53E3E"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.resolvePrefsDir()
			if err != nil {
				return err
			}
			catalog, err := i18n.LoadCatalog()
			if err != nil {
				return err
			}
			return setPref(cmd.Context(), preferences.NewDiskStore(dir), catalog, args[0], args[1])
		},
	}

	cmd.AddCommand(get, set)
	topLevel.AddCommand(cmd)
}

func printPrefs(ctx context.Context, w io.Writer, store *preferences.DiskStore) error {
	active, err := preferences.Open(ctx, store)
	if err != nil {
		return err
	}
	snap := active.Snapshot()
	stored := make(map[string]bool)
	for _, key := range store.Keys(ctx) {
		stored[key] = true
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Key"), bold("Value"), bold("Stored"))
	for _, key := range prefKeys {
		value := snap.Language
		if key == preferences.KeyPrimaryColor {
			value = snap.PrimaryColor
		}
		tbl.AddRow(key, value, fmt.Sprint(stored[key]))
	}
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}

// setPref validates value the way the console does before storing it.
// Unsupported languages store the default language.
func setPref(ctx context.Context, store preferences.Store, catalog *i18n.Catalog, key, value string) error {
	active, err := preferences.Open(ctx, store)
	if err != nil {
		return err
	}
	switch key {
	case preferences.KeyLanguage:
		return active.SetLanguage(ctx, catalog.Resolve(value))
	case preferences.KeyPrimaryColor:
		color, err := theme.Validate(value)
		if err != nil {
			return err
		}
		return active.SetPrimaryColor(ctx, color)
	default:
		return fmt.Errorf("unknown preference %q (want one of %v)", key, prefKeys)
	}
}
