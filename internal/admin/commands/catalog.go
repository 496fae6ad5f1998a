package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"finitefield.org/dashpro-admin/internal/admin/i18n"
)

// ErrCatalogIncomplete is returned by catalog check when a language lacks keys.
var ErrCatalogIncomplete = errors.New("catalog: languages are missing keys")

func addCatalog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the message catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var verbose bool
	check := &cobra.Command{
		Use:   "check",
		Short: "Report keys each language is missing or adds over English.",
		Example: `
dashpro catalog check
dashpro catalog check --verbose
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := i18n.LoadCatalog()
			if err != nil {
				return err
			}
			return checkCatalog(cmd.OutOrStdout(), catalog, verbose)
		},
	}
	check.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every missing and extra key")

	cmd.AddCommand(check)
	topLevel.AddCommand(cmd)
}

func checkCatalog(w io.Writer, catalog *i18n.Catalog, verbose bool) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow(bold("Language"), bold("Keys"), bold("Missing"), bold("Extra"))

	incomplete := false
	type gap struct {
		lang           string
		missing, extra []string
	}
	var gaps []gap
	for _, lang := range catalog.Languages() {
		missing := catalog.MissingKeys(lang)
		extra := catalog.ExtraKeys(lang)
		tbl.AddRow(lang, strconv.Itoa(len(catalog.Keys(lang))), strconv.Itoa(len(missing)), strconv.Itoa(len(extra)))
		if len(missing) > 0 {
			incomplete = true
		}
		if len(missing) > 0 || len(extra) > 0 {
			gaps = append(gaps, gap{lang, missing, extra})
		}
	}
	_, _ = fmt.Fprintln(w, tbl)

	if verbose && len(gaps) > 0 {
		detail := uitable.New()
		detail.Separator = "  "
		detail.MaxColWidth = 100
		detail.Wrap = true
		detail.AddRow(bold("Language"), bold("Kind"), bold("Keys"))
		for _, g := range gaps {
			if len(g.missing) > 0 {
				detail.AddRow(g.lang, "missing", strings.Join(g.missing, ", "))
			}
			if len(g.extra) > 0 {
				detail.AddRow(g.lang, "extra", strings.Join(g.extra, ", "))
			}
		}
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, detail)
	}

	if incomplete {
		return ErrCatalogIncomplete
	}
	return nil
}
