package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"finitefield.org/dashpro-admin/internal/admin/demo"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/page"
	"finitefield.org/dashpro-admin/internal/admin/preferences"
	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

func addRender(topLevel *cobra.Command, opts *globalOptions) {
	cmd := &cobra.Command{
		Use:       "render <page>",
		Short:     "Print a console page as HTML using the stored preferences.",
		ValidArgs: page.Names,
		Example: `
dashpro render dashboard
dashpro --prefs-dir /tmp/prefs render orders > orders.html
`,
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.resolvePrefsDir()
			if err != nil {
				return err
			}
			catalog, err := i18n.LoadCatalog()
			if err != nil {
				return err
			}
			return renderPage(cmd.Context(), cmd.OutOrStdout(), catalog, preferences.NewDiskStore(dir), args[0])
		},
	}
	topLevel.AddCommand(cmd)
}

func renderPage(ctx context.Context, w io.Writer, catalog *i18n.Catalog, store preferences.Store, name string) error {
	prefs, err := preferences.Open(ctx, store)
	if err != nil {
		return err
	}
	factory := &page.Factory{
		Localizer: i18n.NewLocalizer(catalog, nil),
		Demo:      demo.NewStaticService(),
		Charts:    chart.NewGoChartRenderer(),
	}
	p, err := factory.New(ctx, name, prefs, page.RenderOptions{})
	if err != nil {
		return err
	}
	defer p.Close()

	out, err := p.HTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
