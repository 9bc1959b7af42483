package main

import (
	"github.com/jonathan/resume-pdfs/internal/observability"
	"github.com/jonathan/resume-pdfs/internal/rendering"
	"github.com/jonathan/resume-pdfs/internal/workspace"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the LaTeX templates a record can select",
		Long:  "List the LaTeX templates a record can select and flag those whose inputs or fonts are missing from the public directory.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			list := rendering.Templates()
			infos := make([]observability.TemplateInfo, 0, len(list))
			for _, t := range list {
				assets := append(append([]string(nil), t.Options.Inputs...), t.Options.Fonts...)
				infos = append(infos, observability.TemplateInfo{
					ID:      t.ID,
					Name:    t.Name,
					Options: t.Options,
					Missing: workspace.MissingAssets(a.cfg.PublicDir, assets...),
				})
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(infos)
		},
	}
}
