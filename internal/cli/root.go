package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Shan319/number-dna-analyze/internal/infra/fsworkspace"
	"github.com/Shan319/number-dna-analyze/internal/infra/workspacefinder"
	"github.com/Shan319/number-dna-analyze/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	workspace string
	debug     bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "numdna",
		Short:        "Digit-pair numerology analyzer",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, true)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(tui.Deps{
				Workspace:            ws,
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               ws.Logger(),
				Debug:                g.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .numdna/logs/numdna.log")

	cmd.AddCommand(
		analyzeCmd(g),
		batchCmd(g),
		fieldsCmd(),
		historyCmd(g),
		initCmd(),
		serveCmd(g),
		versionCmd(),
	)
	return cmd
}
