package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Shan319/number-dna-analyze/internal/api"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(g, true)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr == "" {
				addr = ws.Config.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.New(api.Deps{
				Analyze:  ws.Analyze,
				History:  ws.History,
				Defaults: ws.Config.GenerateRequest(),
				Save:     ws.Config.History.Enabled,
				Logger:   ws.Logger(),
			})

			fmt.Printf("Listening on http://%s\n", addr)
			return api.Serve(ctx, srv, addr, ws.Logger())
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from numdna.yaml)")
	return c
}

