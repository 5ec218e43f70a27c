package main

import (
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/app"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var standalone bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background workers",
		RunE: func(_ *cobra.Command, _ []string) error {
			if standalone {
				return app.NewStandaloneMixbyApp().Run()
			}
			return app.NewMixbyApp().Run()
		},
	}
	cmd.Flags().BoolVar(&standalone, "standalone", false, "use the in-memory vector index and skip Vault, Postgres and Pub/Sub")
	return cmd
}
