package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fnbridge/fnbridge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local harness HTTP server",
	Long: `Start an HTTP server exposing the bridge pipeline. POST an event
document to /invoke (optionally with ?type=sqs|sns|kinesis|s3|apigw|apigw2
to declare the input family) and receive the encoded response.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		return server.Run(cmd.Context(), p.cfg, p.bridge, p.handler, p.logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
