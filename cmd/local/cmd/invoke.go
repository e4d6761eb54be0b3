package cmd

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/fnbridge/fnbridge/internal/events"
)

var (
	invokeFile      string
	invokeEventType string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run one event document through the pipeline",
	Long: `Read an event document from a file, run it through
normalize/handle/encode, and print the encoded response to stdout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}

		payload, err := os.ReadFile(invokeFile)
		if err != nil {
			return fmt.Errorf("failed to read event file: %w", err)
		}

		var declared reflect.Type
		if invokeEventType != "" {
			family, ok := events.FamilyByName(invokeEventType)
			if !ok {
				return fmt.Errorf("no event family named %q", invokeEventType)
			}
			declared, _ = events.TypeOf(family)
		}

		ctx := cmd.Context()
		req, err := p.bridge.NormalizeRequest(ctx, payload, nil, declared)
		if err != nil {
			return err
		}

		resp, err := p.handler.Handle(ctx, req)
		if err != nil {
			return err
		}

		out, err := p.bridge.EncodeResponse(req, resp, nil)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	invokeCmd.Flags().StringVarP(&invokeFile, "file", "f", "", "path to the event document (required)")
	invokeCmd.Flags().StringVarP(&invokeEventType, "type", "t", "",
		"declared input family: sqs, sns, kinesis, s3, apigw, apigw2")
	_ = invokeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(invokeCmd)
}
