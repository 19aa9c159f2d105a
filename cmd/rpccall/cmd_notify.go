package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/conneroisu/streamrpc/pkg/streamrpc/options"
)

var (
	notifyEndpoint string
	notifyNamed    bool
)

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().StringVarP(&notifyEndpoint, "endpoint", "e", "", "endpoint URL (required)")
	notifyCmd.Flags().BoolVar(&notifyNamed, "named", false, "treat args as key=value named parameters")
	_ = notifyCmd.MarkFlagRequired("endpoint")
}

var notifyCmd = &cobra.Command{
	Use:   "notify -e <endpoint> <method> [arg...]",
	Short: "Send a notification (no reply expected)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := log.Logger
		conn, err := dial(ctx, notifyEndpoint, &options.Options{
			Logger: &logger,
		})
		if err != nil {
			return err
		}
		defer conn.Close()

		callArgs, err := parseArgs(args[1:], notifyNamed)
		if err != nil {
			return err
		}

		return conn.Notify(ctx, args[0], callArgs...)
	},
}
