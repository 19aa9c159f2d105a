package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/conneroisu/streamrpc/pkg/streamrpc"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/messages"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/options"
)

var (
	endpoint    string
	callTimeout time.Duration
	fullData    bool
	named       bool
)

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "endpoint URL (required)")
	callCmd.Flags().DurationVarP(&callTimeout, "timeout", "t", 30*time.Second, "call timeout")
	callCmd.Flags().BoolVar(&fullData, "full", false, "print the full response object")
	callCmd.Flags().BoolVar(&named, "named", false, "treat args as key=value named parameters")
	_ = callCmd.MarkFlagRequired("endpoint")
}

var callCmd = &cobra.Command{
	Use:   "call -e <endpoint> <method> [arg...]",
	Short: "Invoke a method and print its result",
	Long: `Invoke a method and wait for its reply. Arguments are JSON literals
(plain words count as strings); with --named they are key=value pairs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := log.Logger
		conn, err := dial(ctx, endpoint, &options.Options{
			FullData:    fullData,
			CallTimeout: callTimeout,
			Logger:      &logger,
		})
		if err != nil {
			return err
		}
		defer conn.Close()

		callArgs, err := parseArgs(args[1:], named)
		if err != nil {
			return err
		}

		result, err := conn.Call(ctx, args[0], callArgs...)
		if err != nil {
			return err
		}

		fmt.Println(string(result))

		return nil
	},
}

// dial opens a connection for an endpoint URL.
func dial(
	ctx context.Context,
	endpoint string,
	opts *options.Options,
) (*streamrpc.Conn, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	switch u.Scheme {
	case "tcp":
		return streamrpc.Dial(ctx, "tcp", u.Host, opts)
	case "unix":
		return streamrpc.Dial(ctx, "unix", u.Path, opts)
	case "ws", "wss":
		return streamrpc.DialWebSocket(ctx, endpoint, opts)
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
}

// parseArgs converts CLI arguments to call arguments. Each value parses as
// a JSON literal, falling back to a plain string.
func parseArgs(args []string, named bool) ([]any, error) {
	out := make([]any, 0, len(args)*2)
	for _, arg := range args {
		if !named {
			out = append(out, parseValue(arg))

			continue
		}

		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("named argument %q is not key=value", arg)
		}
		out = append(out, messages.Keyword(key), parseValue(value))
	}

	return out, nil
}

func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}

	return s
}
