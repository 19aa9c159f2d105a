package messages

import (
	"fmt"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
)

// Keyword tags a named argument. Arguments are positional unless the first
// one is a Keyword, in which case they must alternate Keyword, value,
// Keyword, value. The two modes are mutually exclusive per call and the tag
// itself is never sent on the wire.
type Keyword string

// NewRequest builds a request from a method name and caller arguments.
// An empty id produces a notification. Validation happens here, before any
// bytes are written.
func NewRequest(method string, args []any, id string) (*Request, error) {
	if method == "" {
		return nil, rpcerrs.NewRequestDataError(
			rpcerrs.ErrCodeInvalidMethod,
			"method must be a non-empty string",
			"method",
		)
	}

	params, err := BuildParams(args)
	if err != nil {
		return nil, err
	}

	return &Request{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
		ID:      id,
	}, nil
}

// BuildParams converts caller arguments to a JSON-RPC params value:
// nil for no arguments, an ordered array for positional arguments, or an
// object for Keyword-tagged pairs.
func BuildParams(args []any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if _, ok := args[0].(Keyword); ok {
		return buildNamed(args)
	}

	return buildPositional(args)
}

func buildPositional(args []any) (any, error) {
	for i, arg := range args {
		if _, ok := arg.(Keyword); ok {
			return nil, rpcerrs.NewRequestDataError(
				rpcerrs.ErrCodeInvalidParams,
				fmt.Sprintf(
					"positional and named arguments cannot be mixed (keyword at position %d)",
					i,
				),
				"params",
			)
		}
	}

	return args, nil
}

func buildNamed(args []any) (any, error) {
	if len(args)%2 != 0 {
		return nil, rpcerrs.NewRequestDataError(
			rpcerrs.ErrCodeInvalidParams,
			"named arguments require keyword/value pairs",
			"params",
		)
	}

	params := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(Keyword)
		if !ok {
			return nil, rpcerrs.NewRequestDataError(
				rpcerrs.ErrCodeInvalidParams,
				fmt.Sprintf(
					"expected keyword at position %d, got %T",
					i, args[i],
				),
				"params",
			)
		}
		if _, ok := args[i+1].(Keyword); ok {
			return nil, rpcerrs.NewRequestDataError(
				rpcerrs.ErrCodeInvalidParams,
				fmt.Sprintf(
					"keyword %q used as a value at position %d",
					args[i+1], i+1,
				),
				"params",
			)
		}
		if _, dup := params[string(key)]; dup {
			return nil, rpcerrs.NewRequestDataError(
				rpcerrs.ErrCodeInvalidParams,
				fmt.Sprintf("duplicate keyword %q", key),
				"params",
			)
		}
		params[string(key)] = args[i+1]
	}

	return params, nil
}
