package messages

import (
	"encoding/json"
	"testing"

	"github.com/conneroisu/streamrpc/pkg/rpcerrs"
)

// TestNewRequestWireShape verifies a positional call serializes to the
// JSON-RPC 2.0 request grammar.
func TestNewRequestWireShape(t *testing.T) {
	req, err := NewRequest("subtract", []any{42, 23}, "req-1")
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if wire["jsonrpc"] != "2.0" {
		t.Errorf("jsonrpc = %v, want 2.0", wire["jsonrpc"])
	}
	if wire["method"] != "subtract" {
		t.Errorf("method = %v, want subtract", wire["method"])
	}
	if wire["id"] != "req-1" {
		t.Errorf("id = %v, want req-1", wire["id"])
	}
	params, ok := wire["params"].([]any)
	if !ok || len(params) != 2 {
		t.Fatalf("params = %v, want two-element array", wire["params"])
	}
}

// TestNewRequestNotificationOmitsID verifies a request built without an
// identifier never includes an id field on the wire.
func TestNewRequestNotificationOmitsID(t *testing.T) {
	req, err := NewRequest("update", []any{"x"}, "")
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if !req.IsNotification() {
		t.Fatal("expected notification")
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, present := wire["id"]; present {
		t.Errorf("notification carries id field: %s", data)
	}
}

// TestNewRequestEmptyMethod verifies the builder rejects an empty method
// before anything touches the wire.
func TestNewRequestEmptyMethod(t *testing.T) {
	_, err := NewRequest("", nil, "req-1")
	reqErr, ok := rpcerrs.AsRequestDataError(err)
	if !ok {
		t.Fatalf("expected RequestDataError, got %v", err)
	}
	if reqErr.Field() != "method" {
		t.Errorf("field = %q, want method", reqErr.Field())
	}
}

// TestBuildParamsShapes exercises the positional/named tie-break and the
// malformed shapes the builder must reject.
func TestBuildParamsShapes(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantErr bool
		check   func(t *testing.T, params any)
	}{
		{
			name: "empty args omit params",
			args: nil,
			check: func(t *testing.T, params any) {
				if params != nil {
					t.Errorf("params = %v, want nil", params)
				}
			},
		},
		{
			name: "positional array",
			args: []any{1, "two", true},
			check: func(t *testing.T, params any) {
				seq, ok := params.([]any)
				if !ok || len(seq) != 3 {
					t.Errorf("params = %v, want 3-element array", params)
				}
			},
		},
		{
			name: "named mapping",
			args: []any{Keyword("minuend"), 42, Keyword("subtrahend"), 23},
			check: func(t *testing.T, params any) {
				obj, ok := params.(map[string]any)
				if !ok {
					t.Fatalf("params = %T, want map", params)
				}
				if obj["minuend"] != 42 || obj["subtrahend"] != 23 {
					t.Errorf("params = %v", obj)
				}
			},
		},
		{
			name:    "keyword in positional mode",
			args:    []any{1, Keyword("oops"), 2},
			wantErr: true,
		},
		{
			name:    "odd named form",
			args:    []any{Keyword("a"), 1, Keyword("b")},
			wantErr: true,
		},
		{
			name:    "value in keyword position",
			args:    []any{Keyword("a"), 1, "b", 2},
			wantErr: true,
		},
		{
			name:    "keyword used as value",
			args:    []any{Keyword("a"), Keyword("b")},
			wantErr: true,
		},
		{
			name:    "duplicate keyword",
			args:    []any{Keyword("a"), 1, Keyword("a"), 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := BuildParams(tt.args)
			if tt.wantErr {
				reqErr, ok := rpcerrs.AsRequestDataError(err)
				if !ok {
					t.Fatalf("expected RequestDataError, got %v", err)
				}
				if reqErr.Field() != "params" {
					t.Errorf("field = %q, want params", reqErr.Field())
				}

				return
			}
			if err != nil {
				t.Fatalf("BuildParams failed: %v", err)
			}
			tt.check(t, params)
		})
	}
}
