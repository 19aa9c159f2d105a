package messages

import (
	"encoding/json"
	"testing"
)

// TestInboundIDKey verifies identifier normalization across the id shapes
// servers produce.
func TestInboundIDKey(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantKey string
		wantOK  bool
	}{
		{"string id", `{"jsonrpc":"2.0","id":"abc","result":1}`, "abc", true},
		{"numeric id", `{"jsonrpc":"2.0","id":7,"result":1}`, "7", true},
		{"null id", `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"parse"}}`, "", false},
		{"missing id", `{"jsonrpc":"2.0","method":"notify_event"}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg Inbound
			if err := json.Unmarshal([]byte(tt.payload), &msg); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			key, ok := msg.IDKey()
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("IDKey() = (%q, %v), want (%q, %v)",
					key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

// TestInboundHasResult verifies that an explicit null result still counts
// as a result, while an absent member does not.
func TestInboundHasResult(t *testing.T) {
	var withNull Inbound
	if err := json.Unmarshal(
		[]byte(`{"jsonrpc":"2.0","id":"a","result":null}`), &withNull,
	); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !withNull.HasResult() {
		t.Error("explicit null result should count as present")
	}

	var without Inbound
	if err := json.Unmarshal(
		[]byte(`{"jsonrpc":"2.0","id":"a"}`), &without,
	); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if without.HasResult() {
		t.Error("absent result should not count as present")
	}
}
