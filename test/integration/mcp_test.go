package integration

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/conneroisu/streamrpc/pkg/streamrpc"
	"github.com/conneroisu/streamrpc/pkg/streamrpc/options"
)

// TestMCPServerInterop drives a real MCP server with the streamrpc client.
// MCP speaks JSON-RPC 2.0 with one message per line, which is exactly the
// framing the codec produces, so the whole exchange runs hermetically over
// a pair of in-process pipes.
func TestMCPServerInterop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mcpServer := server.NewMCPServer("interop", "0.1.0")
	mcpServer.AddTool(
		mcp.NewTool("pong", mcp.WithDescription("replies with pong")),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	// server writes -> client reads, client writes -> server reads.
	clientIn, serverOut := io.Pipe()
	serverIn, clientOut := io.Pipe()

	stdio := server.NewStdioServer(mcpServer)
	go func() { _ = stdio.Listen(ctx, serverIn, serverOut) }()

	conn, err := streamrpc.Open(clientIn, clientOut, &options.Options{
		CallTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	initRaw, err := conn.Call(ctx, "initialize",
		streamrpc.Keyword("protocolVersion"), "2024-11-05",
		streamrpc.Keyword("capabilities"), map[string]any{},
		streamrpc.Keyword("clientInfo"), map[string]any{
			"name":    "streamrpc",
			"version": "0.1.0",
		},
	)
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	var initResult struct {
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	if err := json.Unmarshal(initRaw, &initResult); err != nil {
		t.Fatalf("decode initialize result: %v", err)
	}
	if initResult.ServerInfo.Name != "interop" {
		t.Errorf("server name = %q, want interop", initResult.ServerInfo.Name)
	}

	if err := conn.Notify(ctx, "notifications/initialized"); err != nil {
		t.Fatalf("initialized notification failed: %v", err)
	}

	if _, err := conn.Call(ctx, "ping"); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	listRaw, err := conn.Call(ctx, "tools/list")
	if err != nil {
		t.Fatalf("tools/list failed: %v", err)
	}
	var listResult struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(listRaw, &listResult); err != nil {
		t.Fatalf("decode tools/list result: %v", err)
	}
	if len(listResult.Tools) != 1 || listResult.Tools[0].Name != "pong" {
		t.Errorf("tools = %+v, want single pong tool", listResult.Tools)
	}

	callRaw, err := conn.Call(ctx, "tools/call",
		streamrpc.Keyword("name"), "pong",
		streamrpc.Keyword("arguments"), map[string]any{},
	)
	if err != nil {
		t.Fatalf("tools/call failed: %v", err)
	}
	var callResult struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(callRaw, &callResult); err != nil {
		t.Fatalf("decode tools/call result: %v", err)
	}
	if len(callResult.Content) != 1 || callResult.Content[0].Text != "pong" {
		t.Errorf("content = %+v, want single pong text", callResult.Content)
	}
}
