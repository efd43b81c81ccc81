package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sendRequest(t *testing.T, s *Server, method string, id int, params any) jsonrpcResponse {
	t.Helper()

	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		req["params"] = params
	}

	reqBytes, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	reqBytes = append(reqBytes, '\n')

	var output bytes.Buffer
	s.input = bytes.NewReader(reqBytes)
	s.output = &output

	s.Run()

	var resp jsonrpcResponse
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response %q: %v", output.String(), err)
	}
	return resp
}

func TestServerInitialize(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "initialize", 1, map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "1.0"},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}

	if result["protocolVersion"] != "2024-11-05" {
		t.Fatalf("unexpected protocol version: %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]any)
	if !ok {
		t.Fatal("missing serverInfo")
	}
	if serverInfo["name"] != "docflow-mcp" {
		t.Fatalf("unexpected server name: %v", serverInfo["name"])
	}
}

func TestServerToolsList(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/list", 2, nil)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}

	tools, ok := result["tools"].([]any)
	if !ok {
		t.Fatal("tools is not an array")
	}

	toolNames := make(map[string]bool)
	for _, tool := range tools {
		tm, ok := tool.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := tm["name"].(string); ok {
			toolNames[name] = true
		}
	}

	for _, name := range []string{"render_document", "validate_document", "document_outline", "pdf_info"} {
		if !toolNames[name] {
			t.Errorf("expected tool %q not found", name)
		}
	}
}

func TestServerResourcesList(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultResources(s)

	resp := sendRequest(t, s, "resources/list", 3, nil)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}

	resources, ok := result["resources"].([]any)
	if !ok {
		t.Fatal("resources is not an array")
	}

	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}
}

func TestServerPing(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	resp := sendRequest(t, s, "ping", 4, nil)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
}

func TestServerUnknownMethod(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	resp := sendRequest(t, s, "nonexistent/method", 5, nil)

	if resp.Error == nil {
		t.Fatal("expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Fatalf("expected error code -32601, got %d", resp.Error.Code)
	}
}

func TestServerUnknownTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 6, map[string]any{
		"name":      "nonexistent_tool",
		"arguments": map[string]any{},
	})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestServerRenderDocumentTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 7, map[string]any{
		"name": "render_document",
		"arguments": map[string]any{
			"document": map[string]any{
				"title": "Test Document",
				"content": []any{
					map[string]any{"type": "heading", "text": "Hello MCP", "level": 1},
					map[string]any{"type": "paragraph", "text": "Rendered via MCP tool."},
				},
			},
		},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	resultStr := string(resultBytes)

	if !strings.Contains(resultStr, "PDF created") {
		t.Fatalf("unexpected result: %s", resultStr)
	}
	if !strings.Contains(resultStr, "Base64") {
		t.Fatalf("expected base64 data in result: %s", resultStr)
	}
}

func TestServerValidateDocumentTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 8, map[string]any{
		"name": "validate_document",
		"arguments": map[string]any{
			"document": map[string]any{
				"content": []any{
					map[string]any{"type": "heading"}, // missing required text
				},
			},
		},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(resultBytes), "Invalid") {
		t.Fatalf("expected validation failure in result: %s", string(resultBytes))
	}
}

func TestServerDocumentOutlineTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 9, map[string]any{
		"name": "document_outline",
		"arguments": map[string]any{
			"document": map[string]any{
				"content": []any{
					map[string]any{"type": "heading", "text": "Intro", "level": 1},
					map[string]any{"type": "heading", "text": "Setup", "level": 2},
					map[string]any{"type": "paragraph", "text": "body"},
				},
			},
		},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	resultStr := string(resultBytes)
	for _, want := range []string{"Intro", "Setup", `\"1.1\"`} {
		if !strings.Contains(resultStr, want) {
			t.Fatalf("expected %q in outline result: %s", want, resultStr)
		}
	}
}

func TestServerMultipleRequests(t *testing.T) {
	requests := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","id":4,"method":"ping"}`,
	}

	input := strings.Join(requests, "\n") + "\n"
	var output bytes.Buffer

	s := NewServerWithIO(strings.NewReader(input), &output)
	RegisterDefaultTools(s)
	RegisterDefaultResources(s)

	s.Run()

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(lines), output.String())
	}

	for i, line := range lines {
		var resp jsonrpcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response %d: unmarshal error: %v\nline: %s", i, err, line)
		}
		if resp.Error != nil {
			t.Errorf("response %d: unexpected error: %s", i, resp.Error.Message)
		}
	}
}

func TestToolAddTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	customTool := Tool{
		Name:        "custom_tool",
		Description: "A custom test tool",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			return ToolResult{
				Content: []ContentBlock{{Type: "text", Text: "custom result"}},
			}, nil
		},
	}

	s.AddTool(customTool)

	resp := sendRequest(t, s, "tools/call", 1, map[string]any{
		"name":      "custom_tool",
		"arguments": map[string]any{},
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	resultBytes, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(resultBytes), "custom result") {
		t.Fatalf("unexpected result: %s", string(resultBytes))
	}
}
