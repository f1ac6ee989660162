// Package mcp implements a line-delimited JSON-RPC 2.0 server that exposes
// documentation search and schema introspection as named tools.
package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
)

// JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
	CodeToolError      = -32000
)

const jsonrpcVersion = "2.0"

// Request is an incoming JSON-RPC request. ID holds the raw id so it can be
// echoed back verbatim, whatever its JSON type.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// decodeRequest decodes a request line. Only input that is not a JSON
// object is an error; members of the wrong type are left at their zero
// value so the id can still be echoed and the method reported as unknown.
func decodeRequest(line []byte) (*Request, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(line, &members); err != nil {
		return nil, err
	}
	if members == nil {
		return nil, errors.New("request is not a JSON object")
	}

	req := &Request{
		ID:     members["id"],
		Params: members["params"],
	}
	_ = json.Unmarshal(members["jsonrpc"], &req.JSONRPC)
	_ = json.Unmarshal(members["method"], &req.Method)
	return req, nil
}

// IsNotification reports whether the request expects no response.
// A missing id and an explicit null id are both notifications.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0 || bytes.Equal(bytes.TrimSpace(r.ID), []byte("null"))
}

// Response is an outgoing JSON-RPC response. Exactly one of Result and
// Error is set. A nil ID is encoded as null.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the error member of a JSON-RPC response.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newResult(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: jsonrpcVersion, ID: id, Result: result}
}

func newError(id json.RawMessage, code int, message string) *Response {
	return &Response{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Error:   &ErrorObject{Code: code, Message: message},
	}
}

// CallParams are the params of a tools/call request.
type CallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallResult wraps a tool result as MCP content blocks.
type CallResult struct {
	Content []Content `json:"content"`
}

// Content is a single MCP content block.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult renders v as pretty-printed JSON in a single text block.
func textResult(v any) (*CallResult, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return &CallResult{
		Content: []Content{{Type: "text", Text: string(bytes.TrimRight(buf.Bytes(), "\n"))}},
	}, nil
}
