package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

// ProtocolVersion is the protocol version reported by initialize.
const ProtocolVersion = "2024-11-05"

// Server serves tools over a line-delimited JSON-RPC stream. Requests are
// handled one at a time in the order they are read.
type Server struct {
	registry *Registry
	logger   *slog.Logger

	// Name and Version identify the server in the initialize response.
	Name    string
	Version string
}

// NewServer creates a Server for the given registry. A nil logger discards
// log output.
func NewServer(registry *Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		registry: registry,
		logger:   logger,
		Name:     "docboost",
		Version:  "1.0.0",
	}
}

// Serve reads requests from r and writes responses to w until r is
// exhausted or ctx is canceled. It returns nil at end of input.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			if resp := s.handleLine(ctx, line); resp != nil {
				if err := enc.Encode(resp); err != nil {
					return fmt.Errorf("failed to encode response: %w", err)
				}
				if err := writer.Flush(); err != nil {
					return fmt.Errorf("failed to write response: %w", err)
				}
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read request: %w", readErr)
		}
	}
}

// handleLine decodes and dispatches a single request line. It returns nil
// when no response should be written.
func (s *Server) handleLine(ctx context.Context, line []byte) *Response {
	req, err := decodeRequest(line)
	if err != nil {
		s.logger.Debug("mcp parse error", "error", err)
		return newError(nil, CodeParseError, "Parse error")
	}

	resp := s.Handle(ctx, req)
	if req.IsNotification() {
		return nil
	}
	return resp
}

// Handle dispatches a decoded request and returns its response.
func (s *Server) Handle(ctx context.Context, req *Request) (resp *Response) {
	defer func(begin time.Time) {
		attrs := []any{
			"method", req.Method,
			"id", string(req.ID),
			"duration", time.Since(begin),
		}
		if resp != nil && resp.Error != nil {
			attrs = append(attrs, "code", resp.Error.Code, "error", resp.Error.Message)
		}
		s.logger.Info("mcp request", attrs...)
	}(time.Now())

	switch req.Method {
	case "initialize":
		return newResult(req.ID, s.initializeResult())
	case "tools/list":
		return newResult(req.ID, map[string]any{"tools": s.registry.Definitions()})
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return newResult(req.ID, map[string]string{"status": "ok"})
	default:
		return newError(req.ID, CodeMethodNotFound, "Method not found")
	}
}

func (s *Server) initializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"serverInfo": map[string]string{
			"name":    s.Name,
			"version": s.Version,
		},
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
	}
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) (resp *Response) {
	// A panicking handler must not take the server down.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("mcp tool panic", "panic", r)
			resp = newError(req.ID, CodeInternalError, "Internal error")
		}
	}()

	var params CallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return newError(req.ID, CodeToolError, fmt.Sprintf("invalid params: %v", err))
		}
	}

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return newError(req.ID, CodeToolError, toolErrorMessage(err))
	}

	content, err := textResult(result)
	if err != nil {
		return newError(req.ID, CodeToolError, fmt.Sprintf("failed to encode result: %v", err))
	}
	return newResult(req.ID, content)
}

// toolErrorMessage returns the message surfaced to clients for a tool
// failure. Infrastructure errors keep their original text.
func toolErrorMessage(err error) string {
	var e *docboost.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
