// Package mcpserver exposes the dispatcher's operations as Model Context
// Protocol tools.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/masmgr/git-history-mcp/internal/apperr"
	"github.com/masmgr/git-history-mcp/internal/dispatch"
)

// Name is the implementation name announced to clients.
const Name = "git-history-mcp"

// Server wraps an MCP server whose tools are the dispatcher's operations.
type Server struct {
	mcp        *mcp.Server
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger
}

// New registers every dispatcher operation as a read-only tool.
func New(d *dispatch.Dispatcher, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mcp:        mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil),
		dispatcher: d,
		logger:     logger,
	}
	for _, op := range d.Operations() {
		s.mcp.AddTool(&mcp.Tool{
			Name:        op.Name,
			Description: op.Description,
			InputSchema: op.InputSchema(),
			Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true, IdempotentHint: true},
		}, s.handler(op.Name))
	}
	return s
}

// MCP returns the underlying server, e.g. to connect custom transports.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Serve runs the server over stdin/stdout until ctx is cancelled or the
// client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio", zap.Int("tools", len(s.dispatcher.Operations())))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// handler adapts one operation. Failures become tool results flagged as
// errors, so the session stays usable for later calls.
func (s *Server) handler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return errorResult(err), nil
		}
		text, err := s.dispatcher.Dispatch(ctx, name, args)
		if err != nil {
			return errorResult(err), nil
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}, nil
	}
}

// decodeArguments keeps numbers as json.Number so integral checks are exact.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return args, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err, "arguments must be a JSON object")
	}
	return args, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
