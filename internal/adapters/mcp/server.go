package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"go.trai.ch/gdmcp/internal/core/domain"
	"go.trai.ch/gdmcp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxMessageSize bounds a single request line.
const maxMessageSize = 16 << 20

// Dispatcher executes a named tool.
type Dispatcher interface {
	// Call runs the tool. A returned error is either domain.ErrUnknownTool or fatal.
	Call(ctx context.Context, name string, args *domain.Params) (domain.Response, error)
}

// Server answers protocol requests read from one stream on another.
type Server struct {
	dispatcher Dispatcher
	logger     ports.Logger
	version    string

	mu  sync.Mutex
	enc *json.Encoder
}

// NewServer creates a Server that reports version in its server info.
func NewServer(dispatcher Dispatcher, logger ports.Logger, version string) *Server {
	return &Server{dispatcher: dispatcher, logger: logger, version: version}
}

// Serve reads requests from in until EOF, ctx ends, or a tool call fails fatally.
// Each tools/call runs on its own goroutine; replies are written to out one line each.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.enc = json.NewEncoder(out)
	s.enc.SetEscapeHTML(false)

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go readLines(ctx, in, lines, readErr)

	g, gctx := errgroup.WithContext(ctx)
	for {
		select {
		case <-gctx.Done():
			return g.Wait()
		case line, ok := <-lines:
			if !ok {
				err := g.Wait()
				if err != nil {
					return err
				}
				return <-readErr
			}
			s.handle(gctx, g, line)
		}
	}
}

func readLines(ctx context.Context, in io.Reader, lines chan<- []byte, readErr chan<- error) {
	defer close(lines)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		select {
		case lines <- bytes.Clone(line):
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}
	if err := sc.Err(); err != nil {
		readErr <- zerr.Wrap(err, "failed to read request stream")
		return
	}
	readErr <- nil
}

func (s *Server) handle(ctx context.Context, g *errgroup.Group, line []byte) {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Debug("malformed request: " + err.Error())
		s.replyError(nullID, CodeParseError, "Parse error")
		return
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		if !req.isNotification() {
			s.replyError(req.ID, CodeInvalidRequest, "Invalid request")
		}
		return
	}

	if req.isNotification() {
		s.logger.Debug("notification: " + req.Method)
		return
	}

	switch req.Method {
	case MethodInitialize:
		s.reply(req.ID, initializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    map[string]any{"tools": map[string]any{}},
			ServerInfo:      serverInfo{Name: domain.ServerName, Version: s.version},
		})
	case MethodPing:
		s.reply(req.ID, struct{}{})
	case MethodToolsList:
		s.reply(req.ID, listTools())
	case MethodToolsCall:
		g.Go(func() error {
			return s.callTool(ctx, req)
		})
	default:
		s.replyError(req.ID, CodeMethodNotFound, "Method not found: "+req.Method)
	}
}

func (s *Server) callTool(ctx context.Context, req request) error {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		s.replyError(req.ID, CodeInvalidParams, "Invalid params: tool name is required")
		return nil
	}

	if bytes.Equal(params.Arguments, []byte("null")) {
		params.Arguments = nil
	}
	args, err := domain.ParseParams(params.Arguments)
	if err != nil {
		s.replyError(req.ID, CodeInvalidParams, "Invalid params: "+err.Error())
		return nil
	}

	s.logger.Debug("handling tool request: " + params.Name)
	res, err := s.dispatcher.Call(ctx, params.Name, args)
	switch {
	case err == nil:
		s.reply(req.ID, res)
		return nil
	case errors.Is(err, domain.ErrUnknownTool):
		s.replyError(req.ID, CodeMethodNotFound, "Unknown tool: "+params.Name)
		return nil
	default:
		s.replyError(req.ID, CodeInternalError, err.Error())
		return err
	}
}

func listTools() toolsListResult {
	tools := make([]toolDescriptor, 0, len(domain.Tools))
	for _, t := range domain.Tools {
		tools = append(tools, toolDescriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema(),
		})
	}
	return toolsListResult{Tools: tools}
}

func (s *Server) reply(id json.RawMessage, result any) {
	s.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) replyError(id json.RawMessage, code int, message string) {
	s.write(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}})
}

func (s *Server) write(resp response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(resp); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to write response"))
	}
}
