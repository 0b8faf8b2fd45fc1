package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/apuntes/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

const (
	loopbackHost      = "127.0.0.1"
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server exposes path classification and the stored items over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "apuntes",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions(ports)}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions describes what this server can answer, limited to the
// tools and resources the configured ports allow.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("Course material harvested from a shared Drive tree. ")
	b.WriteString("Use classify_path to guess the content types, course codes and exam date of a file path.")
	if ports.Items != nil {
		b.WriteString(" Use list_items to browse classified files by content type or course, ")
		b.WriteString("and read apuntes://items/{itemId} for a single file.")
	}
	if ports.Catalog != nil {
		b.WriteString(" The course catalog is at apuntes://courses.")
	}
	return b.String()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// LoopbackAddr returns the listen address for the HTTP transport.
// The server only binds to the loopback interface.
func LoopbackAddr(port int) string {
	return net.JoinHostPort(loopbackHost, strconv.Itoa(port))
}

// RunHTTP listens on the loopback port and serves until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", LoopbackAddr(port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles streamable HTTP sessions on ln. Cancelling ctx shuts the
// server down and waits for in-flight requests up to a short timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	logger.Info("mcp: serving on http://%s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down mcp server: %w", err)
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
