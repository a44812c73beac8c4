package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// TypesURI is the resource listing the registered automata.
const TypesURI = "automata://types"

// EvaluateResponse mirrors the HTTP process envelope.
type EvaluateResponse struct {
	Success      bool               `json:"success" jsonschema_description:"Always true on a completed evaluation"`
	Input        string             `json:"input" jsonschema_description:"The evaluated input"`
	AutomataType domain.AutomatonID `json:"automataType" jsonschema_description:"The automaton that evaluated the input"`
	Result       domain.Result      `json:"result" jsonschema_description:"Acceptance, message, final state and optional trace"`
}

// evaluateArgs are the arguments of the evaluate tool.
type evaluateArgs struct {
	AutomataType string `mapstructure:"automata_type"`
	Input        string `mapstructure:"input"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Process(ctx context.Context, input, automataType string) (*domain.Outcome, error)
	Types() []domain.Descriptor
	Diagram(automataType string) (domain.Diagram, error)
}

// Server wraps the automata Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("automata-mcp", strings.TrimSpace(automata.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_automata
	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the automata that can evaluate input."),
	), s.handleListAutomata)

	// TOOL: evaluate
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Run an input string through an automaton and report acceptance."),
		mcp.WithString("automata_type", mcp.Required(), mcp.Description("Automaton id, e.g. par_impar, binario, vocales, custom")),
		mcp.WithString("input", mcp.Required(), mcp.Description("The string to evaluate")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: get_diagram
	s.mcpServer.AddTool(mcp.NewTool("get_diagram",
		mcp.WithDescription("Get the transition graph of an automaton as JSON or Mermaid."),
		mcp.WithString("automata_type", mcp.Required(), mcp.Description("Automaton id")),
		mcp.WithString("format", mcp.Description("json (default) or mermaid"), mcp.Enum("json", "mermaid")),
		mcp.WithString("input", mcp.Description("Mermaid only: highlight the states visited by this input")),
	), s.handleGetDiagram)
}

func (s *Server) handleListAutomata(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.engine.Types())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	var in evaluateArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return EvaluateResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	out, err := s.engine.Process(ctx, in.Input, in.AutomataType)
	if err != nil {
		slog.Warn("MCP Evaluate: rejected", "error", err, "automaton", in.AutomataType)
		return EvaluateResponse{}, publicError(err)
	}

	return EvaluateResponse{
		Success:      true,
		Input:        out.Input,
		AutomataType: out.AutomatonID,
		Result:       out.Result,
	}, nil
}

func (s *Server) handleGetDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	automataType := request.GetString("automata_type", "")
	format := request.GetString("format", "json")
	input := request.GetString("input", "")

	diagram, err := s.engine.Diagram(automataType)
	if err != nil {
		return mcp.NewToolResultError(publicError(err).Error()), nil
	}

	switch format {
	case "json":
		jsonBytes, err := json.Marshal(diagram)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	case "mermaid":
		var overlay *graph.GraphOverlay
		if input != "" {
			if out, err := s.engine.Process(ctx, input, automataType); err == nil {
				overlay = graph.OverlayFromResult(diagram.Initial, out.Result)
			}
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(diagram, overlay)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q", format)), nil
	}
}

func (s *Server) registerResources() {
	// EXPOSE: automata://types
	s.mcpServer.AddResource(mcp.NewResource(TypesURI, "Available Automata",
		mcp.WithMIMEType("application/json"),
	), s.readTypes)
}

func (s *Server) readTypes(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Types())
	if err != nil {
		return nil, fmt.Errorf("failed to encode types: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TypesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

// publicError keeps internal details out of tool results.
func publicError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return errors.New("Se requiere input y tipo de autómata")
	case errors.Is(err, domain.ErrUnknownAutomaton):
		return errors.New("Tipo de autómata no válido")
	default:
		return errors.New("Error en el procesamiento del autómata")
	}
}
