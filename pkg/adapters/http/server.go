package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/api"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Client-facing error messages. Internal details are only logged.
const (
	MsgMissingField    = "Se requiere input y tipo de autómata"
	MsgUnknownAutomata = "Tipo de autómata no válido"
	MsgInvalidBody     = "Cuerpo de la petición inválido"
	MsgBodyTooLarge    = "Cuerpo de la petición demasiado grande"
	MsgInternal        = "Error en el procesamiento del autómata"
	MsgInvalidFormat   = "Formato no soportado"
	MsgRunning         = "Backend de Autómatas funcionando correctamente"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Engine defines the interface for the automata core.
type Engine interface {
	Process(ctx context.Context, input, automataType string) (*domain.Outcome, error)
	Types() []domain.Descriptor
	Diagram(automataType string) (domain.Diagram, error)
}

// ProcessRequest is the body of POST /api/automata/process.
type ProcessRequest struct {
	Input        string `json:"input"`
	AutomataType string `json:"automataType"`
}

// ProcessResponse is the success envelope of POST /api/automata/process.
type ProcessResponse struct {
	Success      bool               `json:"success"`
	Input        string             `json:"input"`
	AutomataType domain.AutomatonID `json:"automataType"`
	Result       domain.Result      `json:"result"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetDiagramParams are the query parameters of GET /api/automata/{automataType}/graph.
type GetDiagramParams struct {
	Format *string `form:"format" json:"format,omitempty"`
	Input  *string `form:"input" json:"input,omitempty"`
}

// Server serves the automata API.
type Server struct {
	Engine       Engine
	Metrics      *observability.Metrics
	Logger       *slog.Logger
	StaticDir    string
	MaxBodyBytes int64

	router chi.Router
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics enables request instrumentation and the /metrics endpoint.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.Metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.Logger = logger }
}

// WithStaticDir serves the frontend from dir under "/".
func WithStaticDir(dir string) Option {
	return func(s *Server) { s.StaticDir = dir }
}

// WithMaxBodyBytes bounds the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) { s.MaxBodyBytes = n }
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine:       engine,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	if server.Metrics != nil {
		r.Use(instrument(server.Metrics))
	}
	r.Use(recoverer(server.Logger))

	r.Route("/api/automata", func(r chi.Router) {
		r.Get("/types", server.ListTypes)
		r.Post("/process", server.Process)
		r.Get("/{automataType}/graph", server.GetDiagram)
	})

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/routes", server.ListRoutes)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Raw())
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if server.Metrics != nil {
		r.Handle("/metrics", server.Metrics.Handler())
	}

	if server.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(server.StaticDir)))
	} else {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			io.WriteString(w, MsgRunning)
		})
	}

	server.router = r
	return enableCORS(r)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Automata API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// ListTypes handles the GET /api/automata/types request.
func (s *Server) ListTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Types())
}

// Process handles the POST /api/automata/process request.
func (s *Server) Process(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)

	var body ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		case errors.Is(err, io.EOF):
			// An empty body carries no fields at all.
			writeError(w, http.StatusBadRequest, MsgMissingField)
			return
		default:
			slog.Debug("Process: Invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, MsgInvalidBody)
			return
		}
	}

	out, err := s.Engine.Process(r.Context(), body.Input, body.AutomataType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			writeError(w, http.StatusBadRequest, MsgMissingField)
		case errors.Is(err, domain.ErrUnknownAutomaton):
			writeError(w, http.StatusBadRequest, MsgUnknownAutomata)
		default:
			s.Logger.ErrorContext(r.Context(), "Process failed",
				"error", err,
				"automaton", body.AutomataType,
				"request_id", RequestIDFrom(r.Context()),
			)
			writeError(w, http.StatusInternalServerError, MsgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, ProcessResponse{
		Success:      true,
		Input:        out.Input,
		AutomataType: out.AutomatonID,
		Result:       out.Result,
	})
}

// GetDiagram handles the GET /api/automata/{automataType}/graph request.
func (s *Server) GetDiagram(w http.ResponseWriter, r *http.Request) {
	var automataType string
	err := runtime.BindStyledParameterWithOptions("simple", "automataType", chi.URLParam(r, "automataType"), &automataType,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, MsgUnknownAutomata)
		return
	}

	var params GetDiagramParams
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidFormat)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "input", r.URL.Query(), &params.Input); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	diagram, err := s.Engine.Diagram(automataType)
	if err != nil {
		writeError(w, http.StatusBadRequest, MsgUnknownAutomata)
		return
	}

	format := "json"
	if params.Format != nil {
		format = *params.Format
	}

	switch format {
	case "json":
		writeJSON(w, http.StatusOK, diagram)
	case "mermaid":
		var overlay *graph.GraphOverlay
		if params.Input != nil && *params.Input != "" {
			out, err := s.Engine.Process(r.Context(), *params.Input, automataType)
			if err != nil {
				s.Logger.WarnContext(r.Context(), "GetDiagram: overlay evaluation failed", "error", err)
			} else {
				overlay = graph.OverlayFromResult(diagram.Initial, out.Result)
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, graph.GenerateMermaid(diagram, overlay))
	default:
		writeError(w, http.StatusBadRequest, MsgInvalidFormat)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "automata-http",
		"version":     strings.TrimSpace(automata.Version),
		"api_version": api.Version(),
	})
}

// ListRoutes handles the GET /routes request.
func (s *Server) ListRoutes(w http.ResponseWriter, r *http.Request) {
	var routes []string
	err := chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	})
	if err != nil {
		s.Logger.ErrorContext(r.Context(), "ListRoutes: walk failed", "error", err)
		writeError(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	sort.Strings(routes)
	writeJSON(w, http.StatusOK, routes)
}

// -- Helpers --

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
