package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// DefaultMaxBodySize bounds request bodies when the engine sets no payload limit.
const DefaultMaxBodySize = 32 << 20

//go:embed static/style.css
var stylesheet string

// Engine defines the part of the cellview engine the HTTP surface needs.
type Engine interface {
	ports.Decoder
	ports.Renderer
	Format(mime domain.MIMEType, value domain.Value) string
	FormatError(err error) string
	Display(ctx context.Context, region ports.Region, payload domain.OutputPayload) error
}

// Server exposes an Engine and a Surface of named regions over HTTP.
type Server struct {
	Engine  Engine
	Surface ports.Surface
	Streams *StreamManager
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, surface ports.Surface) http.Handler {
	s := &Server{
		Engine:  engine,
		Surface: surface,
		Streams: NewStreamManager(),
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/style.css", s.GetStylesheet)
	r.Post("/render", s.Render)
	r.Route("/regions/{id}", func(r chi.Router) {
		r.Get("/", s.GetRegion)
		r.Put("/", s.PutRegion)
		r.Delete("/", s.DeleteRegion)
		r.Get("/view", s.ViewRegion)
		r.Get("/events", s.SubscribeRegion)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// GetStylesheet serves the stylesheet for the class names the renderer emits.
func (s *Server) GetStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	io.WriteString(w, stylesheet)
}

// Render handles POST /render: the body is parsed and the fragment returned.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Warn("Render: Invalid request body", "error", err)
		return
	}

	value, err := s.Engine.Parse(payload)
	if err != nil {
		slog.Warn("Render: Payload rejected", "mime", payload.Type, "error", err)
		status := parseStatus(err)
		if status == 0 {
			status = http.StatusBadRequest
		}
		writeHTML(w, status, s.Engine.FormatError(err))
		return
	}

	writeHTML(w, http.StatusOK, s.Engine.Format(payload.Type, value))
}

// PutRegion handles PUT /regions/{id}: the body is parsed and rendered into the region.
func (s *Server) PutRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, err := readPayload(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Warn("PutRegion: Invalid request body", "region", id, "error", err)
		return
	}

	region := s.Surface.Region(id)
	status := http.StatusNoContent

	if err := s.Engine.Display(r.Context(), region, payload); err != nil {
		status = parseStatus(err)
		if status == 0 {
			http.Error(w, fmt.Sprintf("Region error: %v", err), http.StatusBadGateway)
			slog.Error("PutRegion: Render failed", "region", id, "error", err)
			return
		}
		slog.Warn("PutRegion: Payload rejected", "region", id, "mime", payload.Type, "error", err)
	}

	s.publish(r.Context(), id, region)
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	markup, _ := region.Markup(r.Context())
	writeHTML(w, status, markup)
}

// GetRegion handles GET /regions/{id}.
func (s *Server) GetRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	markup, err := s.Surface.Region(id).Markup(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Region error: %v", err), http.StatusBadGateway)
		slog.Error("GetRegion failed", "region", id, "error", err)
		return
	}
	writeHTML(w, http.StatusOK, markup)
}

// DeleteRegion handles DELETE /regions/{id}.
func (s *Server) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	region := s.Surface.Region(id)
	if err := region.Clear(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Region error: %v", err), http.StatusBadGateway)
		slog.Error("DeleteRegion failed", "region", id, "error", err)
		return
	}
	s.Streams.Broadcast(id, "")
	w.WriteHeader(http.StatusNoContent)
}

var viewTemplate = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>{{.ID}}</title>
<link rel="stylesheet" href="/style.css" />
</head>
<body>
<div id="region" class="container">{{.Markup}}</div>
<script>
new EventSource({{.Events}}).onmessage = (e) => {
	document.getElementById("region").innerHTML = e.data;
};
</script>
</body>
</html>
`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>{{.Title}}</title>
<style>
{{.Style}}</style>
</head>
<body>
<div class="container">{{.Markup}}</div>
</body>
</html>
`))

// WritePage writes a standalone HTML document embedding markup and the stylesheet.
func WritePage(w io.Writer, title, markup string) error {
	return pageTemplate.Execute(w, map[string]any{
		"Title":  title,
		"Style":  template.CSS(stylesheet),
		"Markup": template.HTML(markup),
	})
}

// ViewRegion handles GET /regions/{id}/view: a full page that follows region updates.
func (s *Server) ViewRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	markup, err := s.Surface.Region(id).Markup(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Region error: %v", err), http.StatusBadGateway)
		slog.Error("ViewRegion failed", "region", id, "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = viewTemplate.Execute(w, map[string]any{
		"ID":     id,
		"Markup": template.HTML(markup),
		"Events": "/regions/" + id + "/events",
	})
	if err != nil {
		slog.Error("ViewRegion template failed", "region", id, "error", err)
	}
}

// SubscribeRegion handles GET /regions/{id}/events (SSE). Every render into the
// region is pushed as one event carrying the new markup.
func (s *Server) SubscribeRegion(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeRegion: Streaming not supported")
		return
	}

	id := chi.URLParam(r, "id")
	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			slog.Debug("SSE client disconnected", "region", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(w, msg)
			flusher.Flush()
		}
	}
}

func (s *Server) publish(ctx context.Context, id string, region ports.Region) {
	markup, err := region.Markup(ctx)
	if err != nil {
		slog.Warn("publish: Region read failed", "region", id, "error", err)
		return
	}
	s.Streams.Broadcast(id, markup)
}

// writeEvent writes msg as one SSE event, splitting it over data lines.
func writeEvent(w io.Writer, msg string) {
	for _, line := range strings.Split(msg, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	io.WriteString(w, "\n")
}

// readPayload reads the request body. The tag comes from the mime query parameter,
// else from the Content-Type header without parameters.
func readPayload(w http.ResponseWriter, r *http.Request) (domain.OutputPayload, error) {
	mime := r.URL.Query().Get("mime")
	if mime == "" {
		mime, _, _ = strings.Cut(r.Header.Get("Content-Type"), ";")
		mime = strings.TrimSpace(mime)
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, DefaultMaxBodySize))
	if err != nil {
		return domain.OutputPayload{}, fmt.Errorf("failed to read body: %w", err)
	}
	return domain.OutputPayload{Type: domain.MIMEType(mime), Data: data}, nil
}

// parseStatus maps a parse failure to its HTTP status, or 0 for other errors.
func parseStatus(err error) int {
	var (
		unsupported *domain.UnsupportedTypeError
		malformed   *domain.MalformedJSONError
	)
	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &malformed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return 0
}

func writeHTML(w http.ResponseWriter, status int, markup string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, markup)
}

// StreamManager fans region updates out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // Region ID -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

func (sm *StreamManager) Subscribe(regionID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[regionID]; !ok {
		sm.subscribers[regionID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[regionID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[regionID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, regionID)
			}
		}
	}
}

func (sm *StreamManager) Broadcast(regionID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[regionID] {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			slog.Warn("SSE: Client buffer full, dropping message", "region", regionID)
		}
	}
}
