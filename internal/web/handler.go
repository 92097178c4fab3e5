package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"log"
	"net/http"

	"textsearch/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// maxFormBytes bounds the size of a POST /search body.
const maxFormBytes = 64 * 1024

// PagePort is the web-facing subset of the search service.
type PagePort interface {
	Index(ctx context.Context) service.Page
	Search(ctx context.Context, query string) service.Page
}

// Handler serves the index page and the search form.
type Handler struct {
	svc    PagePort
	logger *log.Logger
	mux    *http.ServeMux
}

// NewHandler wires GET / and POST /search to svc.
func NewHandler(svc PagePort, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	h := &Handler{svc: svc, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /{$}", h.index)
	h.mux.HandleFunc("POST /search", h.search)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.svc.Index(r.Context()))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.render(w, h.svc.Search(r.Context(), r.PostForm.Get("text")))
}

// render executes into a buffer first so a template failure never leaves a
// half-written 200 response.
func (h *Handler) render(w http.ResponseWriter, page service.Page) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		h.logger.Printf("web: render: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Printf("web: write response: %v", err)
	}
}
