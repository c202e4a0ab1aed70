// Package server exposes the generator over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/report"
	"github.com/darshoned/DfMA/internal/system"
)

const (
	maxBody     = 8 << 20 // request body limit
	maxScenario = 1000    // batch size limit

	xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Options tune the router.
type Options struct {
	RateLimit float64 // requests per second per client, <= 0 disables limiting
	RateBurst int
	Workers   int // batch concurrency, < 1 = GOMAXPROCS
}

// Handler serves the API from one shared engine.
type Handler struct {
	engine  *planner.Engine
	workers int
}

// NewRouter wires the API routes.
func NewRouter(e *planner.Engine, opts Options) *mux.Router {
	h := &Handler{engine: e, workers: opts.Workers}

	r := mux.NewRouter()
	r.Use(LogRequest)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		api.Use(NewIPRateLimiter(rate.Limit(opts.RateLimit), burst).LimitMiddleware)
	}
	api.HandleFunc("/generate", h.Generate).Methods(http.MethodPost)
	api.HandleFunc("/batch", h.Batch).Methods(http.MethodPost)
	api.HandleFunc("/catalog/hollowcore", h.HollowCore).Methods(http.MethodGet)
	api.HandleFunc("/catalog/productivity", h.Productivity).Methods(http.MethodGet)
	api.HandleFunc("/profiles", h.Profiles).Methods(http.MethodGet)
	return r
}

// Serve runs the HTTP server until ctx is cancelled, then drains connections.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusOf maps pipeline errors onto HTTP codes.
func statusOf(err error) int {
	var verr *planner.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, system.ErrUnsupportedCombination):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNoMatchingProduct):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Health reports liveness and the loaded profile.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "profile": h.engine.Profile().Name})
}

// Generate runs one scenario. ?format=xlsx or ?format=pdf return a document
// instead of JSON.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var in planner.Input
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return
	}

	res, err := h.engine.Generate(r.Context(), in)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "xlsx":
		w.Header().Set("Content-Type", xlsxType)
		w.Header().Set("Content-Disposition", `attachment; filename="report.xlsx"`)
		if err := report.WriteWorkbook(w, report.Items(res)); err != nil {
			slog.Error("workbook", "error", err)
		}
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
		if err := report.WritePDF(w, res); err != nil {
			slog.Error("pdf", "error", err)
		}
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

// Batch runs many independent scenarios. The body is a JSON array of inputs
// or a multipart form with a "file" scenario workbook. ?format=xlsx returns
// a results workbook.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	inputs, err := h.readScenarios(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(inputs) == 0 {
		writeError(w, http.StatusBadRequest, "no scenarios")
		return
	}
	if len(inputs) > maxScenario {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d scenarios per batch", maxScenario))
		return
	}

	items, err := h.engine.GenerateBatch(r.Context(), inputs, h.workers)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", xlsxType)
		w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
		if err := report.WriteWorkbook(w, items); err != nil {
			slog.Error("workbook", "error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) readScenarios(w http.ResponseWriter, r *http.Request) ([]planner.Input, error) {
	body := http.MaxBytesReader(w, r.Body, maxBody)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = body
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("scenario workbook: %w", err)
		}
		defer file.Close()
		return planner.ReadScenariosXLSX(file)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	var inputs []planner.Input
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("invalid request payload: %w", err)
	}
	return inputs, nil
}

// HollowCore lists the hollow-core catalog.
func (h *Handler) HollowCore(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Capacity().Products())
}

// Productivity lists the productivity rates.
func (h *Handler) Productivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Rates().Rates())
}

// Profiles lists the built-in profile names and the active profile.
func (h *Handler) Profiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Active  profile.Profile `json:"active"`
		Builtin []string        `json:"builtin"`
	}{h.engine.Profile(), profile.Names()})
}
