// Package handler exposes the HTTP surface of the form relay: the submission
// endpoint, the health check, and the middleware chain around them.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oneshotleague/formrelay/internal/delivery"
	"github.com/oneshotleague/formrelay/pkg/form"
	"github.com/oneshotleague/formrelay/middlewares"
	"github.com/oneshotleague/formrelay/pkg/i18n"
	"github.com/oneshotleague/formrelay/pkg/validator"
)

const (
	// MaxRequestBody caps the multipart request body: two attachments at the
	// per-file limit plus text fields and multipart overhead.
	MaxRequestBody = 8 << 20

	// multipartMemory is how much of the parsed form is kept in memory
	// before spilling to temp files.
	multipartMemory = 4 << 20
)

// Handler serves the form relay endpoints.
type Handler struct {
	log       *slog.Logger
	deliverer delivery.Deliverer
	i18n      *i18n.I18n
}

// New creates a Handler dispatching submissions to the given deliverer.
func New(log *slog.Logger, deliverer delivery.Deliverer, service *i18n.I18n) *Handler {
	return &Handler{
		log:       log,
		deliverer: deliverer,
		i18n:      service,
	}
}

// RouterConfig configures the router's middleware chain.
type RouterConfig struct {
	CORSOptions      []middlewares.CORSOption
	SubmitMiddleware []middlewares.Middleware // applies to the submit route only
}

// RouterOption configures RouterConfig.
type RouterOption func(*RouterConfig)

// WithCORSOptions forwards options to the CORS middleware.
func WithCORSOptions(opts ...middlewares.CORSOption) RouterOption {
	return func(cfg *RouterConfig) {
		cfg.CORSOptions = opts
	}
}

// WithSubmitMiddleware adds middleware (e.g. a rate limit) to the submit
// route only.
func WithSubmitMiddleware(mw ...middlewares.Middleware) RouterOption {
	return func(cfg *RouterConfig) {
		cfg.SubmitMiddleware = mw
	}
}

// Router builds the HTTP router with the standard middleware chain.
func (h *Handler) Router(opts ...RouterOption) *chi.Mux {
	cfg := &RouterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(h.log))
	r.Use(middlewares.Logging(h.log, middlewares.WithLoggingSkipPaths("/healthz")))
	r.Use(middlewares.CORS(cfg.CORSOptions...))
	r.Use(middlewares.Language(h.i18n))

	r.Get("/healthz", h.Healthz)

	submit := make([]func(http.Handler) http.Handler, 0, len(cfg.SubmitMiddleware))
	for _, mw := range cfg.SubmitMiddleware {
		submit = append(submit, mw)
	}
	r.With(submit...).Post("/api/submit-form", h.SubmitForm)

	return r
}

// Healthz reports process liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// SubmitForm parses, validates, and relays a multipart form submission.
// Client-facing errors are localized and generic; causes go to the logs only.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tr := h.translator(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBody)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, tr.T("submission.too_large"))
			return
		}
		writeError(w, http.StatusBadRequest, tr.T("submission.malformed"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	sub, err := form.Decode(r.MultipartForm)
	if err != nil {
		switch {
		case errors.Is(err, form.ErrUnsupportedFormType):
			writeError(w, http.StatusBadRequest, tr.T("submission.unsupported_form"))
		default:
			writeError(w, http.StatusBadRequest, tr.T("submission.malformed"))
		}
		return
	}

	if err := sub.Validate(); err != nil {
		ve := validator.ExtractValidationErrors(err)
		if ve.IsEmpty() {
			h.log.ErrorContext(ctx, "validation failed without field errors", "error", err)
			writeError(w, http.StatusBadRequest, tr.T("submission.malformed"))
			return
		}
		ve.Translate(tr.TranslateMessage)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  tr.T("submission.invalid"),
			"fields": ve.Fields(),
		})
		return
	}

	if err := h.deliverer.Deliver(ctx, sub); err != nil {
		h.log.ErrorContext(ctx, "submission delivery failed",
			"form_type", string(sub.Type()),
			"error", err,
		)
		writeError(w, http.StatusBadGateway, tr.T("submission.failed"))
		return
	}

	h.log.InfoContext(ctx, "submission relayed", "form_type", string(sub.Type()))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// translator returns the request translator, falling back to the default
// language when the Language middleware did not run.
func (h *Handler) translator(ctx context.Context) *i18n.Translator {
	if tr := middlewares.GetTranslator(ctx); tr != nil {
		return tr
	}
	return i18n.NewTranslator(h.i18n, "")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
