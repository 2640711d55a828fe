package leads

import (
	"context"
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/quickqualified/exteriors-api/pkg/logging"
)

// AttachmentUploader stores uploaded photos for a lead and returns their
// attachment metadata, in input order.
type AttachmentUploader interface {
	UploadAll(ctx context.Context, leadID string, files []*multipart.FileHeader) ([]Attachment, error)
}

// Notifier sends the operator a summary of a lead that was just saved.
type Notifier interface {
	LeadSaved(ctx context.Context, lead *Lead) error
}

// IntakeMetrics records per-request intake outcomes.
type IntakeMetrics interface {
	ObserveIntake(outcome string, seconds float64)
}

// HandlerConfig wires the intake handler's collaborators.
type HandlerConfig struct {
	Repo     Repository
	Uploader AttachmentUploader
	Notifier Notifier
	Metrics  IntakeMetrics
	Logger   *logging.Logger

	// CallTimeout bounds each external call (store write, upload batch,
	// email send). Zero disables the bound.
	CallTimeout time.Duration

	// MaxUploadBytes caps the request body size. Zero falls back to the
	// 32MB default.
	MaxUploadBytes int64
}

// Handler implements the lead intake pipeline: parse, normalize, validate,
// upload, persist, notify.
type Handler struct {
	repo           Repository
	uploader       AttachmentUploader
	notifier       Notifier
	metrics        IntakeMetrics
	logger         *logging.Logger
	callTimeout    time.Duration
	maxUploadBytes int64
}

// NewHandler creates a lead intake handler.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	maxUploadBytes := cfg.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{
		repo:           cfg.Repo,
		uploader:       cfg.Uploader,
		notifier:       cfg.Notifier,
		metrics:        cfg.Metrics,
		logger:         logger,
		callTimeout:    cfg.CallTimeout,
		maxUploadBytes: maxUploadBytes,
	}
}

type intakeResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// CreateLead handles POST /api/lead with either a JSON body or a
// multipart/form-data body carrying the same fields plus repeated "files"
// photo parts.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	outcome := h.createLead(w, r)
	if h.metrics != nil {
		h.metrics.ObserveIntake(outcome, time.Since(start).Seconds())
	}
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) string {
	lead, files, ok := h.parseRequest(w, r)
	if !ok {
		return "invalid_body"
	}

	if missing := MissingFields(lead); len(missing) > 0 {
		h.respond(w, http.StatusBadRequest, intakeResponse{
			Message: "Missing required fields.",
			Fields:  missing,
		})
		return "missing_fields"
	}

	if h.repo == nil {
		h.logger.Error("lead intake called without a configured repository")
		h.respond(w, http.StatusInternalServerError, intakeResponse{Message: "Lead intake is not configured."})
		return "not_configured"
	}

	if len(files) > 0 && h.uploader != nil {
		// The id must exist before the upload so object keys can be
		// scoped to the lead. Nothing is persisted yet, so an upload
		// failure leaves no orphan record behind.
		id := h.repo.NewID()

		ctx, cancel := h.callCtx(r.Context())
		attachments, err := h.uploader.UploadAll(ctx, id, files)
		cancel()
		if err != nil {
			h.logger.Error("failed to upload lead photos", "error", err, "lead_id", id)
			h.respond(w, http.StatusInternalServerError, intakeResponse{Message: "Failed to upload photos."})
			return "upload_failed"
		}

		lead.Attachments = attachments
		lead.FilePaths = attachmentPaths(attachments)

		ctx, cancel = h.callCtx(r.Context())
		err = h.repo.Put(ctx, id, &lead)
		cancel()
		if err != nil {
			h.logger.Error("failed to save lead", "error", err, "lead_id", id)
			h.respond(w, http.StatusInternalServerError, intakeResponse{Message: "Failed to save lead."})
			return "persist_failed"
		}
	} else {
		ctx, cancel := h.callCtx(r.Context())
		id, err := h.repo.Create(ctx, &lead)
		cancel()
		if err != nil {
			h.logger.Error("failed to save lead", "error", err)
			h.respond(w, http.StatusInternalServerError, intakeResponse{Message: "Failed to save lead."})
			return "persist_failed"
		}
		lead.ID = id
	}

	if h.notifier != nil {
		ctx, cancel := h.callCtx(r.Context())
		err := h.notifier.LeadSaved(ctx, &lead)
		cancel()
		if err != nil {
			// The lead is already saved; report the partial success
			// with a message distinct from the persistence failure.
			h.logger.Error("failed to send lead notification email", "error", err, "lead_id", lead.ID)
			h.respond(w, http.StatusInternalServerError, intakeResponse{Message: "Lead saved but notification email failed."})
			return "notify_failed"
		}
	}

	h.logger.Info("lead created", "lead_id", lead.ID, "job_type", lead.JobType, "attachments", len(lead.Attachments))
	h.respond(w, http.StatusOK, intakeResponse{Success: true})
	return "ok"
}

// parseRequest decodes the body into a normalized lead. The bool result is
// false when the body was malformed and a 400 has already been written.
// The body is capped at maxUploadBytes; an oversized request surfaces as a
// parse failure.
func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request) (Lead, []*multipart.FileHeader, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			h.logger.Warn("failed to parse multipart body", "error", err)
			h.respond(w, http.StatusBadRequest, intakeResponse{Message: "Invalid request body."})
			return Lead{}, nil, false
		}
		return NormalizeForm(r.MultipartForm.Value), r.MultipartForm.File["files"], true
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("failed to decode request body", "error", err)
		h.respond(w, http.StatusBadRequest, intakeResponse{Message: "Invalid request body."})
		return Lead{}, nil, false
	}
	return NormalizeJSON(body), nil, true
}

const defaultMaxUploadBytes = 32 << 20

func (h *Handler) respond(w http.ResponseWriter, status int, resp intakeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.callTimeout)
}

func attachmentPaths(attachments []Attachment) []string {
	if len(attachments) == 0 {
		return nil
	}
	paths := make([]string, len(attachments))
	for i, a := range attachments {
		paths[i] = a.Path
	}
	return paths
}
