package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"innflow/internal/media"
	"innflow/internal/onboarding/models"
	"innflow/internal/onboarding/service"
	"innflow/internal/platform/middleware"
	"innflow/internal/transport/http/shared"
	dErrors "innflow/pkg/domain-errors"
)

// multipartMemory is the in-memory threshold for image uploads; larger
// parts spill to disk.
const multipartMemory = 32 << 20

// Service defines the onboarding operations the handlers expose.
type Service interface {
	Submit(ctx context.Context, sub service.Submission) (*models.RegistrationRequest, error)
	IngestImages(ctx context.Context, requestID int64, uploads []media.Upload) (*models.ImageIngestResult, error)
	Get(ctx context.Context, actorID, requestID int64) (*models.RegistrationRequest, error)
	List(ctx context.Context, actorID int64, filter models.RequestFilter) ([]models.RegistrationRequest, error)
	Approve(ctx context.Context, actorID, requestID int64) (*models.ApprovalResult, error)
	Reject(ctx context.Context, actorID, requestID int64, reason string) error
	Delete(ctx context.Context, actorID, requestID int64) error
	Statistics(ctx context.Context, actorID int64) (*models.Statistics, error)
}

// Handler exposes the onboarding endpoints: public intake and image upload,
// and the authenticated review surface.
type Handler struct {
	svc       Service
	logger    *slog.Logger
	validate  *validator.Validate
	validator middleware.TokenValidator
}

// New creates the onboarding Handler.
func New(svc Service, logger *slog.Logger, tokenValidator middleware.TokenValidator) *Handler {
	return &Handler{
		svc:       svc,
		logger:    logger,
		validate:  validator.New(),
		validator: tokenValidator,
	}
}

// Register registers the onboarding routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	public := chi.NewRouter()
	public.Use(middleware.Recovery(h.logger))
	public.Use(middleware.RequestID)
	public.Use(middleware.Logger(h.logger))
	public.Use(middleware.Timeout(60 * time.Second))
	public.Post("/onboarding/requests", h.handleSubmit)
	public.Post("/onboarding/requests/{id}/images", h.handleUploadImages)
	r.Mount("/", public)

	admin := chi.NewRouter()
	admin.Use(middleware.Recovery(h.logger))
	admin.Use(middleware.RequestID)
	admin.Use(middleware.Logger(h.logger))
	admin.Use(middleware.Timeout(30 * time.Second))
	admin.Use(middleware.RequireAuth(h.validator, h.logger))
	admin.Get("/requests", h.handleList)
	admin.Get("/requests/{id}", h.handleGet)
	admin.Post("/requests/{id}/approve", h.handleApprove)
	admin.Post("/requests/{id}/reject", h.handleReject)
	admin.Delete("/requests/{id}", h.handleDelete)
	admin.Get("/statistics", h.handleStatistics)
	r.Mount("/admin/onboarding", admin)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, "invalid registration payload"))
		return
	}

	created, err := h.svc.Submit(r.Context(), req.toSubmission())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toRequestResponse(created))
}

func (h *Handler) handleUploadImages(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid multipart body"))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	files := r.MultipartForm.File["images"]
	uploads, err := readUploads(files)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	result, err := h.svc.IngestImages(r.Context(), requestID, uploads)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toIngestResponse(result))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := listFilter(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	requests, err := h.svc.List(r.Context(), middleware.GetUserID(r.Context()), filter)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	out := make([]requestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toRequestResponse(&requests[i]))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{"requests": out})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	req, err := h.svc.Get(r.Context(), middleware.GetUserID(r.Context()), requestID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toRequestResponse(req))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	result, err := h.svc.Approve(r.Context(), middleware.GetUserID(r.Context()), requestID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toApprovalResponse(result))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "a rejection reason is required"))
		return
	}
	if err := h.svc.Reject(r.Context(), middleware.GetUserID(r.Context()), requestID, req.Reason); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), middleware.GetUserID(r.Context()), requestID); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toStatisticsResponse(stats))
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "invalid request id")
	}
	return id, nil
}

func listFilter(r *http.Request) (models.RequestFilter, error) {
	var filter models.RequestFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, dErrors.New(dErrors.CodeBadRequest, "invalid limit")
		}
		filter.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, dErrors.New(dErrors.CodeBadRequest, "invalid offset")
		}
		filter.Offset = offset
	}
	return filter, nil
}

func readUploads(files []*multipart.FileHeader) ([]media.Upload, error) {
	uploads := make([]media.Upload, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "unreadable image part")
		}
		data, err := io.ReadAll(io.LimitReader(file, media.MaxImageBytes+1))
		_ = file.Close()
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "unreadable image part")
		}
		uploads = append(uploads, media.Upload{Filename: fh.Filename, Data: data})
	}
	return uploads, nil
}
