package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirepath/careers-backend-go/internal/domain/job"
	"github.com/hirepath/careers-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	// Public careers surface.
	ListOpenPostings(w http.ResponseWriter, r *http.Request)
	GetPosting(w http.ResponseWriter, r *http.Request)

	// Applicant surface.
	Apply(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)

	// Back-office surface.
	CreatePosting(w http.ResponseWriter, r *http.Request)
	UpdatePosting(w http.ResponseWriter, r *http.Request)
	ListPostings(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{
		jobService: jobService,
	}
}

// ListOpenPostings implements JobHandler.
func (h *jobHandlerImpl) ListOpenPostings(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListOpenPostings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPosting implements JobHandler.
func (h *jobHandlerImpl) GetPosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Posting ID is required", nil)
		return
	}

	result, err := h.jobService.GetPosting(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Apply implements JobHandler. Multipart form: text fields plus a resume
// file under "resume".
func (h *jobHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := job.ApplyRequest{
		PostingID: chi.URLParam(r, "id"),
		FullName:  r.FormValue("full_name"),
		Email:     r.FormValue("email"),
	}
	if v := r.FormValue("phone"); v != "" {
		req.Phone = &v
	}
	if v := r.FormValue("cover_letter"); v != "" {
		req.CoverLetter = &v
	}

	file, fileHeader, err := r.FormFile("resume")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Resume file is required", nil)
			return
		}
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()
	req.File = file
	req.FileHeader = fileHeader

	result, err := h.jobService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", result)
}

// ListMyApplications implements JobHandler.
func (h *jobHandlerImpl) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListMyApplications(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreatePosting implements JobHandler.
func (h *jobHandlerImpl) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req job.CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobService.CreatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Posting created", result)
}

// UpdatePosting implements JobHandler.
func (h *jobHandlerImpl) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Posting ID is required", nil)
		return
	}

	var req job.UpdatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jobService.UpdatePosting(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Posting updated", result)
}

// ListPostings implements JobHandler.
func (h *jobHandlerImpl) ListPostings(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.ListPostings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListApplications implements JobHandler.
func (h *jobHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter job.ApplicationFilter
	if v := q.Get("posting_id"); v != "" {
		filter.PostingID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'page' must be a number", nil)
			return
		}
		filter.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'limit' must be a number", nil)
			return
		}
		filter.Limit = limit
	}

	result, err := h.jobService.ListApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Applications, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// UpdateApplicationStatus implements JobHandler.
func (h *jobHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	var req job.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.jobService.UpdateApplicationStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application updated", result)
}
