package job

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/hirepath/careers-backend-go/internal/domain/auth"
	"github.com/hirepath/careers-backend-go/internal/domain/job"
	"github.com/hirepath/careers-backend-go/internal/pkg/email"
	"github.com/hirepath/careers-backend-go/internal/service/file"
)

type JobServiceImpl struct {
	job.PostingRepository
	job.ApplicationRepository
	fileService  file.FileService
	emailService email.EmailService
	logger       *slog.Logger
}

func NewJobService(
	postingRepository job.PostingRepository,
	applicationRepository job.ApplicationRepository,
	fileService file.FileService,
	emailService email.EmailService,
	logger *slog.Logger,
) job.JobService {
	return &JobServiceImpl{
		PostingRepository:     postingRepository,
		ApplicationRepository: applicationRepository,
		fileService:           fileService,
		emailService:          emailService,
		logger:                logger,
	}
}

func applicantIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id is missing from context: %w", auth.ErrUnauthenticated)
	}
	return userID, nil
}

// ListOpenPostings implements job.JobService.
func (j *JobServiceImpl) ListOpenPostings(ctx context.Context) ([]job.PostingResponse, error) {
	postings, err := j.PostingRepository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open postings: %w", err)
	}
	return toPostingResponses(postings), nil
}

// GetPosting implements job.JobService. This is the public fetch; the
// back-office reads through ListPostings and UpdatePosting instead, so a
// posting that is not open reads as not found here.
func (j *JobServiceImpl) GetPosting(ctx context.Context, id string) (job.PostingResponse, error) {
	posting, err := j.PostingRepository.GetByID(ctx, id)
	if err != nil {
		return job.PostingResponse{}, err
	}
	if posting.Status != job.PostingStatusOpen {
		return job.PostingResponse{}, job.ErrPostingNotFound
	}
	return toPostingResponse(posting), nil
}

// Apply implements job.JobService.
func (j *JobServiceImpl) Apply(ctx context.Context, req job.ApplyRequest) (job.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return job.ApplicationResponse{}, err
	}

	applicantID, err := applicantIDFromContext(ctx)
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	posting, err := j.PostingRepository.GetByID(ctx, req.PostingID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if posting.Status != job.PostingStatusOpen {
		return job.ApplicationResponse{}, job.ErrPostingNotOpen
	}

	resumePath, err := j.fileService.UploadResume(ctx, applicantID, req.File, req.FileHeader.Filename)
	if err != nil {
		return job.ApplicationResponse{}, fmt.Errorf("failed to store resume: %w", err)
	}

	created, err := j.ApplicationRepository.Create(ctx, job.Application{
		PostingID:       posting.ID,
		ApplicantUserID: applicantID,
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		ResumeURL:       resumePath,
		CoverLetter:     req.CoverLetter,
		Status:          job.ApplicationStatusApplied,
	})
	if err != nil {
		// The application row owns the resume reference; don't leave an
		// orphan file behind a failed insert.
		if cleanupErr := j.fileService.DeleteFile(ctx, resumePath); cleanupErr != nil {
			j.logger.Warn("failed to clean up orphaned resume", slog.String("path", resumePath), slog.Any("error", cleanupErr))
		}
		return job.ApplicationResponse{}, err
	}
	created.PostingTitle = &posting.Title

	if err := j.emailService.SendApplicationReceived(created.Email, created.FullName, posting.Title); err != nil {
		// Confirmation mail is best-effort; the application stands.
		j.logger.Warn("failed to send application confirmation email", slog.String("email", created.Email), slog.Any("error", err))
	}

	return toApplicationResponse(created), nil
}

// ListMyApplications implements job.JobService.
func (j *JobServiceImpl) ListMyApplications(ctx context.Context) ([]job.ApplicationResponse, error) {
	applicantID, err := applicantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := j.ApplicationRepository.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	result := make([]job.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		result = append(result, toApplicationResponse(app))
	}
	return result, nil
}

// CreatePosting implements job.JobService.
func (j *JobServiceImpl) CreatePosting(ctx context.Context, req job.CreatePostingRequest) (job.PostingResponse, error) {
	if err := req.Validate(); err != nil {
		return job.PostingResponse{}, err
	}

	created, err := j.PostingRepository.Create(ctx, job.Posting{
		Title:          strings.TrimSpace(req.Title),
		Department:     req.Department,
		OfficeLocation: req.OfficeLocation,
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Status:         req.Status,
	})
	if err != nil {
		return job.PostingResponse{}, err
	}

	return toPostingResponse(created), nil
}

// UpdatePosting implements job.JobService.
func (j *JobServiceImpl) UpdatePosting(ctx context.Context, id string, req job.UpdatePostingRequest) (job.PostingResponse, error) {
	if err := req.Validate(); err != nil {
		return job.PostingResponse{}, err
	}

	posting, err := j.PostingRepository.GetByID(ctx, id)
	if err != nil {
		return job.PostingResponse{}, err
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Department != nil {
		posting.Department = *req.Department
	}
	if req.OfficeLocation != nil {
		posting.OfficeLocation = *req.OfficeLocation
	}
	if req.EmploymentType != nil {
		posting.EmploymentType = *req.EmploymentType
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.SalaryMin != nil {
		posting.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		posting.SalaryMax = req.SalaryMax
	}
	if req.Status != nil {
		posting.Status = *req.Status
	}

	updated, err := j.PostingRepository.Update(ctx, posting)
	if err != nil {
		return job.PostingResponse{}, err
	}

	return toPostingResponse(updated), nil
}

// ListPostings implements job.JobService.
func (j *JobServiceImpl) ListPostings(ctx context.Context) ([]job.PostingResponse, error) {
	postings, err := j.PostingRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	return toPostingResponses(postings), nil
}

// ListApplications implements job.JobService.
func (j *JobServiceImpl) ListApplications(ctx context.Context, filter job.ApplicationFilter) (job.ListApplicationsResponse, error) {
	if err := filter.Validate(); err != nil {
		return job.ListApplicationsResponse{}, err
	}

	applications, total, err := j.ApplicationRepository.List(ctx, filter)
	if err != nil {
		return job.ListApplicationsResponse{}, fmt.Errorf("failed to list applications: %w", err)
	}

	result := make([]job.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		result = append(result, toApplicationResponse(app))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return job.ListApplicationsResponse{
		TotalCount:   total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
		Applications: result,
	}, nil
}

// UpdateApplicationStatus implements job.JobService.
func (j *JobServiceImpl) UpdateApplicationStatus(ctx context.Context, req job.UpdateApplicationStatusRequest) (job.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return job.ApplicationResponse{}, err
	}

	app, err := j.ApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	app.Status = req.Status
	if req.ReviewNotes != nil {
		app.ReviewNotes = req.ReviewNotes
	}

	app, err = j.ApplicationRepository.Update(ctx, app)
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	// Applicants are notified on the terminal decisions only.
	if req.Status == job.ApplicationStatusAccepted || req.Status == job.ApplicationStatusRejected {
		title := ""
		if app.PostingTitle != nil {
			title = *app.PostingTitle
		}
		if err := j.emailService.SendApplicationStatus(app.Email, app.FullName, title, req.Status); err != nil {
			j.logger.Warn("failed to send application status email", slog.String("email", app.Email), slog.Any("error", err))
		}
	}

	return toApplicationResponse(app), nil
}

func toPostingResponse(p job.Posting) job.PostingResponse {
	return job.PostingResponse{
		ID:             p.ID,
		Title:          p.Title,
		Department:     p.Department,
		OfficeLocation: p.OfficeLocation,
		EmploymentType: p.EmploymentType,
		Description:    p.Description,
		SalaryMin:      p.SalaryMin,
		SalaryMax:      p.SalaryMax,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostingResponses(postings []job.Posting) []job.PostingResponse {
	result := make([]job.PostingResponse, 0, len(postings))
	for _, p := range postings {
		result = append(result, toPostingResponse(p))
	}
	return result
}

func toApplicationResponse(a job.Application) job.ApplicationResponse {
	return job.ApplicationResponse{
		ID:           a.ID,
		PostingID:    a.PostingID,
		PostingTitle: a.PostingTitle,
		FullName:     a.FullName,
		Email:        a.Email,
		Phone:        a.Phone,
		ResumeURL:    a.ResumeURL,
		CoverLetter:  a.CoverLetter,
		Status:       a.Status,
		ReviewNotes:  a.ReviewNotes,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}
