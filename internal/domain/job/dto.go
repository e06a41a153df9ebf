package job

import (
	"mime/multipart"
	"strings"

	"github.com/hirepath/careers-backend-go/internal/pkg/validator"
)

type CreatePostingRequest struct {
	Title          string `json:"title"`
	Department     string `json:"department"`
	OfficeLocation string `json:"office_location"`
	EmploymentType string `json:"employment_type"`
	Description    string `json:"description"`
	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`
	Status         string `json:"status"`
}

func (r *CreatePostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	validTypes := []string{"full_time", "part_time", "contract", "internship"}
	if !validator.IsInSlice(r.EmploymentType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of: full_time, part_time, contract, internship",
		})
	}

	if r.Status == "" {
		r.Status = PostingStatusDraft
	}
	validStatuses := []string{PostingStatusDraft, PostingStatusOpen, PostingStatusClosed}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, open, closed",
		})
	}

	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_min",
			Message: "salary_min must not exceed salary_max",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePostingRequest struct {
	Title          *string `json:"title,omitempty"`
	Department     *string `json:"department,omitempty"`
	OfficeLocation *string `json:"office_location,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Description    *string `json:"description,omitempty"`
	SalaryMin      *int    `json:"salary_min,omitempty"`
	SalaryMax      *int    `json:"salary_max,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdatePostingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Status != nil {
		validStatuses := []string{PostingStatusDraft, PostingStatusOpen, PostingStatusClosed}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: draft, open, closed",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostingResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	OfficeLocation string `json:"office_location"`
	EmploymentType string `json:"employment_type"`
	Description    string `json:"description"`
	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type ApplyRequest struct {
	PostingID   string                `json:"-"`
	FullName    string                `json:"full_name"`
	Email       string                `json:"email"`
	Phone       *string               `json:"phone,omitempty"`
	CoverLetter *string               `json:"cover_letter,omitempty"`
	File        multipart.File        `json:"-"`
	FileHeader  *multipart.FileHeader `json:"-"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "resume",
			Message: "resume file is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
			errs = append(errs, validator.ValidationError{
				Field:   "resume",
				Message: "invalid file type: only pdf, doc, docx allowed",
			})
		} else if r.FileHeader.Size > 5<<20 { // 5MB
			errs = append(errs, validator.ValidationError{
				Field:   "resume",
				Message: "resume size must not exceed 5MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateApplicationStatusRequest struct {
	ID          string  `json:"-"`
	Status      string  `json:"status"`
	ReviewNotes *string `json:"review_notes,omitempty"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	validStatuses := []string{
		ApplicationStatusApplied,
		ApplicationStatusInReview,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: applied, in_review, accepted, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationResponse struct {
	ID           string  `json:"id"`
	PostingID    string  `json:"posting_id"`
	PostingTitle *string `json:"posting_title,omitempty"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	ResumeURL    string  `json:"resume_url"`
	CoverLetter  *string `json:"cover_letter,omitempty"`
	Status       string  `json:"status"`
	ReviewNotes  *string `json:"review_notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ApplicationFilter struct {
	PostingID *string `json:"posting_id,omitempty"`
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ApplicationFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{
			ApplicationStatusApplied,
			ApplicationStatusInReview,
			ApplicationStatusAccepted,
			ApplicationStatusRejected,
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: applied, in_review, accepted, rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListApplicationsResponse struct {
	TotalCount   int64                 `json:"total_count"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
	Applications []ApplicationResponse `json:"applications"`
}
