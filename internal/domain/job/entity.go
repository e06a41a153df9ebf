package job

import "time"

// Posting statuses.
const (
	PostingStatusDraft  = "draft"
	PostingStatusOpen   = "open"
	PostingStatusClosed = "closed"
)

// Application statuses, in tracking order.
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusInReview = "in_review"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type Posting struct {
	ID             string
	Title          string
	Department     string
	OfficeLocation string
	EmploymentType string
	Description    string
	SalaryMin      *int
	SalaryMax      *int
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Application struct {
	ID              string
	PostingID       string
	ApplicantUserID string
	FullName        string
	Email           string
	Phone           *string
	ResumeURL       string
	CoverLetter     *string
	Status          string
	ReviewNotes     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for listings.
	PostingTitle *string
}
