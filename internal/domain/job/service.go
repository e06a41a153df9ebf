package job

import "context"

type JobService interface {
	// Public careers surface.
	ListOpenPostings(ctx context.Context) ([]PostingResponse, error)
	GetPosting(ctx context.Context, id string) (PostingResponse, error)

	// Applicant surface.
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	ListMyApplications(ctx context.Context) ([]ApplicationResponse, error)

	// Back-office surface.
	CreatePosting(ctx context.Context, req CreatePostingRequest) (PostingResponse, error)
	UpdatePosting(ctx context.Context, id string, req UpdatePostingRequest) (PostingResponse, error)
	ListPostings(ctx context.Context) ([]PostingResponse, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationsResponse, error)
	UpdateApplicationStatus(ctx context.Context, req UpdateApplicationStatusRequest) (ApplicationResponse, error)
}
