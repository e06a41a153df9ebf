package job

import "context"

type PostingRepository interface {
	Create(ctx context.Context, p Posting) (Posting, error)
	GetByID(ctx context.Context, id string) (Posting, error)
	// ListOpen returns open postings for the public careers surface.
	ListOpen(ctx context.Context) ([]Posting, error)
	// List returns all postings for the back-office.
	List(ctx context.Context) ([]Posting, error)
	// Update writes all mutable fields and returns the stored row so the
	// caller sees the database-assigned updated_at.
	Update(ctx context.Context, p Posting) (Posting, error)
}

type ApplicationRepository interface {
	// Create inserts an application; the (posting_id, applicant_user_id)
	// unique constraint is translated to ErrAlreadyApplied.
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	ListByApplicant(ctx context.Context, applicantUserID string) ([]Application, error)
	ListByPosting(ctx context.Context, postingID string) ([]Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]Application, int64, error)
	// Update writes the review fields and returns the stored row so the
	// caller sees the database-assigned updated_at.
	Update(ctx context.Context, a Application) (Application, error)
}
