package job

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/careers-backend-go/internal/domain/job"
)

type fakePostingRepo struct {
	postings map[string]job.Posting
	nextID   int
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: make(map[string]job.Posting)}
}

func (f *fakePostingRepo) Create(_ context.Context, p job.Posting) (job.Posting, error) {
	f.nextID++
	p.ID = fmt.Sprintf("post-%d", f.nextID)
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	f.postings[p.ID] = p
	return p, nil
}

func (f *fakePostingRepo) GetByID(_ context.Context, id string) (job.Posting, error) {
	if p, ok := f.postings[id]; ok {
		return p, nil
	}
	return job.Posting{}, job.ErrPostingNotFound
}

func (f *fakePostingRepo) ListOpen(_ context.Context) ([]job.Posting, error) {
	var result []job.Posting
	for _, p := range f.postings {
		if p.Status == job.PostingStatusOpen {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostingRepo) List(_ context.Context) ([]job.Posting, error) {
	var result []job.Posting
	for _, p := range f.postings {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePostingRepo) Update(_ context.Context, p job.Posting) (job.Posting, error) {
	if _, ok := f.postings[p.ID]; !ok {
		return job.Posting{}, job.ErrPostingNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	f.postings[p.ID] = p
	return p, nil
}

type fakeApplicationRepo struct {
	applications map[string]job.Application
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]job.Application)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, a job.Application) (job.Application, error) {
	for _, existing := range f.applications {
		if existing.PostingID == a.PostingID && existing.ApplicantUserID == a.ApplicantUserID {
			return job.Application{}, job.ErrAlreadyApplied
		}
	}
	f.nextID++
	a.ID = fmt.Sprintf("app-%d", f.nextID)
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	f.applications[a.ID] = a
	return a, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id string) (job.Application, error) {
	if a, ok := f.applications[id]; ok {
		return a, nil
	}
	return job.Application{}, job.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantUserID string) ([]job.Application, error) {
	var result []job.Application
	for _, a := range f.applications {
		if a.ApplicantUserID == applicantUserID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) ListByPosting(_ context.Context, postingID string) ([]job.Application, error) {
	var result []job.Application
	for _, a := range f.applications {
		if a.PostingID == postingID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) List(_ context.Context, _ job.ApplicationFilter) ([]job.Application, int64, error) {
	var result []job.Application
	for _, a := range f.applications {
		result = append(result, a)
	}
	return result, int64(len(result)), nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, a job.Application) (job.Application, error) {
	if _, ok := f.applications[a.ID]; !ok {
		return job.Application{}, job.ErrApplicationNotFound
	}
	a.UpdatedAt = time.Now().UTC()
	f.applications[a.ID] = a
	return a, nil
}

type fakeFileService struct {
	uploaded []string
	deleted  []string
}

func (f *fakeFileService) UploadResume(_ context.Context, applicantUserID string, _ io.Reader, filename string) (string, error) {
	path := "resumes/" + applicantUserID + "/" + filename
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *fakeFileService) DeleteFile(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFileService) GetFileURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "/files/" + path, nil
}

type fakeEmailService struct {
	received []string
	statuses []string
}

func (f *fakeEmailService) SendApplicationReceived(to, _, _ string) error {
	f.received = append(f.received, to)
	return nil
}

func (f *fakeEmailService) SendApplicationStatus(to, _, _, status string) error {
	f.statuses = append(f.statuses, to+":"+status)
	return nil
}

type resumeFile struct {
	*bytes.Reader
}

func (resumeFile) Close() error { return nil }

func applyRequest(postingID string) job.ApplyRequest {
	return job.ApplyRequest{
		PostingID:  postingID,
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		File:       resumeFile{bytes.NewReader([]byte("resume body"))},
		FileHeader: &multipart.FileHeader{Filename: "resume.pdf", Size: 1024},
	}
}

func newTestJobService(postings *fakePostingRepo, apps *fakeApplicationRepo, files *fakeFileService, mails *fakeEmailService) job.JobService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewJobService(postings, apps, files, mails, logger)
}

func openPosting(t *testing.T, repo *fakePostingRepo) job.Posting {
	t.Helper()
	p, err := repo.Create(context.Background(), job.Posting{
		Title:          "Backend Engineer",
		EmploymentType: "full_time",
		Description:    "Build things",
		Status:         job.PostingStatusOpen,
	})
	require.NoError(t, err)
	return p
}

func applicantContext(id string) context.Context {
	return context.WithValue(context.Background(), "user_id", id)
}

func TestApply_Success(t *testing.T) {
	postings := newFakePostingRepo()
	apps := newFakeApplicationRepo()
	files := &fakeFileService{}
	mails := &fakeEmailService{}
	svc := newTestJobService(postings, apps, files, mails)

	posting := openPosting(t, postings)

	resp, err := svc.Apply(applicantContext("user-1"), applyRequest(posting.ID))
	require.NoError(t, err)

	assert.Equal(t, job.ApplicationStatusApplied, resp.Status)
	require.NotNil(t, resp.PostingTitle)
	assert.Equal(t, "Backend Engineer", *resp.PostingTitle)
	assert.Len(t, files.uploaded, 1)
	assert.Equal(t, []string{"jane@example.com"}, mails.received)
}

func TestApply_PostingNotOpen(t *testing.T) {
	postings := newFakePostingRepo()
	apps := newFakeApplicationRepo()
	svc := newTestJobService(postings, apps, &fakeFileService{}, &fakeEmailService{})

	draft, err := postings.Create(context.Background(), job.Posting{
		Title:          "Draft Role",
		EmploymentType: "full_time",
		Description:    "Unpublished",
		Status:         job.PostingStatusDraft,
	})
	require.NoError(t, err)

	_, err = svc.Apply(applicantContext("user-1"), applyRequest(draft.ID))
	assert.ErrorIs(t, err, job.ErrPostingNotOpen)
}

func TestApply_Twice_CleansUpResume(t *testing.T) {
	postings := newFakePostingRepo()
	apps := newFakeApplicationRepo()
	files := &fakeFileService{}
	svc := newTestJobService(postings, apps, files, &fakeEmailService{})

	posting := openPosting(t, postings)
	ctx := applicantContext("user-1")

	_, err := svc.Apply(ctx, applyRequest(posting.ID))
	require.NoError(t, err)

	_, err = svc.Apply(ctx, applyRequest(posting.ID))
	assert.ErrorIs(t, err, job.ErrAlreadyApplied)

	// The second upload must not survive the failed insert.
	assert.Len(t, files.deleted, 1)
}

func TestApply_RejectsBadFileType(t *testing.T) {
	postings := newFakePostingRepo()
	svc := newTestJobService(postings, newFakeApplicationRepo(), &fakeFileService{}, &fakeEmailService{})

	posting := openPosting(t, postings)

	req := applyRequest(posting.ID)
	req.FileHeader = &multipart.FileHeader{Filename: "resume.exe", Size: 1024}

	_, err := svc.Apply(applicantContext("user-1"), req)
	assert.Error(t, err)
}

func TestUpdateApplicationStatus_TerminalDecisionSendsEmail(t *testing.T) {
	postings := newFakePostingRepo()
	apps := newFakeApplicationRepo()
	mails := &fakeEmailService{}
	svc := newTestJobService(postings, apps, &fakeFileService{}, mails)

	posting := openPosting(t, postings)
	created, err := svc.Apply(applicantContext("user-1"), applyRequest(posting.ID))
	require.NoError(t, err)

	resp, err := svc.UpdateApplicationStatus(context.Background(), job.UpdateApplicationStatusRequest{
		ID:     created.ID,
		Status: job.ApplicationStatusAccepted,
	})
	require.NoError(t, err)

	assert.Equal(t, job.ApplicationStatusAccepted, resp.Status)
	assert.Equal(t, []string{"jane@example.com:accepted"}, mails.statuses)
}

func TestUpdateApplicationStatus_InReviewStaysQuiet(t *testing.T) {
	postings := newFakePostingRepo()
	apps := newFakeApplicationRepo()
	mails := &fakeEmailService{}
	svc := newTestJobService(postings, apps, &fakeFileService{}, mails)

	posting := openPosting(t, postings)
	created, err := svc.Apply(applicantContext("user-1"), applyRequest(posting.ID))
	require.NoError(t, err)
	mails.received = nil

	_, err = svc.UpdateApplicationStatus(context.Background(), job.UpdateApplicationStatusRequest{
		ID:     created.ID,
		Status: job.ApplicationStatusInReview,
	})
	require.NoError(t, err)
	assert.Empty(t, mails.statuses)
}

func TestUpdateApplicationStatus_InvalidStatus(t *testing.T) {
	svc := newTestJobService(newFakePostingRepo(), newFakeApplicationRepo(), &fakeFileService{}, &fakeEmailService{})

	_, err := svc.UpdateApplicationStatus(context.Background(), job.UpdateApplicationStatusRequest{
		ID:     "app-1",
		Status: "shredded",
	})
	assert.Error(t, err)
}

func TestListOpenPostings_ExcludesDrafts(t *testing.T) {
	postings := newFakePostingRepo()
	svc := newTestJobService(postings, newFakeApplicationRepo(), &fakeFileService{}, &fakeEmailService{})
	ctx := context.Background()

	openPosting(t, postings)
	_, err := postings.Create(ctx, job.Posting{
		Title:          "Draft Role",
		EmploymentType: "contract",
		Description:    "Unpublished",
		Status:         job.PostingStatusDraft,
	})
	require.NoError(t, err)

	result, err := svc.ListOpenPostings(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Backend Engineer", result[0].Title)
}

func TestGetPosting_DraftReadsAsNotFound(t *testing.T) {
	postings := newFakePostingRepo()
	svc := newTestJobService(postings, newFakeApplicationRepo(), &fakeFileService{}, &fakeEmailService{})
	ctx := context.Background()

	draft, err := postings.Create(ctx, job.Posting{
		Title:          "Unannounced Role",
		EmploymentType: "full_time",
		Description:    "Not yet public",
		Status:         job.PostingStatusDraft,
	})
	require.NoError(t, err)

	_, err = svc.GetPosting(ctx, draft.ID)
	assert.ErrorIs(t, err, job.ErrPostingNotFound)

	open := openPosting(t, postings)
	resp, err := svc.GetPosting(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, open.ID, resp.ID)
}

func TestUpdatePosting_ResponseCarriesStoredTimestamp(t *testing.T) {
	postings := newFakePostingRepo()
	svc := newTestJobService(postings, newFakeApplicationRepo(), &fakeFileService{}, &fakeEmailService{})

	posting := openPosting(t, postings)

	newTitle := "Senior Backend Engineer"
	resp, err := svc.UpdatePosting(context.Background(), posting.ID, job.UpdatePostingRequest{Title: &newTitle})
	require.NoError(t, err)

	stored, err := postings.GetByID(context.Background(), posting.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.UpdatedAt.Format(time.RFC3339), resp.UpdatedAt)
}
