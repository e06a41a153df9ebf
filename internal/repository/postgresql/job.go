package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hirepath/careers-backend-go/internal/domain/job"
	"github.com/hirepath/careers-backend-go/internal/pkg/database"
)

type postingRepository struct {
	db *database.DB
}

func NewPostingRepository(db *database.DB) job.PostingRepository {
	return &postingRepository{db: db}
}

const postingColumns = `id, title, department, office_location, employment_type, description,
	salary_min, salary_max, status, created_at, updated_at`

func scanPosting(row pgx.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID, &p.Title, &p.Department, &p.OfficeLocation, &p.EmploymentType,
		&p.Description, &p.SalaryMin, &p.SalaryMax, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements job.PostingRepository.
func (r *postingRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (title, department, office_location, employment_type, description, salary_min, salary_max, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Title, p.Department, p.OfficeLocation, p.EmploymentType,
		p.Description, p.SalaryMin, p.SalaryMax, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return job.Posting{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return p, nil
}

// GetByID implements job.PostingRepository.
func (r *postingRepository) GetByID(ctx context.Context, id string) (job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPosting(q.QueryRow(ctx, `SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrPostingNotFound
		}
		return job.Posting{}, fmt.Errorf("failed to get job posting by ID: %w", err)
	}

	return p, nil
}

// ListOpen implements job.PostingRepository.
func (r *postingRepository) ListOpen(ctx context.Context) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+postingColumns+` FROM job_postings WHERE status = 'open' ORDER BY created_at DESC`)
}

// List implements job.PostingRepository.
func (r *postingRepository) List(ctx context.Context) ([]job.Posting, error) {
	return r.list(ctx, `SELECT `+postingColumns+` FROM job_postings ORDER BY created_at DESC`)
}

func (r *postingRepository) list(ctx context.Context, query string) ([]job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var result []job.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting row: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

// Update implements job.PostingRepository.
func (r *postingRepository) Update(ctx context.Context, p job.Posting) (job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings SET
			title = $2,
			department = $3,
			office_location = $4,
			employment_type = $5,
			description = $6,
			salary_min = $7,
			salary_max = $8,
			status = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.Title, p.Department, p.OfficeLocation, p.EmploymentType,
		p.Description, p.SalaryMin, p.SalaryMax, p.Status,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrPostingNotFound
		}
		return job.Posting{}, fmt.Errorf("failed to update job posting: %w", err)
	}

	return p, nil
}

type applicationRepository struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) job.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `a.id, a.posting_id, a.applicant_user_id, a.full_name, a.email, a.phone,
	a.resume_url, a.cover_letter, a.status, a.review_notes, a.created_at, a.updated_at`

func scanApplication(row pgx.Row, withPostingTitle bool) (job.Application, error) {
	var app job.Application
	dest := []interface{}{
		&app.ID, &app.PostingID, &app.ApplicantUserID, &app.FullName, &app.Email, &app.Phone,
		&app.ResumeURL, &app.CoverLetter, &app.Status, &app.ReviewNotes, &app.CreatedAt, &app.UpdatedAt,
	}
	if withPostingTitle {
		dest = append(dest, &app.PostingTitle)
	}
	return app, row.Scan(dest...)
}

// Create implements job.ApplicationRepository.
func (r *applicationRepository) Create(ctx context.Context, app job.Application) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_applications (posting_id, applicant_user_id, full_name, email, phone, resume_url, cover_letter, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.PostingID, app.ApplicantUserID, app.FullName, app.Email,
		app.Phone, app.ResumeURL, app.CoverLetter, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return job.Application{}, job.ErrAlreadyApplied
		}
		return job.Application{}, fmt.Errorf("failed to create job application: %w", err)
	}

	return app, nil
}

// GetByID implements job.ApplicationRepository.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + `, p.title
		FROM job_applications a
		LEFT JOIN job_postings p ON p.id = a.posting_id
		WHERE a.id = $1`

	app, err := scanApplication(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, fmt.Errorf("failed to get job application by ID: %w", err)
	}

	return app, nil
}

// ListByApplicant implements job.ApplicationRepository.
func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantUserID string) ([]job.Application, error) {
	query := `SELECT ` + applicationColumns + `, p.title
		FROM job_applications a
		LEFT JOIN job_postings p ON p.id = a.posting_id
		WHERE a.applicant_user_id = $1
		ORDER BY a.created_at DESC`
	return r.listWithTitle(ctx, query, applicantUserID)
}

// ListByPosting implements job.ApplicationRepository.
func (r *applicationRepository) ListByPosting(ctx context.Context, postingID string) ([]job.Application, error) {
	query := `SELECT ` + applicationColumns + `, p.title
		FROM job_applications a
		LEFT JOIN job_postings p ON p.id = a.posting_id
		WHERE a.posting_id = $1
		ORDER BY a.created_at DESC`
	return r.listWithTitle(ctx, query, postingID)
}

func (r *applicationRepository) listWithTitle(ctx context.Context, query string, args ...interface{}) ([]job.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	var result []job.Application
	for rows.Next() {
		app, err := scanApplication(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application row: %w", err)
		}
		result = append(result, app)
	}

	return result, rows.Err()
}

// List implements job.ApplicationRepository.
func (r *applicationRepository) List(ctx context.Context, filter job.ApplicationFilter) ([]job.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.PostingID != nil && *filter.PostingID != "" {
		baseWhere += fmt.Sprintf(" AND a.posting_id = $%d", argIdx)
		args = append(args, *filter.PostingID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM job_applications a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job applications: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := `SELECT ` + applicationColumns + `, p.title
		FROM job_applications a
		LEFT JOIN job_postings p ON p.id = a.posting_id
		WHERE ` + baseWhere +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	var result []job.Application
	for rows.Next() {
		app, err := scanApplication(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job application row: %w", err)
		}
		result = append(result, app)
	}

	return result, total, rows.Err()
}

// Update implements job.ApplicationRepository.
func (r *applicationRepository) Update(ctx context.Context, app job.Application) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_applications SET
			status = $2,
			review_notes = $3,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, app.ID, app.Status, app.ReviewNotes).Scan(&app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, fmt.Errorf("failed to update job application: %w", err)
	}

	return app, nil
}
