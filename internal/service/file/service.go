package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirepath/careers-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadResume stores an applicant's resume and returns its path.
	UploadResume(ctx context.Context, applicantUserID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadResume stores an applicant resume under resumes/{userID}/.
func (s *fileServiceImpl) UploadResume(ctx context.Context, applicantUserID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".pdf", ".doc", ".docx"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}

	if !isValid {
		return "", fmt.Errorf("invalid file type: only pdf, doc, docx allowed")
	}

	contentType := "application/octet-stream"
	if ext == ".pdf" {
		contentType = "application/pdf"
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%d%s", uniqueID, time.Now().Unix(), ext)
	path := filepath.Join("resumes", applicantUserID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
