package food

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
)

var (
	ErrImageRequired     = errors.New("image file is required")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrUpload wraps object storage failures so the handler can answer
	// with an explicit 500 instead of a store-style 400.
	ErrUpload = errors.New("image upload failed")
)

// Uploader is the object storage provider: it accepts one image and returns
// a public URL plus an opaque reference id.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (url string, id string, err error)
}

type Service interface {
	Create(ctx context.Context, in CreateReq, file multipart.File, header *multipart.FileHeader) (*Food, error)
	List() ([]Food, error)
	GetByID(id uint64) (*Food, error)
}

type service struct {
	repo     Repository
	uploader Uploader
	allowed  []string
}

func NewService(r Repository, up Uploader, allowedFormats []string) Service {
	return &service{repo: r, uploader: up, allowed: allowedFormats}
}

// Create uploads the image first; the record is only persisted once the
// provider has returned a URL and id, so both image fields are populated
// together or the record does not exist at all.
func (s *service) Create(ctx context.Context, in CreateReq, file multipart.File, header *multipart.FileHeader) (*Food, error) {
	if file == nil || header == nil {
		return nil, ErrImageRequired
	}
	if !s.formatAllowed(header.Filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path.Ext(header.Filename))
	}
	url, id, err := s.uploader.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	f := &Food{
		Title:        in.Title,
		Link:         in.Link,
		ImageURL:     url,
		ImageID:      id,
		Description:  in.Description,
		Type:         in.Type,
		RestaurantID: in.RestaurantID,
	}
	if err := s.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) List() ([]Food, error)            { return s.repo.GetAll() }
func (s *service) GetByID(id uint64) (*Food, error) { return s.repo.GetByID(id) }

func (s *service) formatAllowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	for _, a := range s.allowed {
		if ext == a {
			return true
		}
	}
	return false
}
