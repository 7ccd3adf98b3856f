package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string

	// Folder prefixes every object key.
	Folder    string
	MaxWidth  int
	MaxHeight int
	Crop      string
}

type Storage struct {
	cfg    Config
	client *minio.Client
}

func New(cfg Config) (*Storage, error) {
	cl, err := minio.New(strings.TrimPrefix(cfg.Endpoint, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &Storage{cfg: cfg, client: cl}, nil
}

func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// Upload stores one image and returns its public URL and opaque object key.
// The transform settings travel as object metadata; MinIO does not resize
// server side.
func (s *Storage) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, string, error) {
	key := path.Join(s.cfg.Folder, uuid.NewString()+strings.ToLower(path.Ext(filename)))
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"transform": fmt.Sprintf("%dx%d,%s", s.cfg.MaxWidth, s.cfg.MaxHeight, s.cfg.Crop),
		},
	})
	if err != nil {
		return "", "", err
	}
	return s.publicURL(key), key, nil
}

func (s *Storage) publicURL(key string) string {
	u := *s.client.EndpointURL()
	u.Path = path.Join("/", s.cfg.Bucket, key)
	return u.String()
}
