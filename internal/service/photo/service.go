package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"wishlist-backend/internal/config"
)

var (
	ErrStorageUnavailable = errors.New("photo storage is not configured")
	ErrUnsupportedType    = errors.New("unsupported photo content type")
	ErrFileTooLarge       = errors.New("photo exceeds the maximum allowed size")
)

const maxPhotoSize = 10 << 20 // 10 MiB

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Service interface {
	Upload(ctx context.Context, userID int64, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error)
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload stores the photo and returns its public URL. The object key is
// random so uploads never collide or overwrite each other.
func (s *service) Upload(ctx context.Context, userID int64, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", ErrStorageUnavailable
	}

	ext, ok := allowedTypes[contentType]
	if !ok {
		if byName, found := allowedTypes[typeFromName(fileName)]; found {
			ext = byName
		} else {
			return "", ErrUnsupportedType
		}
	}
	if fileSize > maxPhotoSize {
		return "", ErrFileTooLarge
	}

	objectKey := fmt.Sprintf("wishes/%d/%s/%s%s",
		userID, time.Now().Format("2006/01"), uuid.NewString(), ext)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectKey, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return s.publicURL(objectKey), nil
}

func (s *service) publicURL(objectKey string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(objectKey))
}

func typeFromName(fileName string) string {
	switch path.Ext(fileName) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return ""
	}
}
