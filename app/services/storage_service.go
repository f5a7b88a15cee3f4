package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const MaxImageSize = 5 * 1024 * 1024

var (
	ErrInvalidImageType = errors.New("only JPEG, PNG and WebP images are accepted")
	ErrImageTooLarge    = errors.New("image exceeds the 5MB limit")
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// StorageService uploads product images to the object-storage bucket and
// hands back the public URL that goes into image_url/images/colors[].images.
type StorageService struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewStorageService(client *s3.Client, bucket, publicBaseURL string) *StorageService {
	return &StorageService{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// UploadImage validates the file before the PutObject call; a rejected file
// never reaches the bucket.
func (s *StorageService) UploadImage(ctx context.Context, file io.Reader, contentType string, size int64) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrInvalidImageType
	}
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	objectKey := fmt.Sprintf("product-images/%s-%d.%s",
		uuid.NewString()[:8], time.Now().UnixMilli(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          file,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to storage: %w", err)
	}

	return s.publicBaseURL + "/" + objectKey, nil
}
