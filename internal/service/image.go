package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fam-nudger/backend/config"
)

// ImageService stores uploaded ingredient-label photos in S3 so analyses can
// be revisited against the original label.
type ImageService struct {
	s3Config *config.S3Config
	logger   *zap.Logger
}

var _ IImageService = (*ImageService)(nil)

func NewImageService(s3Config *config.S3Config, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{s3Config: s3Config, logger: logger}
}

// UploadLabelImage uploads the image bytes under a fresh key and returns the
// public URL.
func (s *ImageService) UploadLabelImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	key := fmt.Sprintf("label-images/%s%s", uuid.New().String(), extensionFor(contentType))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	s.logger.Info("uploaded label image", zap.String("url", publicURL))
	return publicURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
