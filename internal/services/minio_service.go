package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"content-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const imagePrefix = "content-images/"

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		expiry:    cfg.UploadExpiry,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s*"]
			}
		]
	}`, s.bucket, imagePrefix)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read for content images")
	return nil
}

// GeneratePresignedURL returns a PUT URL for a new content image and the
// public URL the image will be served from once uploaded.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectName := newObjectName(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + objectName

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

// OwnsURL reports whether imageURL points at an image uploaded through this service.
func (s *MinIOService) OwnsURL(imageURL string) bool {
	_, ok := objectNameFromURL(imageURL, s.publicURL)
	return ok
}

func (s *MinIOService) DeleteImage(ctx context.Context, imageURL string) error {
	objectName, ok := objectNameFromURL(imageURL, s.publicURL)
	if !ok {
		return fmt.Errorf("image %q is not stored in bucket %s", imageURL, s.bucket)
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectName", objectName).Error("Failed to delete image")
		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.logger.WithField("objectName", objectName).Info("Image deleted successfully from MinIO")
	return nil
}

func newObjectName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	if nameWithoutExt == "" || nameWithoutExt == "." {
		nameWithoutExt = "image"
	}
	return fmt.Sprintf("%s%s_%s%s", imagePrefix, nameWithoutExt, uuid.New().String()[:8], ext)
}

// objectNameFromURL strips the public base and any query string. Only names
// under the image prefix are accepted.
func objectNameFromURL(imageURL, publicBase string) (string, bool) {
	if publicBase == "" || !strings.HasPrefix(imageURL, publicBase+"/") {
		return "", false
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return "", false
	}
	base, err := url.Parse(publicBase)
	if err != nil {
		return "", false
	}

	name := strings.TrimPrefix(path.Clean(u.Path), path.Clean(base.Path))
	name = strings.TrimPrefix(name, "/")
	if !strings.HasPrefix(name, imagePrefix) || name == imagePrefix {
		return "", false
	}
	return name, true
}
