package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minio/minio-go/v7"

	"banhmai_back_end/internal/database"
)

// UploadImage stores an object and returns its bucket path. Used for product
// photos and bank-transfer payment proofs.
func UploadImage(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")

	_, err := database.MinIO.PutObject(ctx, bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", bucket, objectName), nil
}

// GenerateSignedURL returns a presigned GET for an object path, so clients
// read images without bucket credentials.
func GenerateSignedURL(ctx context.Context, objectName string, ttl time.Duration) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")

	u, err := database.MinIO.PresignedGetObject(ctx, bucket, objectName, ttl, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
