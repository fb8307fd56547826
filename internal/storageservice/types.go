package storageservice

import (
	"context"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PublicBaseURL   string
	AccessKeyID     string
	SecretAccessKey string
}

// Presigner is the subset of *s3.PresignClient used by the gateway.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ObjectDeleter is the subset of *s3.Client used by the gateway.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Gateway struct {
	presigner     Presigner
	deleter       ObjectDeleter
	bucket        string
	publicBaseURL string
	now           func() time.Time
}

type UploadRequest struct {
	FileName string `json:"fileName" validate:"required,max=1024"`
	FileType string `json:"fileType" validate:"required,max=255"`
}

// UploadTarget is what a client needs to PUT a file directly into the bucket.
type UploadTarget struct {
	PresignedURL string    `json:"presignedUrl"`
	FileName     string    `json:"fileName"`
	PublicURL    string    `json:"publicUrl"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
