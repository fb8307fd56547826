package storageservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sushihentaime/wayfarer/internal/common"
)

const (
	UploadExpiry = time.Hour

	uploadCacheControl = "max-age=31536000"
	uploadedBy         = "travel-blog-admin"
)

var ErrEmptyKey = errors.New("could not resolve storage key from url")

// New builds a gateway backed by S3 or any S3 compatible endpoint.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewGateway(s3.NewPresignClient(client), client, cfg.Bucket, cfg.PublicBaseURL), nil
}

func NewGateway(presigner Presigner, deleter ObjectDeleter, bucket, publicBaseURL string) *Gateway {
	return &Gateway{
		presigner:     presigner,
		deleter:       deleter,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// RequestUploadTarget presigns a single PUT of fileType content to a fresh key derived from fileName.
// The URL expires after UploadExpiry.
func (g *Gateway) RequestUploadTarget(ctx context.Context, req *UploadRequest) (*UploadTarget, error) {
	v := common.NewValidator()
	v.Struct(req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	now := g.now()
	key := fmt.Sprintf("%d-%s", now.UnixNano(), path.Base(req.FileName))

	input := &s3.PutObjectInput{
		Bucket:       aws.String(g.bucket),
		Key:          aws.String(key),
		ContentType:  aws.String(req.FileType),
		CacheControl: aws.String(uploadCacheControl),
		Metadata:     map[string]string{"uploaded-by": uploadedBy},
	}

	presigned, err := g.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(UploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("could not presign upload: %w", err)
	}

	return &UploadTarget{
		PresignedURL: presigned.URL,
		FileName:     key,
		PublicURL:    g.PublicURL(key),
		ExpiresAt:    now.Add(UploadExpiry).UTC(),
	}, nil
}

// DeleteByURL deletes the object a public or presigned URL points to.
func (g *Gateway) DeleteByURL(ctx context.Context, fileURL string) error {
	key := KeyFromURL(fileURL)
	if key == "" {
		return ErrEmptyKey
	}

	_, err := g.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("could not delete object %q: %w", key, err)
	}

	return nil
}

// PublicURL does not check that the object exists.
func (g *Gateway) PublicURL(key string) string {
	return g.publicBaseURL + "/" + key
}

// KeyFromURL returns the last path segment of fileURL, ignoring any query string.
func KeyFromURL(fileURL string) string {
	p := fileURL
	if u, err := url.Parse(fileURL); err == nil {
		p = u.Path
	}

	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}

	return p
}
