package repositories

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rohits-web03/lessonplanner/internal/config"
)

// R2Archive stores exported lesson plans in an S3-compatible bucket
// (Cloudflare R2 in production).
type R2Archive struct {
	client *s3.Client
	bucket string
}

// NewR2Archive builds the client from static credentials and a custom endpoint.
func NewR2Archive(cfg config.R2Config) *R2Archive {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.BaseEndpoint())
		o.UsePathStyle = true
	})
	return &R2Archive{client: client, bucket: cfg.BucketName}
}

// Put uploads body under key.
func (a *R2Archive) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	return err
}

// PresignGet creates a presigned URL for downloading key.
func (a *R2Archive) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(a.client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Exists checks if a given object key exists in the bucket.
// Returns true if the object exists, false if not, and an error if something went wrong.
func (a *R2Archive) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		// Other error (e.g. auth, network)
		return false, err
	}
	return true, nil
}
