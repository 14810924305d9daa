package artifact

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Store uploads artifacts to an S3 bucket under the podcasts/ prefix.
type S3Store struct {
	svc    s3iface.S3API
	bucket string
}

// NewS3Store creates an S3-backed store.
func NewS3Store(svc s3iface.S3API, bucket string) *S3Store {
	return &S3Store{svc: svc, bucket: bucket}
}

// Save uploads data and returns the bucket URL of the object.
func (s *S3Store) Save(ctx context.Context, name string, data []byte, mediaType string) (string, error) {
	key := "podcasts/" + name

	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mediaType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
