// server/internal/uploads/s3.go
package uploads

import (
	"context"
	"fmt"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store puts files in a bucket under <folder>/<name>.
type S3Store struct {
	Client           *s3.Client
	Bucket           string
	Region           string
	CloudFrontDomain string
	Endpoint         string
}

func NewS3Store(ctx context.Context, cfg config.S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		// MinIO and other S3-compatible servers
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		Client:           client,
		Bucket:           cfg.Bucket,
		Region:           cfg.Region,
		CloudFrontDomain: cfg.CloudFrontDomain,
		Endpoint:         cfg.Endpoint,
	}, nil
}

func (u *S3Store) Save(ctx context.Context, folder string, file Upload) (models.FileMeta, error) {
	name := uniqueName(file.OriginalName)
	contentType := contentTypeOrDefault(file.ContentType)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(objectKey(folder, name)),
		Body:        file.Body,
		ContentType: aws.String(contentType),
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}
	if _, err := u.Client.PutObject(ctx, input); err != nil {
		return models.FileMeta{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return models.FileMeta{
		FileName:     name,
		OriginalName: file.OriginalName,
		MimeType:     contentType,
		Size:         file.Size,
	}, nil
}

// URL prefers CloudFront, then a custom endpoint, then the public S3 host.
func (u *S3Store) URL(folder, fileName string) string {
	key := objectKey(folder, fileName)
	switch {
	case u.CloudFrontDomain != "":
		return fmt.Sprintf("https://%s/%s", u.CloudFrontDomain, key)
	case u.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", u.Endpoint, u.Bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, key)
	}
}

func objectKey(folder, name string) string {
	return folder + "/" + name
}
