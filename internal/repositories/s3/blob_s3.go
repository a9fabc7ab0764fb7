package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/kamasanicharan/BoldScholars/internal/config"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

// BlobS3 stores content uploads in an S3-compatible bucket and hands back
// public retrieval URLs.
type BlobS3 struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewBlobS3(cfg config.SpacesConfig) (repositories.BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load blob store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	baseURL := cfg.CDNBaseURL
	if baseURL == "" {
		baseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &BlobS3{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

var reIllegalFilenameChars = regexp.MustCompile(`[^\w\-.]`)

// SanitizeFilename strips characters that are unsafe in object keys.
func SanitizeFilename(filename string) string {
	if filename == "" {
		return "unnamed"
	}
	return reIllegalFilenameChars.ReplaceAllString(filename, "_")
}

func blobKey(id, filename string) string {
	return fmt.Sprintf("%s/%s", id, filename)
}

// Store uploads the blob and returns its durable retrieval URL. Callers
// must not write any metadata record until Store has returned nil.
func (b *BlobS3) Store(ctx context.Context, in repositories.BlobStoreInput) (string, error) {
	if len(in.Content) == 0 {
		return "", fmt.Errorf("no bytes of data were provided")
	}
	if in.ContentType == "" {
		return "", fmt.Errorf("no content type provided")
	}

	filename := SanitizeFilename(in.Filename)
	key := blobKey(uuid.New().String(), filename)

	upload := func() error {
		_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &b.bucket,
			Key:         &key,
			Body:        bytes.NewReader(in.Content),
			ACL:         types.ObjectCannedACLPublicRead,
			ContentType: &in.ContentType,
		})
		return err
	}

	err := upload()
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) && apiError.ErrorCode() == "NoSuchBucket" {
			_, err := b.client.CreateBucket(ctx, &s3.CreateBucketInput{
				Bucket: &b.bucket,
			})
			if err != nil {
				return "", fmt.Errorf("failed to create content bucket: %w", err)
			}
			if err := upload(); err != nil {
				return "", fmt.Errorf("failed to upload blob: %w", err)
			}
		} else {
			return "", fmt.Errorf("failed to upload blob: %w", err)
		}
	}

	return b.baseURL + "/" + key, nil
}

// Delete removes the object behind a previously returned URL. Best effort:
// the caller deletes metadata regardless, an orphaned blob is harmless.
func (b *BlobS3) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, b.baseURL+"/")
	if !ok {
		return fmt.Errorf("url %q does not belong to this blob store", url)
	}

	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}
