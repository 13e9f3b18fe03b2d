package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	// FieldsStoragePath prefixes every uploaded field image key.
	FieldsStoragePath = "fields"

	minURLParts = 2
)

var (
	ErrInvalidFileURL     = errors.New("storage: invalid file URL")
	ErrFailedToUploadFile = errors.New("storage: failed to upload file")
	ErrFailedToDeleteFile = errors.New("storage: failed to delete file")
)

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	BucketName      string
}

// Client talks to an S3-compatible bucket for field images.
type Client struct {
	s3Client    *s3.Client
	bucketName  string
	endpointURL string
}

func NewClient(cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL)
		o.UsePathStyle = true
	})

	return &Client{
		s3Client:    s3Client,
		bucketName:  cfg.BucketName,
		endpointURL: strings.TrimSuffix(cfg.EndpointURL, "/"),
	}, nil
}

// UploadFile stores the file under a unique key and returns its public URL.
func (c *Client) UploadFile(ctx context.Context, file multipart.File, filename string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", FieldsStoragePath, uuid.NewString(), filepath.Ext(filename))

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToUploadFile, err)
	}

	return fmt.Sprintf("%s/%s/%s", c.endpointURL, c.bucketName, key), nil
}

// DeleteFile removes a previously uploaded file given its public URL.
func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	key, err := c.keyFromURL(fileURL)
	if err != nil {
		return err
	}

	_, err = c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteFile, err)
	}

	return nil
}

func (c *Client) keyFromURL(fileURL string) (string, error) {
	parts := strings.SplitN(fileURL, c.bucketName+"/", minURLParts)
	if len(parts) < minURLParts || parts[1] == "" {
		return "", ErrInvalidFileURL
	}

	return parts[1], nil
}
