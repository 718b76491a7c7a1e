// Package s3 implements blobstore.Store on top of any S3-compatible service.
package s3

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"filescan/pkg/blobstore"
)

// Options configure the connection to the object store. Endpoint may be a
// bare host:port, in which case https is assumed.
type Options struct {
	Endpoint       string
	Region         string
	Bucket         string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

// Store is a thin wrapper around the AWS SDK v2 S3 client. Path-style
// addressing is kept configurable because most self-hosted S3
// implementations require it.
type Store struct {
	api     *awss3.Client
	presign *awss3.PresignClient
	bucket  string
}

var _ blobstore.Store = (*Store)(nil)

// New connects to the configured S3 endpoint with static credentials.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("blob endpoint is required")
	}
	if opts.Bucket == "" {
		return nil, fmt.Errorf("blob bucket is required")
	}

	endpoint := opts.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
		awsconfig.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	api := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		o.UsePathStyle = opts.ForcePathStyle
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &Store{
		api:     api,
		presign: awss3.NewPresignClient(api),
		bucket:  opts.Bucket,
	}, nil
}

// Put uploads contents under key. The SHA-256 digest travels both as a
// checksum (verified by the store) and as object metadata.
func (s *Store) Put(ctx context.Context, key string, contents []byte, sha256 string) error {
	checksum, err := encodeSHA256(sha256)
	if err != nil {
		return err
	}

	size := int64(len(contents))
	_, err = s.api.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:            &s.bucket,
		Key:               &key,
		Body:              bytes.NewReader(contents),
		ContentLength:     &size,
		ChecksumAlgorithm: s3types.ChecksumAlgorithmSha256,
		ChecksumSHA256:    &checksum,
		Metadata: map[string]string{
			"sha256": sha256,
		},
	})
	if err != nil {
		return fmt.Errorf("could not put object %q: %w", key, err)
	}

	return nil
}

// Delete removes key from the bucket. S3 delete is idempotent, so removing
// an absent key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("could not delete object %q: %w", key, err)
	}

	return nil
}

// PresignGet generates a presigned GET URL for key with the given TTL.
func (s *Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, func(opts *awss3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("could not presign object %q: %w", key, err)
	}

	return req.URL, nil
}

func encodeSHA256(hexDigest string) (string, error) {
	if hexDigest == "" {
		return "", fmt.Errorf("sha256 digest required")
	}
	raw, err := hex.DecodeString(hexDigest)
	if err != nil {
		return "", fmt.Errorf("invalid sha256 digest: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}
