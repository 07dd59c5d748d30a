// Package avatar turns the avatar reference stored on a user record into a
// URL the user can open. References are either absolute URLs, returned as-is,
// or object keys in an S3-compatible bucket (Supabase storage, MinIO), which
// are presigned.
package avatar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Config describes the bucket holding avatar objects. An empty Bucket
// disables presigning.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Expires      time.Duration
}

type Resolver struct {
	cfg     S3Config
	presign *s3.PresignClient
}

// NewResolver builds a resolver. With an empty bucket no AWS config is loaded
// and object keys are returned unchanged.
func NewResolver(ctx context.Context, cfg S3Config) (*Resolver, error) {
	r := &Resolver{cfg: cfg}
	if cfg.Bucket == "" {
		return r, nil
	}
	if r.cfg.Expires <= 0 {
		r.cfg.Expires = 15 * time.Minute
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})
	r.presign = s3.NewPresignClient(client)
	return r, nil
}

// Resolve returns a viewable URL for ref, or "" when ref is empty.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", nil
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref, nil
	case r.presign == nil:
		return ref, nil
	}

	req, err := presignGetObject(r.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.cfg.Bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(r.cfg.Expires))
	if err != nil {
		return "", fmt.Errorf("presign avatar %q: %w", ref, err)
	}
	return req.URL, nil
}
