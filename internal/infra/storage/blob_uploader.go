// Package storage uploads user media to object storage through gocloud blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"foodies/config"
	"foodies/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers file://
	_ "gocloud.dev/blob/memblob"  // registers mem://
	"gocloud.dev/blob/s3blob"
)

const uploadCacheControl = "public, max-age=31536000"

// UploaderParams defines the dependencies for the object uploader.
type UploaderParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobUploader opens the configured bucket and closes it when the app stops.
func NewBlobUploader(params UploaderParams) (service.ObjectUploader, error) {
	cfg := params.Config.Storage

	bucket, err := openBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" && strings.EqualFold(cfg.Driver, "s3") {
		baseURL = "https://" + cfg.S3.Bucket + ".s3." + cfg.S3.Region + ".amazonaws.com"
	}

	params.Logger.Info("Object storage ready", slog.String("driver", cfg.Driver), slog.String("public_base_url", baseURL))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newBlobUploader(bucket, baseURL), nil
}

func newBlobUploader(bucket *blob.Bucket, publicBaseURL string) *blobUploader {
	return &blobUploader{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func openBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	if !strings.EqualFold(cfg.Driver, "s3") {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3.Region)}
	if cfg.S3.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	bucket, err := s3blob.OpenBucket(ctx, client, cfg.S3.Bucket, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open s3 bucket %s", cfg.S3.Bucket)
	}

	return bucket, nil
}

// Upload writes body under key and returns its public URL.
func (u *blobUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	// Cancelling the writer's context discards a partial upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := u.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: uploadCacheControl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finish upload %s", key)
	}

	return u.publicURL(key), nil
}

func (u *blobUploader) publicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return u.publicBaseURL + "/" + strings.Join(segments, "/")
}
