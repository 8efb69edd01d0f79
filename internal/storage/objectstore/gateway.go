// Package objectstore talks to the S3-compatible bucket that keeps incident
// photos and thumbnails.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/mariomediam/maps-backend/internal/config"
)

type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type UploadResult struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	Error   string `json:"error,omitempty"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Gateway reports expected failures in its results instead of returning
// errors; callers decide what a failed upload means.
type Gateway struct {
	client     S3API
	presigner  Presigner
	bucket     string
	defaultTTL time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewGateway(client S3API, presigner Presigner, bucket string, defaultTTL time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		client:     client,
		presigner:  presigner,
		bucket:     bucket,
		defaultTTL: defaultTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// NewR2Client builds the S3 client for a Cloudflare R2 endpoint.
func NewR2Client(ctx context.Context, cfg config.StorageConfig) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	return s3.New(s3.Options{
		Region:       awsCfg.Region,
		Credentials:  awsCfg.Credentials,
		HTTPClient:   awsCfg.HTTPClient,
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
	}), nil
}

func (g *Gateway) Upload(ctx context.Context, data []byte, incidentID int64, contentType, ext, keyOverride string) UploadResult {
	const op = "objectstore.Upload"
	log := g.logger.With(slog.String("op", op), slog.Int64("incident_id", incidentID))

	key := keyOverride
	if key == "" {
		key = PhotoKey(incidentID, g.now(), ext)
	}

	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error("put object failed", slog.String("key", key), slog.Any("error", err))
		return UploadResult{Success: false, Key: key, Error: err.Error()}
	}

	log.Debug("object uploaded", slog.String("key", key), slog.Int("size", len(data)))
	return UploadResult{Success: true, Key: key}
}

func (g *Gateway) Delete(ctx context.Context, key string) Result {
	const op = "objectstore.Delete"

	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		g.logger.Error("delete object failed",
			slog.String("op", op),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Message: "deleted " + key}
}

// SignedURL returns nil when the URL could not be produced. A ttl <= 0 uses
// the configured default.
func (g *Gateway) SignedURL(ctx context.Context, key string, ttl time.Duration) *string {
	const op = "objectstore.SignedURL"
	if ttl <= 0 {
		ttl = g.defaultTTL
	}

	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		g.logger.Warn("presign failed",
			slog.String("op", op),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return nil
	}
	return &req.URL
}

func (g *Gateway) Exists(ctx context.Context, key string) bool {
	_, err := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true
	}

	var nf *types.NotFound
	if !errors.As(err, &nf) {
		g.logger.Warn("head object failed",
			slog.String("op", "objectstore.Exists"),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	return false
}
