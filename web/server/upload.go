package server

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
	"github.com/nfnt/resize"
)

const (
	uploadTimeout = 30 * time.Second
	thumbnailSize = 128
)

// UploadConfig holds the S3 settings read from the environment
type UploadConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// LoadUploadConfig reads the S3 settings from the environment, after loading
// a .env file if one is present next to the binary
func LoadUploadConfig() (*UploadConfig, error) {
	_ = godotenv.Load(path.Join(getEnv("RAYTRACER_ROOT_DIR", "."), ".env"))

	cfg := &UploadConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}
	return cfg, nil
}

// getEnv reads an environment variable with a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Uploader pushes finished renders and their thumbnails to S3
type Uploader struct {
	config *UploadConfig
	client *s3.S3
}

// NewUploaderFromEnv builds an uploader from the environment configuration
func NewUploaderFromEnv() (*Uploader, error) {
	cfg, err := LoadUploadConfig()
	if err != nil {
		return nil, err
	}
	return NewUploader(cfg)
}

// NewUploader builds an uploader for the given configuration
func NewUploader(cfg *UploadConfig) (*Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return &Uploader{config: cfg, client: s3.New(sess)}, nil
}

// Upload encodes the image as PNG and stores it under the given key,
// together with a bilinear thumbnail under thumbnails/<key>
func (u *Uploader) Upload(ctx context.Context, img image.Image, key string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := u.putObject(ctx, buf.Bytes(), key); err != nil {
		return err
	}

	thumbnail := resize.Resize(thumbnailSize, 0, img, resize.Bilinear)
	buf.Reset()
	if err := png.Encode(&buf, thumbnail); err != nil {
		return fmt.Errorf("failed to encode thumbnail for %s: %w", key, err)
	}
	return u.putObject(ctx, buf.Bytes(), path.Join("thumbnails", path.Base(key)))
}

func (u *Uploader) putObject(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}
