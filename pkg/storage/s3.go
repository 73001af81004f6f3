package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tommy251/Atlas2.0/config"
)

// s3Disk is the S3-compatible object storage driver. Paths are
// "bucket/key/parts", matching the s3://bucket/key feed URL form.
type s3Disk struct {
	client *s3.Client
}

func newS3Disk() (*s3Disk, error) {
	region := config.S3Region()
	key := config.S3Key()
	secret := config.S3Secret()
	endpoint := config.S3Endpoint() // leave empty for real AWS

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if key != "" && secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("storage/s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	return &s3Disk{client: s3.NewFromConfig(cfg, clientOpts...)}, nil
}

// splitPath cuts "bucket/key/parts" into bucket and key.
func splitPath(path string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("storage/s3: path %q must be bucket/key", path)
	}
	return bucket, key, nil
}

func (d *s3Disk) Get(path string) ([]byte, error) {
	rc, err := d.GetStream(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (d *s3Disk) GetStream(path string) (io.ReadCloser, error) {
	bucket, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("storage/s3: get %s: %w", path, err)
	}
	return out.Body, nil
}

func (d *s3Disk) Exists(path string) bool {
	bucket, key, err := splitPath(path)
	if err != nil {
		return false
	}

	_, err = d.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err == nil
}
