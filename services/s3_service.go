package services

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/denavigator/Brand-app/config"
)

// S3Interface defines the interface for mirroring stored files to S3
type S3Interface interface {
	// MirrorFile uploads a local file under the given object key
	MirrorFile(ctx context.Context, localPath, key string) error
}

// S3Service mirrors uploaded logos and generated mockups to a bucket.
// Mirroring is best-effort: the checkout workflow never depends on it.
type S3Service struct {
	client *s3.Client
	bucket string
}

var s3ServiceInstance S3Interface

// InitS3Service initializes the S3 mirror when a bucket is configured.
// Without AWS_S3_BUCKET the mirror stays disabled and (nil, nil) is
// returned.
func InitS3Service() (S3Interface, error) {
	cfg := appConfig.GetConfig()
	if cfg.AWSS3Bucket == "" {
		log.Println("AWS_S3_BUCKET not set, S3 mirroring disabled")
		return nil, nil
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3ServiceInstance = &S3Service{
		client: s3.NewFromConfig(awsConfig),
		bucket: cfg.AWSS3Bucket,
	}
	return s3ServiceInstance, nil
}

// GetS3Service returns the initialized S3 service instance (nil when disabled)
func GetS3Service() S3Interface {
	return s3ServiceInstance
}

// SetS3Service sets the S3 service instance (primarily for testing)
func SetS3Service(service S3Interface) {
	s3ServiceInstance = service
}

// MirrorFile uploads one local file to the bucket under the given key
func (s *S3Service) MirrorFile(ctx context.Context, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close file: %v", closeErr)
		}
	}()

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// MirrorUploads pushes the named files from the upload directory to the
// bucket, logging failures instead of returning them
func MirrorUploads(ctx context.Context, uploadDir string, filenames ...string) {
	mirror := GetS3Service()
	if mirror == nil {
		return
	}
	for _, name := range filenames {
		if name == "" {
			continue
		}
		key := "uploads/" + name
		if err := mirror.MirrorFile(ctx, filepath.Join(uploadDir, name), key); err != nil {
			log.Printf("S3 mirror failed for %s: %v", name, err)
		}
	}
}
