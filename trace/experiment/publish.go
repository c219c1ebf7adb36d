package experiment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

const UploadTimeout = 30 * time.Second

// PublishConfig holds the S3 destination for experiment outputs
type PublishConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	// Key prefix inside the bucket
	Prefix string
}

// PublishConfigFromEnv reads S3_* variables, after loading envFile if it exists
func PublishConfigFromEnv(envFile string) (PublishConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return PublishConfig{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	cfg := PublishConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    os.Getenv("S3_PREFIX"),
	}
	if cfg.Bucket == "" {
		return cfg, fmt.Errorf("S3_BUCKET is not set")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = ExperimentsDir
	}
	return cfg, nil
}

// Publisher uploads experiment directories to S3
type Publisher struct {
	config PublishConfig
	client *s3.S3
}

func NewPublisher(cfg PublishConfig) (*Publisher, error) {
	s3Config := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("creating S3 session: %w", err)
	}
	return &Publisher{config: cfg, client: s3.New(sess)}, nil
}

// ObjectKey is where a file of the experiment lands in the bucket
func (p *Publisher) ObjectKey(e *ExperimentDir, filename string) string {
	return path.Join(p.config.Prefix, e.ID, filename)
}

// Publish uploads every file of the experiment directory
func (p *Publisher) Publish(ctx context.Context, e *ExperimentDir) error {
	files, err := e.Files()
	if err != nil {
		return err
	}
	for _, name := range files {
		if err := p.upload(ctx, e, name); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) upload(ctx context.Context, e *ExperimentDir, filename string) error {
	data, err := os.ReadFile(e.GetFilePath(filename))
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := p.ObjectKey(e, filename)
	size := int64(len(data))
	_, err = p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}
