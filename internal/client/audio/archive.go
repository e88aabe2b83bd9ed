package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/toneflow/internal/filex"
	"github.com/google/uuid"
)

// Archive keeps a copy of synthesized speech and returns where it went.
type Archive interface {
	Save(ctx context.Context, email string, wav []byte) (string, error)
}

// StorageKey returns speech/<email>/<yyyy>/<mm>/<dd>/<uuid>.wav.
func StorageKey(email string, t time.Time) string {
	safe := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(email)
	return fmt.Sprintf("speech/%s/%04d/%02d/%02d/%s.wav", safe, t.Year(), t.Month(), t.Day(), uuid.New())
}

// DirArchive writes WAV files under Dir.
type DirArchive struct {
	Dir string
	now func() time.Time
}

func NewDirArchive(dir string) *DirArchive {
	return &DirArchive{Dir: dir, now: time.Now}
}

func (a *DirArchive) Save(_ context.Context, email string, wav []byte) (string, error) {
	path := filepath.Join(a.Dir, filepath.FromSlash(StorageKey(email, a.now())))
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, wav, 0o600); err != nil {
		return "", fmt.Errorf("archive speech: %w", err)
	}
	return path, nil
}

// S3Options configures an S3-compatible archive (AWS or MinIO).
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) putObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Archive uploads WAV files with PutObject.
type S3Archive struct {
	client putObjectAPI
	bucket string
	now    func() time.Time
}

// NewS3Archive builds the client. Static credentials are used when both
// keys are set; otherwise the default AWS credential chain applies.
func NewS3Archive(ctx context.Context, opts S3Options) (*S3Archive, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 archive: bucket is required")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3 archive: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Archive{client: client, bucket: opts.Bucket, now: time.Now}, nil
}

func (a *S3Archive) Save(ctx context.Context, email string, wav []byte) (string, error) {
	key := StorageKey(email, a.now())
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(wav),
		ContentType:   aws.String("audio/wav"),
		ContentLength: aws.Int64(int64(len(wav))),
	})
	if err != nil {
		return "", fmt.Errorf("archive speech: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
