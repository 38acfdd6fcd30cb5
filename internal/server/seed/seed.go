// Package seed imports an initial list of sensitive words at startup.
//
// A source is either a local file ("file:///etc/words.txt", "file://~/words.txt"
// or a bare path) or an object in S3-compatible storage ("s3://bucket/key").
// The list holds one word or phrase per line; blank lines and lines starting
// with '#' are ignored.
package seed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/sensitivewords/internal/logging"
	"github.com/mitchellh/go-homedir"
)

type Importer interface {
	BulkImport(ctx context.Context, texts []string) (int, error)
}

// ObjectGetter is the part of *s3.Client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Config struct {
	User     string
	Password string
	Region   string
	Endpoint string
}

type Loader struct {
	s3cfg       S3Config
	log         logging.Logger
	newS3Client func(ctx context.Context) (ObjectGetter, error)
}

func NewLoader(cfg S3Config, log logging.Logger) *Loader {
	l := &Loader{s3cfg: cfg, log: log.With("module", "seed")}
	l.newS3Client = l.s3Client
	return l
}

func (l *Loader) s3Client(ctx context.Context) (ObjectGetter, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(l.s3cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			l.s3cfg.User,
			l.s3cfg.Password,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if l.s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(l.s3cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Open returns a reader over the word list named by source.
func (l *Loader) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(source, "s3://"):
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", source, err)
		}
		bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
		if bucket == "" || key == "" {
			return nil, fmt.Errorf("s3 source %q must be s3://bucket/key", source)
		}

		client, err := l.newS3Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 client: %w", err)
		}
		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
		}
		return out.Body, nil

	default:
		path, err := homedir.Expand(strings.TrimPrefix(source, "file://"))
		if err != nil {
			return nil, err
		}
		return os.Open(path)
	}
}

// ParseWords reads one word per line, skipping blanks and '#' comments.
func ParseWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Seed loads the word list from source and imports it. An empty source is
// a no-op. It returns the number of newly inserted words.
func (l *Loader) Seed(ctx context.Context, source string, imp Importer) (int, error) {
	if source == "" {
		return 0, nil
	}

	rc, err := l.Open(ctx, source)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	words, err := ParseWords(rc)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", source, err)
	}

	n, err := imp.BulkImport(ctx, words)
	if err != nil {
		return 0, err
	}
	l.log.Info(ctx, "seed words imported", "source", source, "read", len(words), "inserted", n)
	return n, nil
}
