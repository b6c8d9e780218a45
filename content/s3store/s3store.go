// Package s3store serves content documents from an S3 bucket.
//
// Keys below the configured prefix map to document paths: with prefix "site/",
// the key "site/guides/intro.html" is the document ["guides", "intro.html"].
// Directories are the common prefixes reported with the "/" delimiter.
package s3store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/jackielii/pageroute/content"
)

// MaxDocSize bounds the body read for a single document.
const MaxDocSize = 8 << 20

// ErrDocTooLarge is returned by Get for objects larger than MaxDocSize.
var ErrDocTooLarge = errors.New("document exceeds max size")

// API is the part of *s3.Client the store uses.
type API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store reads documents from bucket below prefix.
type Store struct {
	client API
	bucket string
	prefix string
}

// New returns a store over an existing client.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3store.New(s3.NewFromConfig(cfg), "my-bucket", "site/")
func New(client API, bucket, prefix string) *Store {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &Store{client: client, bucket: bucket, prefix: prefix}
}

// Options configures a client built by NewClient.
type Options struct {
	Region string
	// Endpoint overrides the S3 endpoint, e.g. for MinIO. Path style addressing
	// is used when it is set.
	Endpoint string
	// AccessKeyID and SecretAccessKey default to AWS_ACCESS_KEY_ID and
	// AWS_SECRET_ACCESS_KEY. Without them requests are anonymous.
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient builds an S3 client from static options and the environment.
func NewClient(opts Options) *s3.Client {
	keyID := cmp.Or(opts.AccessKeyID, os.Getenv("AWS_ACCESS_KEY_ID"))
	secret := cmp.Or(opts.SecretAccessKey, os.Getenv("AWS_SECRET_ACCESS_KEY"))
	session := os.Getenv("AWS_SESSION_TOKEN")

	o := s3.Options{
		Region: cmp.Or(opts.Region, os.Getenv("AWS_REGION"), "us-east-1"),
	}
	if keyID != "" && secret != "" {
		o.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     keyID,
					SecretAccessKey: secret,
					SessionToken:    session,
					Source:          "pageroute",
				}, nil
			}))
	} else {
		o.Credentials = aws.AnonymousCredentials{}
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}
	return s3.New(o)
}

func (s *Store) key(p []string) (string, error) {
	name, err := content.CleanPath(p)
	if err != nil {
		return "", err
	}
	if name == "." {
		return s.prefix, nil
	}
	return s.prefix + name, nil
}

func (s *Store) List(ctx context.Context, dir []string) ([]content.Entry, error) {
	key, err := s.key(dir)
	if err != nil {
		return nil, err
	}
	if key != "" && !strings.HasSuffix(key, "/") {
		key += "/"
	}
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(key),
		Delimiter: aws.String("/"),
	})

	var entries []content.Entry
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list s3://%s/%s: %w", s.bucket, key, err)
		}
		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), key), "/")
			if name == "" || strings.HasPrefix(name, ".") {
				continue
			}
			entries = append(entries, content.Entry{Path: appendPath(dir, name), Name: name, IsDir: true})
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), key)
			if name == "" || strings.HasPrefix(name, ".") {
				continue // the directory marker itself
			}
			entries = append(entries, objectEntry(dir, name, obj))
		}
	}
	if len(entries) == 0 && len(dir) > 0 {
		return nil, fmt.Errorf("list s3://%s/%s: %w", s.bucket, key, fs.ErrNotExist)
	}
	content.SortEntries(entries)
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, p []string) (content.Entry, error) {
	if len(p) == 0 {
		return content.Entry{IsDir: true}, nil
	}
	key, err := s.key(p)
	if err != nil {
		return content.Entry{}, err
	}
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(key),
		Delimiter: aws.String("/"),
	})
	name := p[len(p)-1]
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return content.Entry{}, fmt.Errorf("stat s3://%s/%s: %w", s.bucket, key, err)
		}
		for _, obj := range page.Contents {
			if aws.ToString(obj.Key) == key {
				return objectEntry(p[:len(p)-1], name, obj), nil
			}
		}
		for _, cp := range page.CommonPrefixes {
			if aws.ToString(cp.Prefix) == key+"/" {
				return content.Entry{Path: p, Name: name, IsDir: true}, nil
			}
		}
	}
	return content.Entry{}, fmt.Errorf("stat s3://%s/%s: %w", s.bucket, key, fs.ErrNotExist)
}

func (s *Store) Get(ctx context.Context, p []string) (*content.Doc, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("get s3://%s/%s: is a directory: %w", s.bucket, s.prefix, fs.ErrNotExist)
	}
	key, err := s.key(p)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			err = errors.Join(err, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(io.LimitReader(out.Body, MaxDocSize+1))
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err)
	}
	if len(body) > MaxDocSize {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, ErrDocTooLarge)
	}
	name := p[len(p)-1]
	doc := &content.Doc{
		Entry: content.Entry{
			Path:    p,
			Name:    name,
			Size:    aws.ToInt64(out.ContentLength),
			ModTime: aws.ToTime(out.LastModified),
		},
		ContentType: aws.ToString(out.ContentType),
		Body:        body,
	}
	if doc.ContentType == "" || doc.ContentType == "binary/octet-stream" {
		doc.ContentType = content.ContentType(name, body)
	}
	return doc, nil
}

func objectEntry(dir []string, name string, obj types.Object) content.Entry {
	return content.Entry{
		Path:    appendPath(dir, path.Base(name)),
		Name:    path.Base(name),
		Size:    aws.ToInt64(obj.Size),
		ModTime: aws.ToTime(obj.LastModified),
	}
}

func appendPath(dir []string, name string) []string {
	p := make([]string, 0, len(dir)+1)
	p = append(p, dir...)
	return append(p, name)
}

var _ content.Store = (*Store)(nil)
