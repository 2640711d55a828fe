package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/quickqualified/exteriors-api/internal/leads"
	"github.com/quickqualified/exteriors-api/pkg/logging"
)

// SignedURLTTL is how long attachment read links stay valid.
const SignedURLTTL = 7 * 24 * time.Hour

const fallbackFilename = "upload.bin"
const defaultContentType = "application/octet-stream"

// ErrUploadFailed is returned when any file in a batch could not be stored or
// signed.
var ErrUploadFailed = errors.New("uploads: upload failed")

// S3API is the subset of the S3 client used by Uploader.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner issues signed GET URLs for stored objects.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Uploader stores lead photos in an S3 bucket under lead-scoped keys and
// returns attachment metadata with signed read URLs.
type Uploader struct {
	s3Client  S3API
	presigner Presigner
	bucket    string
	logger    *logging.Logger
	now       func() time.Time
}

// NewUploader creates an Uploader. If bucket is empty the uploader is
// disabled and UploadAll rejects any non-empty batch.
func NewUploader(s3Client S3API, presigner Presigner, bucket string, logger *logging.Logger) *Uploader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Uploader{
		s3Client:  s3Client,
		presigner: presigner,
		bucket:    bucket,
		logger:    logger,
		now:       time.Now,
	}
}

// Enabled reports whether an upload bucket is configured.
func (u *Uploader) Enabled() bool {
	return u != nil && u.bucket != "" && u.s3Client != nil
}

type stagedFile struct {
	key         string
	name        string
	contentType string
	data        []byte
}

// UploadAll stores every real file in the batch and returns one attachment
// per file, in input order. Zero-length entries are dropped silently; an
// empty batch returns an empty result without touching storage.
//
// The batch is all-or-nothing: every file is read into memory before the
// first write, and if any write or signing step fails, already-written
// objects are deleted best-effort before the error is returned.
func (u *Uploader) UploadAll(ctx context.Context, leadID string, files []*multipart.FileHeader) ([]leads.Attachment, error) {
	staged, err := u.stage(leadID, files)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		return nil, nil
	}
	if !u.Enabled() {
		return nil, fmt.Errorf("%w: no upload bucket configured", ErrUploadFailed)
	}

	attachments := make([]leads.Attachment, 0, len(staged))
	var written []string

	for _, f := range staged {
		_, err := u.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(f.key),
			Body:        bytes.NewReader(f.data),
			ContentType: aws.String(f.contentType),
		})
		if err != nil {
			u.cleanup(ctx, written)
			return nil, fmt.Errorf("%w: put %s: %v", ErrUploadFailed, f.key, err)
		}
		written = append(written, f.key)

		signed, err := u.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(f.key),
		}, s3.WithPresignExpires(SignedURLTTL))
		if err != nil {
			u.cleanup(ctx, written)
			return nil, fmt.Errorf("%w: sign %s: %v", ErrUploadFailed, f.key, err)
		}

		attachments = append(attachments, leads.Attachment{
			Name:        f.name,
			Path:        f.key,
			URL:         signed.URL,
			ContentType: f.contentType,
			Size:        int64(len(f.data)),
		})
	}

	u.logger.Info("lead photos uploaded", "lead_id", leadID, "count", len(attachments))
	return attachments, nil
}

// stage reads every usable file into memory and assigns its storage key.
// Read failures abort before anything is written.
func (u *Uploader) stage(leadID string, files []*multipart.FileHeader) ([]stagedFile, error) {
	var staged []stagedFile
	seen := make(map[string]bool)

	for _, header := range files {
		if header == nil || header.Size == 0 {
			continue
		}

		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %q: %v", ErrUploadFailed, header.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read %q: %v", ErrUploadFailed, header.Filename, err)
		}
		if len(data) == 0 {
			continue
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = defaultContentType
		}

		// Identical names uploaded within the same millisecond would
		// collide; a per-batch counter inserted before the extension
		// keeps keys unique. Generated keys count as taken too, so a
		// sibling literally named "<name>-1" cannot collide either.
		base := fmt.Sprintf("leads/%s/%d-%s", leadID, u.now().UnixMilli(), SanitizeFilename(header.Filename))
		ext := path.Ext(base)
		stem := strings.TrimSuffix(base, ext)

		key := base
		for n := 1; seen[key]; n++ {
			key = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		seen[key] = true

		staged = append(staged, stagedFile{
			key:         key,
			name:        header.Filename,
			contentType: contentType,
			data:        data,
		})
	}

	return staged, nil
}

// cleanup deletes already-written keys after a mid-batch failure. Failures
// here are logged only; the batch error is what the caller sees.
func (u *Uploader) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		_, err := u.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			u.logger.Warn("failed to remove partial upload", "key", key, "error", err)
		}
	}
}
