package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ds611b/practicas/internal/config"
	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedType is returned for uploads whose content is not an allowed image format.
var ErrUnsupportedType = errors.New("unsupported file type")

var imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type S3Deps struct {
	Client    *s3.Client
	Uploader  *manager.Uploader
	Presigner *s3.PresignClient
	Bucket    string
	SSE       *s3types.ServerSideEncryption
}

// NewS3 returns nil, nil when no bucket is configured.
func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	if cfg.S3.Bucket == "" {
		return nil, nil
	}

	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(acfg, func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	var sse *s3types.ServerSideEncryption
	if cfg.S3.SSE != "" {
		v := s3types.ServerSideEncryption(cfg.S3.SSE)
		sse = &v
	}

	return &S3Deps{
		Client:    client,
		Uploader:  manager.NewUploader(client),
		Presigner: s3.NewPresignClient(client),
		Bucket:    cfg.S3.Bucket,
		SSE:       sse,
	}, nil
}

func (s *S3Deps) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("key is empty")
	}
	ps, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &key,
	}, func(po *s3.PresignOptions) {
		po.Expires = expire
	})
	if err != nil {
		return "", err
	}
	return ps.URL, nil
}

func (s *S3Deps) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.Bucket, Key: &key})
	return err
}

type UploadedMeta struct {
	Bucket string
	Key    string
	ETag   string
	SHA256 string
	MIME   string
	SizeB  int64
}

// UploadFormFile stores an image under keyPrefix/YYYY/MM/DD/<sha256><ext>.
// The type is sniffed from the content; the client-sent Content-Type is ignored.
func (s *S3Deps) UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*UploadedMeta, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mt, sumHex, err := inspect(file)
	if err != nil {
		return nil, err
	}
	if !mimetype.EqualsAny(mt.String(), imageTypes...) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s%s", keyPrefix, time.Now().UTC().Format("2006/01/02"), sumHex, mt.Extension())

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(mt.String()),
		Metadata: map[string]string{
			"sha256": sumHex,
			"name":   fh.Filename,
		},
	}
	if s.SSE != nil {
		input.ServerSideEncryption = *s.SSE
	}

	out, err := s.Uploader.Upload(ctx, input)
	if err != nil {
		return nil, err
	}

	meta := &UploadedMeta{
		Bucket: s.Bucket,
		Key:    key,
		SHA256: sumHex,
		MIME:   mt.String(),
		SizeB:  fh.Size,
	}
	if out.ETag != nil {
		meta.ETag = *out.ETag
	}
	return meta, nil
}

// inspect sniffs the content type and hashes the whole stream in one read.
func inspect(r io.Reader) (*mimetype.MIME, string, error) {
	h := sha256.New()
	mt, err := mimetype.DetectReader(io.TeeReader(r, h))
	if err != nil {
		return nil, "", fmt.Errorf("detect type: %w", err)
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, "", fmt.Errorf("calc sha256: %w", err)
	}
	return mt, hex.EncodeToString(h.Sum(nil)), nil
}
