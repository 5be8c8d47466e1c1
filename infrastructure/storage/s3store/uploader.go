package s3store

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/vfg2006/attribution-sync/internal/config"
)

type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

type S3Uploader struct {
	bucket   string
	prefix   string
	uploader *s3manager.Uploader
}

// NewUploader cria o uploader das cópias de auditoria. Retorna nil quando não há bucket configurado.
func NewUploader(cfg *config.Config) (Uploader, error) {
	if cfg.Export.S3Bucket == "" {
		return nil, nil
	}

	awsConfig := aws.NewConfig()
	awsConfig.Region = aws.String(cfg.Export.S3Region)

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a sessão AWS: %w", err)
	}

	return NewUploaderWithAPI(cfg.Export.S3Bucket, cfg.Export.S3Prefix, s3.New(sess)), nil
}

func NewUploaderWithAPI(bucket, prefix string, api s3iface.S3API) *S3Uploader {
	return &S3Uploader{
		bucket:   bucket,
		prefix:   prefix,
		uploader: s3manager.NewUploaderWithClient(api),
	}
}

// Upload grava o conteúdo em <prefix>/<key> e retorna a URL s3:// do objeto
func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader) (string, error) {
	fullKey := u.keyWithPrefix(key)

	_, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(fullKey),
		Body:        body,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar %s para o S3: %w", fullKey, err)
	}

	return "s3://" + u.bucket + "/" + fullKey, nil
}

func (u *S3Uploader) keyWithPrefix(key string) string {
	if u.prefix == "" {
		return key
	}
	return path.Join(u.prefix, key)
}
