// Package minio реализует storage.FileStorage поверх MinIO/S3:
// presigned PUT/GET для документов KYC, проверка и удаление объектов.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/storage"
)

// Documents — адаптер MinIO для файлов документов.
type Documents struct {
	bucket string
	client *mclient.Client
}

// New создаёт клиент MinIO. Endpoint может содержать схему: она определяет
// Secure и отбрасывается. Бакет должен существовать заранее (fail-fast).
func New(ctx context.Context, cfg config.S3Config) (*Documents, error) {
	const op = "storage/minio/New"

	endpoint := cfg.Endpoint
	secure := cfg.UseSSL

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	endpoint = strings.TrimRight(endpoint, "/")

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.RootUser, cfg.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &Documents{bucket: cfg.Bucket, client: client}, nil
}

var _ storage.FileStorage = (*Documents)(nil)
