package minio

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/party-one/internal/storage"
)

// PresignPut выдаёт presigned PUT URL для ключа key.
// contentType здесь не подписывается: тип проверяется в Stat после загрузки.
func (d *Documents) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	const op = "storage/minio/PresignPut"

	u, err := d.client.PresignedPutObject(ctx, d.bucket, key, ttl)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

// PresignGet выдаёт presigned GET URL для чтения документа.
func (d *Documents) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	const op = "storage/minio/PresignGet"

	u, err := d.client.PresignedGetObject(ctx, d.bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

// Stat возвращает метаданные объекта или storage.ErrNotFound.
func (d *Documents) Stat(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	const op = "storage/minio/Stat"

	info, err := d.client.StatObject(ctx, d.bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.ObjectInfo{Key: key, Size: info.Size, ContentType: info.ContentType}, nil
}

// Remove удаляет объект. Отсутствие объекта ошибкой не считается.
func (d *Documents) Remove(ctx context.Context, key string) error {
	const op = "storage/minio/Remove"

	if err := d.client.RemoveObject(ctx, d.bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		if isNotFound(err) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func isNotFound(err error) bool {
	resp := mclient.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
