package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/storage"
)

var contentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// documentPrefix — префикс ключей документов пользователя заданного типа.
func documentPrefix(uid uuid.UUID, kind models.DocumentKind) string {
	return "kyc/" + uid.String() + "/" + string(kind) + "/"
}

// UploadURL выдаёт presigned PUT URL для загрузки документа.
// Ключ имеет вид kyc/<user_id>/<kind>/<uuid>.<ext>.
func (s *Service) UploadURL(ctx context.Context, uid uuid.UUID, kind models.DocumentKind, contentType string, size int64) (*models.UploadTicket, error) {
	const op = "service.uploads.UploadURL"

	if s.files == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUploadsDisabled)
	}

	if uid == uuid.Nil || !kind.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !slices.Contains(s.cfg.KYC.AllowedContentTypes, contentType) {
		return nil, fmt.Errorf("%s: %w: content type %q", op, ErrInvalidArgument, contentType)
	}

	if size <= 0 || size > s.cfg.KYC.MaxSizeBytes {
		return nil, fmt.Errorf("%s: %w: size %d", op, ErrInvalidArgument, size)
	}

	key := documentPrefix(uid, kind) + uuid.NewString() + contentTypeExt[contentType]
	ttl := s.cfg.S3.PresignTTL

	u, err := s.files.PresignPut(ctx, key, contentType, ttl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.UploadTicket{
		Key:       key,
		UploadURL: u,
		ExpiresAt: s.now().Add(ttl),
		Headers:   map[string]string{"Content-Type": contentType},
	}, nil
}

// DocumentURL выдаёт presigned GET URL на собственный документ пользователя.
func (s *Service) DocumentURL(ctx context.Context, uid uuid.UUID, key string) (string, error) {
	const op = "service.uploads.DocumentURL"

	if s.files == nil {
		return "", fmt.Errorf("%s: %w", op, ErrUploadsDisabled)
	}

	if !strings.HasPrefix(key, "kyc/"+uid.String()+"/") || path.Clean(key) != key {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	u, err := s.files.PresignGet(ctx, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

// checkUpload подтверждает, что документ kind загружен пользователем и
// удовлетворяет ограничениям размера и типа.
func (s *Service) checkUpload(ctx context.Context, uid uuid.UUID, kind models.DocumentKind, key string) error {
	if key == "" {
		return fmt.Errorf("%w: %s", ErrDocumentMissing, kind)
	}

	if !strings.HasPrefix(key, documentPrefix(uid, kind)) || path.Clean(key) != key {
		return fmt.Errorf("%w: foreign key for %s", ErrInvalidArgument, kind)
	}

	if s.files == nil {
		return ErrUploadsDisabled
	}

	info, err := s.files.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrDocumentMissing, kind)
		}

		return err
	}

	if info.Size <= 0 || info.Size > s.cfg.KYC.MaxSizeBytes {
		return fmt.Errorf("%w: %s size %d", ErrInvalidArgument, kind, info.Size)
	}

	if info.ContentType != "" && !slices.Contains(s.cfg.KYC.AllowedContentTypes, info.ContentType) {
		return fmt.Errorf("%w: %s content type %q", ErrInvalidArgument, kind, info.ContentType)
	}

	return nil
}
