// storage описывает контракты хранилищ party-one:
//   - identities и refresh-токены, справочник локаций (PostgreSQL);
//   - документы профилей, каталог членств, KYC и заявки (MongoDB);
//   - OTP, сессии мастеров и лимиты (Redis);
//   - загружаемые документы KYC (S3/MinIO).
package storage

//go:generate mockgen -destination=../../mocks/storage.go -package=mocks github.com/pribylovaa/party-one/internal/storage AccountStorage,DocumentStorage,EphemeralStorage,FileStorage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrMismatch — предъявленный OTP не совпал.
	ErrMismatch = errors.New("mismatch")
	// ErrAttemptsExceeded — исчерпан лимит попыток ввода OTP.
	ErrAttemptsExceeded = errors.New("attempts exceeded")
)

// UserStorage — учётные записи.
type UserStorage interface {
	SaveUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string, now time.Time) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID, now time.Time) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	// UsersCreatedBefore возвращает до limit учёток, созданных раньше t,
	// упорядоченных по (created_at, id) и идущих строго после after.
	UsersCreatedBefore(ctx context.Context, t time.Time, after UserCursor, limit int) ([]models.User, error)
}

// UserCursor — позиция keyset-пагинации по учёткам. Нулевое значение —
// начало выборки.
type UserCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorAfter возвращает курсор, указывающий на u.
func CursorAfter(u models.User) UserCursor {
	return UserCursor{CreatedAt: u.CreatedAt, ID: u.ID}
}

// RefreshTokenStorage — refresh-токены.
type RefreshTokenStorage interface {
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	RefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	// RevokeRefreshTokenIfActive: (true, nil) — отозван сейчас; (false, nil) —
	// уже был отозван; ErrNotFound — токена нет.
	RevokeRefreshTokenIfActive(ctx context.Context, hash string) (bool, error)
	RevokeUserTokens(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// LocationStorage — справочник стран, регионов и городов.
type LocationStorage interface {
	Countries(ctx context.Context) ([]models.Country, error)
	States(ctx context.Context, countryID string) ([]models.State, error)
	Cities(ctx context.Context, countryID, stateID string) ([]models.City, error)
}

// ProfileStorage — документы профилей.
type ProfileStorage interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// CreateProfile записывает документ целиком (set без merge).
	CreateProfile(ctx context.Context, p *models.Profile) error
	// MergeProfile применяет заданные поля (set с merge) и возвращает итог.
	MergeProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate, now time.Time) (*models.Profile, error)
	// ClearProfileFields сбрасывает обязательные поля профиля.
	ClearProfileFields(ctx context.Context, userID uuid.UUID, now time.Time) error
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	// ExistingProfiles возвращает подмножество ids, для которых есть документ.
	ExistingProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

// MembershipStorage — каталог уровней членства.
type MembershipStorage interface {
	Memberships(ctx context.Context) ([]models.Membership, error)
	MembershipByID(ctx context.Context, id string) (*models.Membership, error)
}

// KYCStorage — анкеты KYC.
type KYCStorage interface {
	SaveKYC(ctx context.Context, k *models.KYC) error
	KYCByUser(ctx context.Context, userID uuid.UUID) (*models.KYC, error)
	DeleteKYC(ctx context.Context, userID uuid.UUID) error
}

// MembershipRequestStorage — заявки на членство.
type MembershipRequestStorage interface {
	SaveRequest(ctx context.Context, r *models.MembershipRequest) error
	RequestByID(ctx context.Context, id uuid.UUID) (*models.MembershipRequest, error)
	RequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.MembershipRequest, error)
	// MarkRequestPaid переводит pending_payment → paid; ErrNotFound, если
	// заявки нет или она уже оплачена.
	MarkRequestPaid(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteUserRequests(ctx context.Context, userID uuid.UUID) error
}

// OTPStorage — хэши одноразовых кодов с TTL и счётчиком попыток.
type OTPStorage interface {
	SaveOTP(ctx context.Context, key, hash string, ttl time.Duration) error
	// CheckOTP сверяет hash. ErrNotFound — кода нет или истёк; ErrMismatch —
	// не совпал (попытка засчитана); ErrAttemptsExceeded — лимит исчерпан,
	// код удалён. При совпадении код удаляется.
	CheckOTP(ctx context.Context, key, hash string, maxAttempts int) error
	DeleteOTP(ctx context.Context, key string) error
}

// WizardSession — серверное состояние многошагового сценария.
type WizardSession struct {
	Flow       string
	Subject    string
	State      string
	TicketHash string
	UpdatedAt  time.Time
}

// SessionStorage — сессии мастеров.
type SessionStorage interface {
	SaveSession(ctx context.Context, key string, s WizardSession, ttl time.Duration) error
	Session(ctx context.Context, key string) (*WizardSession, error)
	DeleteSession(ctx context.Context, key string) error
	// ConsumeTicket атомарно гасит ticket сессии, если его хэш совпал.
	// ErrNotFound — сессии нет; ErrMismatch — хэш не совпал или ticket
	// уже погашен.
	ConsumeTicket(ctx context.Context, key, ticketHash string) error
}

// RateLimiter — фиксированное окно: не более limit событий за window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	// ResetLimit обнуляет счётчик окна.
	ResetLimit(ctx context.Context, key string) error
}

// ObjectInfo — метаданные загруженного объекта.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// FileStorage — файлы документов (S3/MinIO).
type FileStorage interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
	Remove(ctx context.Context, key string) error
}

// AccountStorage — всё, что хранится в PostgreSQL.
type AccountStorage interface {
	UserStorage
	RefreshTokenStorage
	LocationStorage
}

// DocumentStorage — всё, что хранится в MongoDB.
type DocumentStorage interface {
	ProfileStorage
	MembershipStorage
	KYCStorage
	MembershipRequestStorage
}

// EphemeralStorage — короткоживущее состояние (Redis).
type EphemeralStorage interface {
	OTPStorage
	SessionStorage
	RateLimiter
}
