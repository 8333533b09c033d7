package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair — пара токенов, выдаваемая при входе.
//
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — случайный секрет, на сервере хранится только его хэш;
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// RefreshToken — серверная запись о refresh-токене.
type RefreshToken struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RefreshHash string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Revoked     bool
}

// Session — результат успешного входа: токены и маршрут, на который
// клиент должен перейти.
type Session struct {
	User      User
	Tokens    TokenPair
	NextRoute string
	Created   bool
}
