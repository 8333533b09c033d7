package models

import (
	"time"

	"github.com/google/uuid"
)

// Provider — способ, которым создана учётная запись.
type Provider string

const (
	ProviderPassword Provider = "password"
	ProviderGoogle   Provider = "google"
)

// User — учётная запись (identity) пользователя.
// PasswordHash пуст для учёток, созданных через OAuth.
type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	Provider      Provider
	ExternalID    string
	EmailVerified bool
	Disabled      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
