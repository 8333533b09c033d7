package service

// Тесты сервисного слоя party-one.
//
//  Проверяем:
//  - валидацию входов и маппинг ошибок storage -> service;
//  - выпуск/ротацию/отзыв токенов;
//  - OTP-сценарии (сброс пароля, удаление аккаунта) поверх in-memory
//    EphemeralStorage;
//  - фильтр уровней, заявку на членство и подтверждение оплаты.
//
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks.

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/mocks"
)

var errTest = errors.New("boom")

func testCfg() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "unit-secret",
			AccessTokenTTL:       time.Minute,
			RefreshTokenTTL:      24 * time.Hour,
			VerifyTokenTTL:       time.Hour,
			Issuer:               "party-one",
			Audience:             []string{"party-one-web"},
			RequireVerifiedEmail: true,
			PasswordMinLen:       6,
		},
		S3: config.S3Config{PresignTTL: 10 * time.Minute},
		KYC: config.KYCConfig{
			MaxSizeBytes:        1 << 20,
			AllowedContentTypes: []string{"image/jpeg", "image/png", "image/gif"},
		},
		Payments: config.PaymentsConfig{
			CheckoutURL:   "https://pay.test/checkout",
			WebhookSecret: "billing-secret",
			LinkTTL:       30 * time.Minute,
			Currency:      "USD",
		},
		OTP: config.OTPConfig{
			TTL:            10 * time.Minute,
			MaxAttempts:    3,
			ResendCooldown: time.Minute,
			SessionTTL:     15 * time.Minute,
		},
	}
}

type env struct {
	svc    *Service
	acc    *mocks.MockAccountStorage
	docs   *mocks.MockDocumentStorage
	eph    *mocks.MockEphemeralStorage
	files  *mocks.MockFileStorage
	pub    *mocks.MockPublisher
	google *mocks.MockGoogleProvider
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ctrl := gomock.NewController(t)
	e := &env{
		acc:    mocks.NewMockAccountStorage(ctrl),
		docs:   mocks.NewMockDocumentStorage(ctrl),
		eph:    mocks.NewMockEphemeralStorage(ctrl),
		files:  mocks.NewMockFileStorage(ctrl),
		pub:    mocks.NewMockPublisher(ctrl),
		google: mocks.NewMockGoogleProvider(ctrl),
	}

	e.svc = New(Deps{
		Accounts:  e.acc,
		Documents: e.docs,
		Ephemeral: e.eph,
		Files:     e.files,
		Events:    e.pub,
		Google:    e.google,
	}, testCfg())

	return e
}

// newFlowEnv — то же, но с in-memory EphemeralStorage вместо мока:
// многошаговые сценарии проверяются по реальному состоянию.
func newFlowEnv(t *testing.T) (*env, *memEphemeral) {
	t.Helper()

	e := newEnv(t)
	mem := newMemEphemeral()
	e.svc.ephemeral = mem

	return e, mem
}

// captureEvents запоминает опубликованные события.
func (e *env) captureEvents(times int) *[]events.Event {
	var got []events.Event
	e.pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev events.Event) error {
			got = append(got, ev)
			return nil
		}).Times(times)

	return &got
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func verifiedUser(t *testing.T, email, pw string) *models.User {
	t.Helper()
	now := time.Now().UTC()
	return &models.User{
		ID:            uuid.New(),
		Email:         email,
		PasswordHash:  mustHashPW(t, pw),
		Provider:      models.ProviderPassword,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func completeProfile(uid uuid.UUID, tier string) *models.Profile {
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	return &models.Profile{
		UserID:               uid,
		Gender:               models.GenderFemale,
		DOB:                  &dob,
		Contacts:             []models.Contact{{ContactNo: "+15550100", Mode: models.ContactPhone, IsActive: true}},
		HomeCountry:          models.Place{ID: "US", Name: "United States"},
		HomeState:            models.Place{ID: "CA", Name: "California"},
		HomeCity:             models.Place{ID: "LA", Name: "Los Angeles"},
		ActiveMembershipName: tier,
		ActiveMembershipID:   tierID(tier),
	}
}

func tierID(name string) string {
	if name == "" {
		return ""
	}
	return "ms-" + name
}

// memEphemeral — потокобезопасная in-memory реализация EphemeralStorage
// без TTL (тесты укладываются в срок жизни ключей).
type memEphemeral struct {
	mu       sync.Mutex
	otps     map[string]*memOTP
	sessions map[string]storage.WizardSession
	counters map[string]int
}

type memOTP struct {
	hash     string
	attempts int
}

func newMemEphemeral() *memEphemeral {
	return &memEphemeral{
		otps:     map[string]*memOTP{},
		sessions: map[string]storage.WizardSession{},
		counters: map[string]int{},
	}
}

func (m *memEphemeral) SaveOTP(_ context.Context, key, hash string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps[key] = &memOTP{hash: hash}
	return nil
}

func (m *memEphemeral) CheckOTP(_ context.Context, key, hash string, maxAttempts int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.otps[key]
	if !ok {
		return storage.ErrNotFound
	}

	if o.hash == hash {
		delete(m.otps, key)
		return nil
	}

	o.attempts++
	if o.attempts >= maxAttempts {
		delete(m.otps, key)
		return storage.ErrAttemptsExceeded
	}

	return storage.ErrMismatch
}

func (m *memEphemeral) DeleteOTP(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.otps, key)
	return nil
}

func (m *memEphemeral) SaveSession(_ context.Context, key string, s storage.WizardSession, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key] = s
	return nil
}

func (m *memEphemeral) Session(_ context.Context, key string) (*storage.WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &s, nil
}

func (m *memEphemeral) DeleteSession(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}

func (m *memEphemeral) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return limit <= 0 || m.counters[key] <= limit, nil
}

func (m *memEphemeral) ResetLimit(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.counters, key)
	return nil
}

func (m *memEphemeral) ConsumeTicket(_ context.Context, key, ticketHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key]
	if !ok {
		return storage.ErrNotFound
	}

	if s.TicketHash == "" || s.TicketHash != ticketHash {
		return storage.ErrMismatch
	}

	s.TicketHash = ""
	m.sessions[key] = s
	return nil
}

func (m *memEphemeral) session(key string) (storage.WizardSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[key]
	return s, ok
}

var _ storage.EphemeralStorage = (*memEphemeral)(nil)
