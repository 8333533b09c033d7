// service содержит бизнес-логику party-one: учётные записи и токены,
// профили, KYC, заявки на членство и OTP-сценарии (сброс пароля,
// удаление аккаунта).
//
// Основные аспекты:
//   - Service не хранит состояние запроса и безопасен для конкурентного
//     использования при потокобезопасных хранилищах;
//   - ошибки — sentinel-значения ниже, обёрнутые контекстом операции;
//     транспорт маппит их на HTTP-статусы и коды ответа;
//   - состояние многошаговых сценариев живёт в EphemeralStorage (Redis),
//     переходы проверяет wizard.Machine.
package service

import (
	"crypto/rand"
	"errors"
	"io"
	"time"

	"github.com/pribylovaa/party-one/internal/config"
	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/metrics"
	"github.com/pribylovaa/party-one/internal/payments"
	"github.com/pribylovaa/party-one/internal/storage"
)

var (
	// ErrInvalidArgument — нарушены ограничения входных данных.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — запрошенная сущность отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrInvalidEmail — e-mail пуст или некорректен.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword — пароль короче минимальной длины.
	ErrWeakPassword = errors.New("password is too weak")
	// ErrPasswordMismatch — пароль и подтверждение не совпадают.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmailTaken — e-mail уже зарегистрирован.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials — пара логин/пароль неверна.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound — учётки с таким e-mail нет.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserDisabled — учётка заблокирована.
	ErrUserDisabled = errors.New("user disabled")
	// ErrEmailNotVerified — вход по паролю до подтверждения e-mail.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrTooManyRequests — превышен лимит запросов (cooldown).
	ErrTooManyRequests = errors.New("too many requests")
	// ErrOperationNotAllowed — способ входа отключён конфигурацией.
	ErrOperationNotAllowed = errors.New("operation not allowed")

	// ErrInvalidToken — токен некорректен, подделан или неизвестен.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenRevoked — токен отозван.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrRefreshTokenCollision — не удалось подобрать уникальный refresh-токен.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrInvalidOTP — код не из четырёх цифр.
	ErrInvalidOTP = errors.New("otp must be 4 digits")
	// ErrWrongOTP — код не совпал.
	ErrWrongOTP = errors.New("wrong otp")
	// ErrOTPExpired — код истёк или не запрашивался.
	ErrOTPExpired = errors.New("otp expired")
	// ErrTooManyAttempts — исчерпаны попытки ввода кода.
	ErrTooManyAttempts = errors.New("too many otp attempts")
	// ErrWizardState — шаг сценария вызван не в свою очередь.
	ErrWizardState = errors.New("wizard step out of order")

	// ErrKYCRequired — заявка на членство без KYC.
	ErrKYCRequired = errors.New("kyc required")
	// ErrProfileIncomplete — заявка на членство с неполным профилем.
	ErrProfileIncomplete = errors.New("profile incomplete")
	// ErrUpgradeNotAllowed — переход между уровнями не разрешён.
	ErrUpgradeNotAllowed = errors.New("membership upgrade not allowed")
	// ErrPlanNotFound — план не найден у выбранного уровня.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrPaymentInvalid — подтверждение оплаты не прошло проверку.
	ErrPaymentInvalid = errors.New("invalid payment confirmation")
	// ErrAlreadyPaid — заявка уже оплачена.
	ErrAlreadyPaid = errors.New("request already paid")

	// ErrUploadsDisabled — хранилище файлов не сконфигурировано.
	ErrUploadsDisabled = errors.New("uploads disabled")
	// ErrDocumentMissing — документ не загружен или не прошёл проверку.
	ErrDocumentMissing = errors.New("document missing")
)

// Deps — зависимости Service. Files, Events, Google, Payments и Metrics
// необязательны.
type Deps struct {
	Accounts  storage.AccountStorage
	Documents storage.DocumentStorage
	Ephemeral storage.EphemeralStorage
	Files     storage.FileStorage
	Events    events.Publisher
	Google    GoogleProvider
	Payments  *payments.Linker
	Metrics   *metrics.Metrics
}

// Service описывает бизнес-логику party-one.
type Service struct {
	accounts  storage.AccountStorage
	documents storage.DocumentStorage
	ephemeral storage.EphemeralStorage
	files     storage.FileStorage
	events    events.Publisher
	google    GoogleProvider
	payments  *payments.Linker
	metrics   *metrics.Metrics

	cfg *config.Config

	now  func() time.Time
	rand io.Reader
}

// New создаёт экземпляр Service.
func New(d Deps, cfg *config.Config) *Service {
	s := &Service{
		accounts:  d.Accounts,
		documents: d.Documents,
		ephemeral: d.Ephemeral,
		files:     d.Files,
		events:    d.Events,
		google:    d.Google,
		payments:  d.Payments,
		metrics:   d.Metrics,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		rand:      rand.Reader,
	}

	if s.events == nil {
		s.events = events.LogPublisher{}
	}

	if s.payments == nil {
		secret := cfg.Payments.SigningSecret
		if secret == "" {
			secret = cfg.Auth.JWTSecret
		}

		s.payments = payments.NewLinker(cfg.Payments.CheckoutURL, secret, cfg.Payments.WebhookSecret, cfg.Auth.Issuer, cfg.Payments.LinkTTL)
	}

	return s
}
