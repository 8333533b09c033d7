// errors стандартизирует ответы об ошибках HTTP-слоя party-one.
// На вход он принимает ошибку сервисного слоя (sentinel, обёрнутый
// контекстом операции), а на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный код (auth/invalid-email, otp/expired, ...);
//   - краткое безопасное message без утечки деталей.
//
// Детали исходной ошибки в ответ не попадают; их пишет в лог WriteError.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/service"
	"github.com/pribylovaa/party-one/pkg/api"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

var (
	// ErrUnauthenticated — запрос без валидного Bearer-токена.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrBadRequest — тело или параметры запроса не разобрались.
	ErrBadRequest = errors.New("bad request")
)

type mapping struct {
	err     error
	status  int
	code    string
	message string
}

// table — порядок важен: первая совпавшая запись выигрывает.
var table = []mapping{
	{service.ErrInvalidEmail, http.StatusBadRequest, api.CodeInvalidEmail, "invalid email address"},
	{service.ErrWeakPassword, http.StatusBadRequest, api.CodeWeakPassword, "password is too weak"},
	{service.ErrPasswordMismatch, http.StatusBadRequest, api.CodePasswordMismatch, "passwords do not match"},
	{service.ErrEmailTaken, http.StatusConflict, api.CodeEmailInUse, "email already registered"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, api.CodeInvalidCredential, "invalid email or password"},
	{service.ErrUserNotFound, http.StatusNotFound, api.CodeUserNotFound, "no account found with this email"},
	{service.ErrUserDisabled, http.StatusForbidden, api.CodeUserDisabled, "account disabled"},
	{service.ErrEmailNotVerified, http.StatusForbidden, api.CodeEmailNotVerified, "email not verified"},
	{service.ErrTooManyRequests, http.StatusTooManyRequests, api.CodeTooManyRequests, "too many requests"},
	{service.ErrOperationNotAllowed, http.StatusForbidden, api.CodeOperationNotAllow, "operation not allowed"},
	{ErrUnauthenticated, http.StatusUnauthorized, api.CodeUnauthenticated, "unauthenticated"},
	{service.ErrInvalidToken, http.StatusUnauthorized, api.CodeInvalidToken, "invalid token"},
	{service.ErrTokenExpired, http.StatusUnauthorized, api.CodeTokenExpired, "token expired"},
	{service.ErrTokenRevoked, http.StatusUnauthorized, api.CodeTokenRevoked, "token revoked"},
	{service.ErrInvalidOTP, http.StatusBadRequest, api.CodeOTPInvalid, "otp must be 4 digits"},
	{service.ErrWrongOTP, http.StatusBadRequest, api.CodeOTPMismatch, "wrong otp"},
	{service.ErrOTPExpired, http.StatusGone, api.CodeOTPExpired, "otp expired"},
	{service.ErrTooManyAttempts, http.StatusTooManyRequests, api.CodeOTPTooManyAttempts, "too many otp attempts"},
	{service.ErrWizardState, http.StatusConflict, api.CodeWizardOutOfOrder, "step out of order"},
	{service.ErrKYCRequired, http.StatusPreconditionFailed, api.CodeKYCRequired, "kyc required"},
	{service.ErrProfileIncomplete, http.StatusPreconditionFailed, api.CodeProfileIncomplete, "profile incomplete"},
	{service.ErrUpgradeNotAllowed, http.StatusConflict, api.CodeUpgradeNotAllowed, "membership change not allowed"},
	{service.ErrPlanNotFound, http.StatusNotFound, api.CodePlanNotFound, "plan not found"},
	{service.ErrPaymentInvalid, http.StatusBadRequest, api.CodePaymentInvalid, "invalid payment confirmation"},
	{service.ErrAlreadyPaid, http.StatusConflict, api.CodeAlreadyPaid, "request already paid"},
	{service.ErrUploadsDisabled, http.StatusServiceUnavailable, api.CodeUploadsDisabled, "uploads disabled"},
	{service.ErrDocumentMissing, http.StatusPreconditionFailed, api.CodeDocumentMissing, "document missing"},
	{service.ErrInvalidArgument, http.StatusBadRequest, api.CodeInvalidArgument, "invalid argument"},
	{ErrBadRequest, http.StatusBadRequest, api.CodeInvalidArgument, "invalid argument"},
	{service.ErrNotFound, http.StatusNotFound, api.CodeNotFound, "not found"},
	{context.Canceled, StatusClientClosedRequest, api.CodeCanceled, "canceled"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, api.CodeDeadlineExceeded, "deadline exceeded"},
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal, чтобы не
//     послать "200 OK" с телом ошибки;
//   - известный sentinel (errors.Is) - статус и код из таблицы;
//   - прочее - 500/internal без деталей.
func ToHTTP(err error) (int, api.ErrorResponse) {
	if err != nil {
		for _, m := range table {
			if errors.Is(err, m.err) {
				return m.status, api.ErrorResponse{
					Error: api.Error{Code: m.code, Message: m.message},
				}
			}
		}
	}

	return http.StatusInternalServerError, api.ErrorResponse{
		Error: api.Error{Code: api.CodeInternal, Message: "internal error"},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус и тело, добавляет request_id из заголовка; 5xx логирует
// с исходной ошибкой.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	if status >= http.StatusInternalServerError && err != nil {
		log.From(r.Context()).Error("http_internal_error",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
