package partyclient

import "github.com/pribylovaa/party-one/pkg/api"

// Тексты для пользователя по коду ошибки. Код auth/wrong-password сервер
// не выдаёт (он отвечает auth/invalid-credential), но таблица входа его
// знает.
var (
	loginMessages = map[string]string{
		api.CodeInvalidEmail:      "Invalid email address.",
		api.CodeUserDisabled:      "This account has been disabled.",
		api.CodeUserNotFound:      "No account found with this email.",
		"auth/wrong-password":     "Incorrect password.",
		api.CodeInvalidCredential: "Invalid email or password.",
		api.CodeTooManyRequests:   "Too many failed attempts. Please try again later.",
		api.CodeNetworkFailed:     "Network error. Please check your connection.",
	}

	registerMessages = map[string]string{
		api.CodeEmailInUse:        "This email is already registered.",
		api.CodeInvalidEmail:      "Invalid email address.",
		api.CodeOperationNotAllow: "Email/password accounts are not enabled.",
		api.CodeWeakPassword:      "Password is too weak.",
		api.CodeNetworkFailed:     "Network error. Please check your connection.",
	}
)

const (
	loginFallback    = "Login failed. Please try again."
	registerFallback = "Registration failed. Please try again."
)

// LoginMessage возвращает текст ошибки входа для показа пользователю.
func LoginMessage(err error) string {
	if m, ok := loginMessages[Code(err)]; ok {
		return m
	}

	return loginFallback
}

// RegisterMessage возвращает текст ошибки регистрации.
func RegisterMessage(err error) string {
	if m, ok := registerMessages[Code(err)]; ok {
		return m
	}

	return registerFallback
}
