// Package redact маскирует чувствительные значения перед записью в лог:
// e-mail, номера телефонов, токены, пароли и OTP.
package redact

import "strings"

// Email маскирует e-mail для логирования.
//
// Строка должна содержать ровно один '@', иначе возвращается "***".
// Локальная часть сокращается до двух первых рун + "***" (или "***",
// если она короче трёх рун). Домен сохраняется без изменений.
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}

	i := strings.IndexByte(s, '@')
	local, domain := s[:i], s[i+1:]

	lr := []rune(local)
	if len(lr) > 2 {
		local = string(lr[:2]) + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Phone оставляет только последние две цифры номера.
func Phone(s string) string {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	if len(digits) <= 2 {
		return "***"
	}

	return "***" + string(digits[len(digits)-2:])
}

// Token возвращает литерал-заглушку для токена в логах.
func Token() string { return "[REDACTED_TOKEN]" }

// Password возвращает литерал-заглушку для пароля в логах.
func Password() string { return "[REDACTED_PASSWORD]" }

// OTP возвращает литерал-заглушку для одноразового кода.
func OTP() string { return "[REDACTED_OTP]" }
