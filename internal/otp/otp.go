// Package otp — четырёхзначные одноразовые коды: генерация, проверка
// формата, хэширование для хранения и модель поля ввода из четырёх ячеек.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Length — число цифр в коде.
const Length = 4

var (
	// ErrInvalidCode — код не состоит ровно из Length цифр.
	ErrInvalidCode = errors.New("otp: code must be exactly 4 digits")
	// ErrInvalidDigit — в ячейку вводится не одна цифра.
	ErrInvalidDigit = errors.New("otp: cell accepts a single digit")
	// ErrIndexOutOfRange — номер ячейки вне [0, Length).
	ErrIndexOutOfRange = errors.New("otp: cell index out of range")
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Validate проверяет, что code — ровно Length ASCII-цифр.
func Validate(code string) error {
	if len(code) != Length {
		return ErrInvalidCode
	}

	for i := 0; i < len(code); i++ {
		if !isDigit(code[i]) {
			return ErrInvalidCode
		}
	}

	return nil
}

// ParsePaste разбирает вставленный текст. Принимается только строка из
// Length цифр (пробелы по краям отбрасываются).
func ParsePaste(text string) (string, error) {
	code := strings.TrimSpace(text)
	if err := Validate(code); err != nil {
		return "", err
	}

	return code, nil
}

// Generate выдаёт случайный код из r (crypto/rand.Reader, если r == nil).
func Generate(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}

	limit := big.NewInt(10_000)
	n, err := rand.Int(r, limit)
	if err != nil {
		return "", fmt.Errorf("otp: generate: %w", err)
	}

	return fmt.Sprintf("%0*d", Length, n.Int64()), nil
}

// Hash возвращает sha256(scope + ":" + code) в hex. scope привязывает код
// к потоку и адресату, чтобы один код нельзя было предъявить в другом потоке.
func Hash(scope, code string) string {
	sum := sha256.Sum256([]byte(scope + ":" + code))
	return hex.EncodeToString(sum[:])
}

// Equal сравнивает хэши за постоянное время.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
