// Package wizard — конечный автомат для линейных многошаговых сценариев
// (сброс пароля, удаление аккаунта, KYC).
//
// Автомат двигается только вперёд и только на соседний шаг. Действие шага
// выполняется через Do: при ошибке состояние не меняется, при успехе
// автомат переходит на следующий шаг. Одновременно выполняется не более
// одного действия.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State — шаг сценария.
type State string

var (
	ErrUnknownState      = errors.New("wizard: unknown state")
	ErrInvalidTransition = errors.New("wizard: invalid transition")
	ErrFinished          = errors.New("wizard: flow already finished")
	ErrBusy              = errors.New("wizard: step in progress")
)

// Flow — упорядоченный набор шагов. Последний шаг терминальный.
type Flow struct {
	Name  string
	Steps []State
}

// Сценарии party-one.
var (
	PasswordReset = Flow{
		Name:  "password_reset",
		Steps: []State{"email", "otp", "reset", "success"},
	}

	AccountDeletion = Flow{
		Name:  "account_deletion",
		Steps: []State{"request", "otp", "confirm", "deleted"},
	}

	KYC = Flow{
		Name:  "kyc",
		Steps: []State{"details", "documents", "submitted"},
	}
)

// Шаги сценариев.
const (
	StepEmail   State = "email"
	StepOTP     State = "otp"
	StepReset   State = "reset"
	StepSuccess State = "success"

	StepRequest State = "request"
	StepConfirm State = "confirm"
	StepDeleted State = "deleted"

	StepDetails   State = "details"
	StepDocuments State = "documents"
	StepSubmitted State = "submitted"
)

func (f Flow) index(s State) int {
	for i, st := range f.Steps {
		if st == s {
			return i
		}
	}

	return -1
}

// Next возвращает шаг, следующий за s.
func (f Flow) Next(s State) (State, error) {
	i := f.index(s)
	switch {
	case i < 0:
		return "", fmt.Errorf("%w: %q in %s", ErrUnknownState, s, f.Name)
	case i == len(f.Steps)-1:
		return "", ErrFinished
	default:
		return f.Steps[i+1], nil
	}
}

// Machine — экземпляр сценария.
type Machine struct {
	flow Flow

	mu   sync.Mutex
	idx  int
	busy bool
}

// New создаёт автомат на первом шаге сценария.
func New(flow Flow) *Machine {
	return &Machine{flow: flow}
}

// Restore создаёт автомат на шаге s (например, из сохранённой сессии).
func Restore(flow Flow, s State) (*Machine, error) {
	i := flow.index(s)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownState, s, flow.Name)
	}

	return &Machine{flow: flow, idx: i}, nil
}

// Flow возвращает описание сценария.
func (m *Machine) Flow() Flow { return m.flow }

// State возвращает текущий шаг.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.flow.Steps[m.idx]
}

// Finished — автомат на терминальном шаге.
func (m *Machine) Finished() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.idx == len(m.flow.Steps)-1
}

// Busy — выполняется действие шага.
func (m *Machine) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.busy
}

// Advance переводит автомат с шага from на следующий.
func (m *Machine) Advance(from State) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return m.flow.Steps[m.idx], ErrBusy
	}

	return m.advanceLocked(from)
}

func (m *Machine) advanceLocked(from State) (State, error) {
	cur := m.flow.Steps[m.idx]
	if cur != from {
		return cur, fmt.Errorf("%w: at %q, not %q", ErrInvalidTransition, cur, from)
	}

	if m.idx == len(m.flow.Steps)-1 {
		return cur, ErrFinished
	}

	m.idx++

	return m.flow.Steps[m.idx], nil
}

// Do выполняет действие шага from. Автомат должен стоять на from и не
// выполнять другое действие. При успехе переходит на следующий шаг и
// возвращает его; при ошибке остаётся на from.
func (m *Machine) Do(ctx context.Context, from State, action func(ctx context.Context) error) (State, error) {
	m.mu.Lock()
	cur := m.flow.Steps[m.idx]
	switch {
	case m.busy:
		m.mu.Unlock()
		return cur, ErrBusy
	case cur != from:
		m.mu.Unlock()
		return cur, fmt.Errorf("%w: at %q, not %q", ErrInvalidTransition, cur, from)
	case m.idx == len(m.flow.Steps)-1:
		m.mu.Unlock()
		return cur, ErrFinished
	}
	m.busy = true
	m.mu.Unlock()

	err := action(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false

	if err != nil {
		return cur, err
	}

	return m.advanceLocked(from)
}
