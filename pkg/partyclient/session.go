package partyclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pribylovaa/party-one/pkg/api"
)

// Session — локальная копия состояния пользователя.
type Session struct {
	Version   int64        `json:"version"`
	User      *api.User    `json:"user,omitempty"`
	Tokens    *api.Tokens  `json:"tokens,omitempty"`
	Profile   *api.Profile `json:"profile,omitempty"`
	NextRoute string       `json:"next_route,omitempty"`
}

// SessionStore хранит Session в памяти и, если задан путь, в JSON-файле.
// Каждая запись увеличивает Version.
type SessionStore struct {
	path string

	mu  sync.Mutex
	cur Session
}

// OpenSessionStore читает сессию из path. Отсутствующий файл — пустая
// сессия. Пустой path — хранилище только в памяти.
func OpenSessionStore(path string) (*SessionStore, error) {
	s := &SessionStore{path: path}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("partyclient: read session: %w", err)
	}

	if err := json.Unmarshal(raw, &s.cur); err != nil {
		return nil, fmt.Errorf("partyclient: parse session %s: %w", path, err)
	}

	return s, nil
}

// Load возвращает копию текущей сессии.
func (s *SessionStore) Load() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Replace заменяет сессию целиком (кроме Version).
func (s *SessionStore) Replace(next Session) (Session, error) {
	return s.update(func(cur *Session) {
		v := cur.Version
		*cur = next
		cur.Version = v
	})
}

// Merge накладывает на сессию ненулевые поля patch. Профиль сливается
// по полям; contacts заменяются, только если переданы.
func (s *SessionStore) Merge(patch Session) (Session, error) {
	return s.update(func(cur *Session) {
		if patch.User != nil {
			cur.User = patch.User
		}
		if patch.Tokens != nil {
			cur.Tokens = patch.Tokens
		}
		if patch.NextRoute != "" {
			cur.NextRoute = patch.NextRoute
		}
		if patch.Profile != nil {
			cur.Profile = mergeProfile(cur.Profile, patch.Profile)
		}
	})
}

// Clear удаляет пользовательские данные.
func (s *SessionStore) Clear() error {
	_, err := s.update(func(cur *Session) {
		*cur = Session{Version: cur.Version}
	})
	return err
}

func (s *SessionStore) setProfile(p *api.Profile) error {
	_, err := s.update(func(cur *Session) { cur.Profile = p })
	return err
}

func (s *SessionStore) update(fn func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	fn(&next)
	next.Version = s.cur.Version + 1

	if err := s.persist(next); err != nil {
		return s.cur, err
	}

	s.cur = next

	return next, nil
}

// persist пишет файл через временный файл и rename.
func (s *SessionStore) persist(sess Session) error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("partyclient: encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("partyclient: session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("partyclient: write session: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("partyclient: write session: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("partyclient: write session: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("partyclient: write session: %w", err)
	}

	return nil
}

func mergeProfile(cur, patch *api.Profile) *api.Profile {
	if cur == nil {
		cp := *patch
		return &cp
	}

	out := *cur

	if patch.UserID != "" {
		out.UserID = patch.UserID
	}
	if patch.Email != "" {
		out.Email = patch.Email
	}
	if patch.Name != "" {
		out.Name = patch.Name
	}
	if patch.Gender != nil {
		out.Gender = patch.Gender
	}
	if patch.DOB != nil {
		out.DOB = patch.DOB
	}
	if patch.Contacts != nil {
		out.Contacts = patch.Contacts
	}
	if patch.HomeCountry != nil {
		out.HomeCountry = patch.HomeCountry
	}
	if patch.HomeState != nil {
		out.HomeState = patch.HomeState
	}
	if patch.HomeCity != nil {
		out.HomeCity = patch.HomeCity
	}
	if patch.Roles != nil {
		out.Roles = patch.Roles
	}
	if patch.ProfileImage != "" {
		out.ProfileImage = patch.ProfileImage
	}
	if patch.SmokingHabit {
		out.SmokingHabit = true
	}
	if patch.DrinkingHabit {
		out.DrinkingHabit = true
	}
	if patch.ActiveMembershipID != nil {
		out.ActiveMembershipID = patch.ActiveMembershipID
	}
	if patch.ActiveMembershipName != nil {
		out.ActiveMembershipName = patch.ActiveMembershipName
	}
	if patch.LoyaltyPoints != 0 {
		out.LoyaltyPoints = patch.LoyaltyPoints
	}
	if !patch.CreatedAt.IsZero() {
		out.CreatedAt = patch.CreatedAt
	}
	if !patch.UpdatedAt.IsZero() {
		out.UpdatedAt = patch.UpdatedAt
	}

	return &out
}
