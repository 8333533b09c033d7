package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/profile"
	"github.com/pribylovaa/party-one/internal/storage"
)

// ProfileStatus — сводка по полноте профиля и праву подать заявку.
type ProfileStatus struct {
	Complete           bool
	Missing            []profile.Field
	NextRoute          profile.Route
	PlaceholderContact bool
	HasKYC             bool
	Eligibility        profile.Eligibility
}

// Profile возвращает профиль пользователя.
func (s *Service) Profile(ctx context.Context, uid uuid.UUID) (*models.Profile, error) {
	const op = "service.profile.Profile"

	if uid == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p, err := s.documents.Profile(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// UpdateProfile применяет частичное обновление (merge). Поля активного
// членства меняются только подтверждением оплаты.
func (s *Service) UpdateProfile(ctx context.Context, uid uuid.UUID, upd models.ProfileUpdate) (*models.Profile, error) {
	const op = "service.profile.UpdateProfile"

	if uid == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if upd.ActiveMembershipID != nil || upd.ActiveMembershipName != nil {
		return nil, fmt.Errorf("%s: %w: membership is read-only", op, ErrInvalidArgument)
	}

	if err := s.normalizeUpdate(&upd); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upd.IsEmpty() {
		return s.Profile(ctx, uid)
	}

	p, err := s.documents.MergeProfile(ctx, uid, upd, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *Service) normalizeUpdate(upd *models.ProfileUpdate) error {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidArgument)
		}
		upd.Name = &name
	}

	if upd.Gender != nil && (*upd.Gender < models.GenderUnspecified || *upd.Gender > models.GenderOther) {
		return fmt.Errorf("%w: gender", ErrInvalidArgument)
	}

	if upd.DOB != nil && upd.DOB.After(s.now()) {
		return fmt.Errorf("%w: dob in the future", ErrInvalidArgument)
	}

	if upd.Contacts != nil {
		contacts := make([]models.Contact, 0, len(*upd.Contacts))
		for _, c := range *upd.Contacts {
			c.ContactNo = strings.TrimSpace(c.ContactNo)
			if c.Mode != models.ContactPhone && c.Mode != models.ContactWhatsApp {
				return fmt.Errorf("%w: contact mode %q", ErrInvalidArgument, c.Mode)
			}
			contacts = append(contacts, c)
		}
		upd.Contacts = &contacts
	}

	for _, pl := range []*models.Place{upd.HomeCountry, upd.HomeState, upd.HomeCity} {
		if pl == nil {
			continue
		}

		pl.ID = strings.TrimSpace(pl.ID)
		pl.Name = strings.TrimSpace(pl.Name)
	}

	return nil
}

// ProfileStatus вычисляет полноту профиля, маршрут и право на заявку.
func (s *Service) ProfileStatus(ctx context.Context, uid uuid.UUID) (*ProfileStatus, error) {
	const op = "service.profile.ProfileStatus"

	p, err := s.Profile(ctx, uid)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p = nil
	}

	hasKYC, err := s.hasKYC(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ProfileStatus{
		Complete:           profile.IsComplete(p),
		Missing:            profile.Missing(p),
		NextRoute:          profile.NextRoute(p),
		PlaceholderContact: profile.OnlyPlaceholderContact(p),
		HasKYC:             hasKYC,
		Eligibility:        profile.CheckEligibility(p, hasKYC),
	}, nil
}

// ClearProfile сбрасывает обязательные поля профиля (операторская команда).
func (s *Service) ClearProfile(ctx context.Context, uid uuid.UUID) error {
	const op = "service.profile.ClearProfile"

	if err := s.documents.ClearProfileFields(ctx, uid, s.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) hasKYC(ctx context.Context, uid uuid.UUID) (bool, error) {
	_, err := s.documents.KYCByUser(ctx, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
