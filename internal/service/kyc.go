package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/storage"
	"github.com/pribylovaa/party-one/internal/wizard"
)

// KYCInput — анкета KYC с ключами ранее загруженных документов.
type KYCInput struct {
	Name                string
	Nationality         string
	Residency           string
	HomeCountry         models.Place
	HomeState           models.Place
	HomeCity            models.Place
	PermanentAddress    string
	Zipcode             string
	GovernmentIDNumber  string
	FrequencyOfClubbing string
	GovtIDFrontKey      string
	GovtIDBackKey       string
	UserImageKey        string
}

// SubmitKYC проводит анкету через шаги details → documents → submitted и
// сохраняет её со статусом pending. Повторная подача заменяет анкету.
func (s *Service) SubmitKYC(ctx context.Context, uid uuid.UUID, in KYCInput) (*models.KYC, error) {
	const op = "service.kyc.SubmitKYC"

	if uid == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	m := wizard.New(wizard.KYC)

	if _, err := m.Do(ctx, wizard.StepDetails, func(context.Context) error {
		return validateKYCDetails(&in)
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := m.Do(ctx, wizard.StepDocuments, func(ctx context.Context) error {
		for _, d := range []struct {
			kind models.DocumentKind
			key  string
		}{
			{models.DocGovtIDFront, in.GovtIDFrontKey},
			{models.DocGovtIDBack, in.GovtIDBackKey},
			{models.DocUserImage, in.UserImageKey},
		} {
			if err := s.checkUpload(ctx, uid, d.kind, d.key); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	k := &models.KYC{
		UserID:              uid,
		Name:                in.Name,
		Nationality:         in.Nationality,
		Residency:           in.Residency,
		HomeCountry:         in.HomeCountry,
		HomeState:           in.HomeState,
		HomeCity:            in.HomeCity,
		PermanentAddress:    in.PermanentAddress,
		Zipcode:             in.Zipcode,
		GovernmentIDNumber:  in.GovernmentIDNumber,
		FrequencyOfClubbing: in.FrequencyOfClubbing,
		GovtIDFrontKey:      in.GovtIDFrontKey,
		GovtIDBackKey:       in.GovtIDBackKey,
		UserImageKey:        in.UserImageKey,
		Status:              models.KYCPending,
		SubmittedAt:         s.now(),
	}

	if err := s.documents.SaveKYC(ctx, k); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.events.Publish(ctx, events.New(events.TypeKYCSubmitted, events.UserRef{UserID: uid.String()})); err != nil {
		log.From(ctx).Warn("kyc_event_publish_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return k, nil
}

// KYC возвращает анкету пользователя; ErrNotFound — анкеты нет.
func (s *Service) KYC(ctx context.Context, uid uuid.UUID) (*models.KYC, error) {
	const op = "service.kyc.KYC"

	k, err := s.documents.KYCByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return k, nil
}

func validateKYCDetails(in *KYCInput) error {
	for _, f := range []*string{
		&in.Name, &in.Nationality, &in.Residency, &in.PermanentAddress,
		&in.Zipcode, &in.GovernmentIDNumber, &in.FrequencyOfClubbing,
	} {
		*f = strings.TrimSpace(*f)
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}

	if in.Nationality == "" {
		missing = append(missing, "nationality")
	}

	if in.Residency == "" {
		missing = append(missing, "residency")
	}

	if in.GovernmentIDNumber == "" {
		missing = append(missing, "government_id_number")
	}

	if !in.HomeCountry.IsSet() {
		missing = append(missing, "home_country")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidArgument, strings.Join(missing, ", "))
	}

	return nil
}
