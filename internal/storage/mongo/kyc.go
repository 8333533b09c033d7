package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/models"
)

// kycDoc — анкета KYC; _id совпадает с user_id (одна анкета на пользователя).
type kycDoc struct {
	ID                  string    `bson:"_id"`
	Name                string    `bson:"name"`
	Nationality         string    `bson:"nationalty"`
	Residency           string    `bson:"residency"`
	HomeCountryID       string    `bson:"home_country_id"`
	HomeCountryName     string    `bson:"home_country_name"`
	HomeStateID         string    `bson:"home_state_id"`
	HomeStateName       string    `bson:"home_state_name"`
	HomeCityID          string    `bson:"home_city_id"`
	HomeCityName        string    `bson:"home_city_name"`
	PermanentAddress    string    `bson:"permanent_address"`
	Zipcode             string    `bson:"zipcode"`
	GovernmentIDNumber  string    `bson:"government_id_number"`
	FrequencyOfClubbing string    `bson:"frequency_of_clubbing"`
	GovtIDFront         string    `bson:"govt_id_front"`
	GovtIDBack          string    `bson:"govt_id_back"`
	UserImage           string    `bson:"user_image"`
	Status              string    `bson:"status"`
	SubmittedAt         time.Time `bson:"submitted_at"`
}

// SaveKYC записывает анкету, заменяя предыдущую.
func (m *Mongo) SaveKYC(ctx context.Context, k *models.KYC) error {
	const op = "storage/mongo/SaveKYC"

	d := kycDoc{
		ID:                  k.UserID.String(),
		Name:                k.Name,
		Nationality:         k.Nationality,
		Residency:           k.Residency,
		HomeCountryID:       k.HomeCountry.ID,
		HomeCountryName:     k.HomeCountry.Name,
		HomeStateID:         k.HomeState.ID,
		HomeStateName:       k.HomeState.Name,
		HomeCityID:          k.HomeCity.ID,
		HomeCityName:        k.HomeCity.Name,
		PermanentAddress:    k.PermanentAddress,
		Zipcode:             k.Zipcode,
		GovernmentIDNumber:  k.GovernmentIDNumber,
		FrequencyOfClubbing: k.FrequencyOfClubbing,
		GovtIDFront:         k.GovtIDFrontKey,
		GovtIDBack:          k.GovtIDBackKey,
		UserImage:           k.UserImageKey,
		Status:              string(k.Status),
		SubmittedAt:         toMS(k.SubmittedAt),
	}

	if err := m.SetDocument(ctx, KYCCollection, d.ID, d, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// KYCByUser возвращает анкету пользователя.
func (m *Mongo) KYCByUser(ctx context.Context, userID uuid.UUID) (*models.KYC, error) {
	const op = "storage/mongo/KYCByUser"

	var d kycDoc
	if err := m.GetDocument(ctx, KYCCollection, userID.String(), &d); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.KYC{
		UserID:              userID,
		Name:                d.Name,
		Nationality:         d.Nationality,
		Residency:           d.Residency,
		HomeCountry:         models.Place{ID: d.HomeCountryID, Name: d.HomeCountryName},
		HomeState:           models.Place{ID: d.HomeStateID, Name: d.HomeStateName},
		HomeCity:            models.Place{ID: d.HomeCityID, Name: d.HomeCityName},
		PermanentAddress:    d.PermanentAddress,
		Zipcode:             d.Zipcode,
		GovernmentIDNumber:  d.GovernmentIDNumber,
		FrequencyOfClubbing: d.FrequencyOfClubbing,
		GovtIDFrontKey:      d.GovtIDFront,
		GovtIDBackKey:       d.GovtIDBack,
		UserImageKey:        d.UserImage,
		Status:              models.KYCStatus(d.Status),
		SubmittedAt:         d.SubmittedAt.UTC(),
	}, nil
}

// DeleteKYC удаляет анкету.
func (m *Mongo) DeleteKYC(ctx context.Context, userID uuid.UUID) error {
	const op = "storage/mongo/DeleteKYC"

	if err := m.DeleteDocument(ctx, KYCCollection, userID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
