package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/internal/models"
)

func completeProfile() *models.Profile {
	dob := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	return &models.Profile{
		Gender:      models.GenderFemale,
		DOB:         &dob,
		Contacts:    []models.Contact{{ContactNo: "+971500000000", Mode: models.ContactPhone, IsActive: true}},
		HomeCountry: models.Place{ID: "229", Name: "United Arab Emirates"},
		HomeState:   models.Place{ID: "3797", Name: "Dubai"},
		HomeCity:    models.Place{ID: "48", Name: "Dubai"},
	}
}

func TestIsComplete_AllFieldsPresent(t *testing.T) {
	t.Parallel()

	p := completeProfile()
	require.True(t, IsComplete(p))
	require.Empty(t, Missing(p))
	require.Equal(t, RouteMembership, NextRoute(p))
}

// TestIsComplete_EachMissingField — отсутствие любого одного поля делает
// профиль неполным и возвращает ровно это поле.
func TestIsComplete_EachMissingField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mut   func(p *models.Profile)
		field Field
	}{
		{"gender", func(p *models.Profile) { p.Gender = models.GenderUnspecified }, FieldGender},
		{"dob", func(p *models.Profile) { p.DOB = nil }, FieldDOB},
		{"contacts_nil", func(p *models.Profile) { p.Contacts = nil }, FieldContacts},
		{"contacts_empty", func(p *models.Profile) { p.Contacts = []models.Contact{} }, FieldContacts},
		{"country", func(p *models.Profile) { p.HomeCountry = models.Place{Name: "only name"} }, FieldCountry},
		{"state", func(p *models.Profile) { p.HomeState = models.Place{} }, FieldState},
		{"city", func(p *models.Profile) { p.HomeCity = models.Place{} }, FieldCity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := completeProfile()
			tt.mut(p)

			require.False(t, IsComplete(p))
			require.Equal(t, []Field{tt.field}, Missing(p))
			require.Equal(t, RouteForm, NextRoute(p))
		})
	}
}

// TestIsComplete_PlaceholderContactCounts — placeholder с пустым номером
// считается непустым списком контактов, но помечается отдельно.
func TestIsComplete_PlaceholderContactCounts(t *testing.T) {
	t.Parallel()

	p := completeProfile()
	p.Contacts = models.BuildContacts("", false)

	require.True(t, IsComplete(p))
	require.False(t, HasReachableContact(p))
	require.True(t, OnlyPlaceholderContact(p))
}

func TestIsComplete_NilProfile(t *testing.T) {
	t.Parallel()

	require.False(t, IsComplete(nil))
	require.Len(t, Missing(nil), 6)
	require.Equal(t, RouteForm, NextRoute(nil))
	require.False(t, OnlyPlaceholderContact(nil))
}

func TestIsComplete_GoogleSignupProfileIsIncomplete(t *testing.T) {
	t.Parallel()

	p := &models.Profile{Name: "User", Contacts: models.BuildContacts("", false)}
	require.False(t, IsComplete(p))
	require.Equal(t, []Field{FieldGender, FieldDOB, FieldCountry, FieldState, FieldCity}, Missing(p))
}

func TestCheckEligibility(t *testing.T) {
	t.Parallel()

	complete := completeProfile()
	incomplete := completeProfile()
	incomplete.DOB = nil

	require.Equal(t, KYCRequired, CheckEligibility(complete, false))
	require.Equal(t, KYCRequired, CheckEligibility(incomplete, false))
	require.Equal(t, ProfileIncomplete, CheckEligibility(incomplete, true))
	require.Equal(t, Eligible, CheckEligibility(complete, true))
}
