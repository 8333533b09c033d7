package handlers

import (
	"fmt"
	"strings"
	"time"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/service"
	"github.com/pribylovaa/party-one/pkg/api"
)

func userToAPI(u *models.User) api.User {
	return api.User{
		ID:            u.ID.String(),
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Provider:      string(u.Provider),
		CreatedAt:     u.CreatedAt,
	}
}

func tokensToAPI(t models.TokenPair) api.Tokens {
	return api.Tokens{
		AccessToken:     t.AccessToken,
		RefreshToken:    t.RefreshToken,
		AccessExpiresAt: t.AccessExpiresAt,
	}
}

func sessionToAPI(s *models.Session) api.Session {
	return api.Session{
		User:      userToAPI(&s.User),
		Tokens:    tokensToAPI(s.Tokens),
		NextRoute: s.NextRoute,
		Created:   s.Created,
	}
}

func placeFromAPI(p *api.Place) models.Place {
	if p == nil {
		return models.Place{}
	}
	return models.Place{ID: p.ID, Name: p.Name}
}

func placeToAPI(p models.Place) *api.Place {
	if !p.IsSet() {
		return nil
	}
	return &api.Place{ID: p.ID, Name: p.Name}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseDOB(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(api.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: dob %q", apierrors.ErrBadRequest, s)
	}

	return &t, nil
}

func parseGender(s string) (models.Gender, error) {
	g, ok := models.ParseGender(s)
	if !ok {
		return 0, fmt.Errorf("%w: gender %q", apierrors.ErrBadRequest, s)
	}
	return g, nil
}

func registerFromAPI(in api.RegisterRequest) (service.RegisterInput, error) {
	dob, err := parseDOB(in.DOB)
	if err != nil {
		return service.RegisterInput{}, err
	}

	g, err := parseGender(in.Gender)
	if err != nil {
		return service.RegisterInput{}, err
	}

	return service.RegisterInput{
		Email:       in.Email,
		Password:    in.Password,
		Name:        in.Name,
		Gender:      g,
		DOB:         dob,
		ContactNo:   in.ContactNo,
		IsWhatsApp:  in.IsWhatsApp,
		HomeCountry: placeFromAPI(in.HomeCountry),
		HomeState:   placeFromAPI(in.HomeState),
		HomeCity:    placeFromAPI(in.HomeCity),
	}, nil
}

func contactsToAPI(cs []models.Contact) []api.Contact {
	out := make([]api.Contact, 0, len(cs))
	for _, c := range cs {
		out = append(out, api.Contact{
			ContactNo:  c.ContactNo,
			Mode:       string(c.Mode),
			IsActive:   c.IsActive,
			IsVerified: c.IsVerified,
		})
	}
	return out
}

func contactsFromAPI(cs []api.Contact) []models.Contact {
	out := make([]models.Contact, 0, len(cs))
	for _, c := range cs {
		out = append(out, models.Contact{
			ContactNo:  c.ContactNo,
			Mode:       models.ContactMode(c.Mode),
			IsActive:   c.IsActive,
			IsVerified: c.IsVerified,
		})
	}
	return out
}

func profileToAPI(p *models.Profile) api.Profile {
	out := api.Profile{
		UserID:               p.UserID.String(),
		Email:                p.Email,
		Name:                 p.Name,
		Gender:               optString(p.Gender.String()),
		Contacts:             contactsToAPI(p.Contacts),
		HomeCountry:          placeToAPI(p.HomeCountry),
		HomeState:            placeToAPI(p.HomeState),
		HomeCity:             placeToAPI(p.HomeCity),
		Roles:                p.Roles,
		ProfileImage:         p.ProfileImage,
		SmokingHabit:         p.SmokingHabit,
		DrinkingHabit:        p.DrinkingHabit,
		ActiveMembershipID:   optString(p.ActiveMembershipID),
		ActiveMembershipName: optString(p.ActiveMembershipName),
		LoyaltyPoints:        p.LoyaltyPoints,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}

	if p.DOB != nil {
		out.DOB = optString(p.DOB.Format(api.DateLayout))
	}

	if out.Roles == nil {
		out.Roles = []string{}
	}

	return out
}

// profileUpdateFromAPI переводит частичное обновление. Поля членства в
// api.ProfileUpdate отсутствуют: клиент их не меняет.
func profileUpdateFromAPI(in api.ProfileUpdate) (models.ProfileUpdate, error) {
	upd := models.ProfileUpdate{
		Name:          in.Name,
		ProfileImage:  in.ProfileImage,
		SmokingHabit:  in.SmokingHabit,
		DrinkingHabit: in.DrinkingHabit,
	}

	if in.Gender != nil {
		g, err := parseGender(*in.Gender)
		if err != nil {
			return models.ProfileUpdate{}, err
		}
		upd.Gender = &g
	}

	if in.DOB != nil {
		dob, err := parseDOB(*in.DOB)
		if err != nil {
			return models.ProfileUpdate{}, err
		}
		if dob == nil {
			return models.ProfileUpdate{}, fmt.Errorf("%w: dob is empty", apierrors.ErrBadRequest)
		}
		upd.DOB = dob
	}

	if in.Contacts != nil {
		cs := contactsFromAPI(*in.Contacts)
		upd.Contacts = &cs
	}

	for _, pair := range []struct {
		src *api.Place
		dst **models.Place
	}{
		{in.HomeCountry, &upd.HomeCountry},
		{in.HomeState, &upd.HomeState},
		{in.HomeCity, &upd.HomeCity},
	} {
		if pair.src != nil {
			pl := placeFromAPI(pair.src)
			*pair.dst = &pl
		}
	}

	return upd, nil
}

func statusToAPI(st *service.ProfileStatus) api.ProfileStatus {
	missing := make([]string, 0, len(st.Missing))
	for _, f := range st.Missing {
		missing = append(missing, string(f))
	}

	return api.ProfileStatus{
		Complete:           st.Complete,
		Missing:            missing,
		NextRoute:          string(st.NextRoute),
		PlaceholderContact: st.PlaceholderContact,
		HasKYC:             st.HasKYC,
		Eligibility:        string(st.Eligibility),
	}
}

func kycFromAPI(in api.KYC) service.KYCInput {
	return service.KYCInput{
		Name:                in.Name,
		Nationality:         in.Nationality,
		Residency:           in.Residency,
		HomeCountry:         placeFromAPI(&in.HomeCountry),
		HomeState:           placeFromAPI(&in.HomeState),
		HomeCity:            placeFromAPI(&in.HomeCity),
		PermanentAddress:    in.PermanentAddress,
		Zipcode:             in.Zipcode,
		GovernmentIDNumber:  in.GovernmentIDNumber,
		FrequencyOfClubbing: in.FrequencyOfClubbing,
		GovtIDFrontKey:      in.GovtIDFront,
		GovtIDBackKey:       in.GovtIDBack,
		UserImageKey:        in.UserImage,
	}
}

func kycToAPI(k *models.KYC) api.KYC {
	submitted := k.SubmittedAt
	return api.KYC{
		Name:                k.Name,
		Nationality:         k.Nationality,
		Residency:           k.Residency,
		HomeCountry:         api.Place{ID: k.HomeCountry.ID, Name: k.HomeCountry.Name},
		HomeState:           api.Place{ID: k.HomeState.ID, Name: k.HomeState.Name},
		HomeCity:            api.Place{ID: k.HomeCity.ID, Name: k.HomeCity.Name},
		PermanentAddress:    k.PermanentAddress,
		Zipcode:             k.Zipcode,
		GovernmentIDNumber:  k.GovernmentIDNumber,
		FrequencyOfClubbing: k.FrequencyOfClubbing,
		GovtIDFront:         k.GovtIDFrontKey,
		GovtIDBack:          k.GovtIDBackKey,
		UserImage:           k.UserImageKey,
		Status:              string(k.Status),
		SubmittedAt:         &submitted,
	}
}

func membershipsToAPI(ms []models.Membership) []api.Membership {
	out := make([]api.Membership, 0, len(ms))
	for _, m := range ms {
		plans := make([]api.Plan, 0, len(m.Plans))
		for _, p := range m.Plans {
			plans = append(plans, api.Plan{
				PlanUniqueID:   p.PlanUniqueID,
				Price:          p.Price,
				DurationMonths: p.DurationMonths,
			})
		}

		out = append(out, api.Membership{ID: m.ID, Name: m.Name, Plans: plans, Benefits: m.Benefits})
	}
	return out
}

func requestToAPI(r *models.MembershipRequest) api.MembershipRequest {
	return api.MembershipRequest{
		ID:                r.ID.String(),
		UserID:            r.UserID.String(),
		MembershipID:      r.MembershipID,
		MembershipName:    r.MembershipName,
		PlanID:            r.PlanID,
		ReferralCode:      r.ReferralCode,
		Amount:            r.Amount,
		Currency:          r.Currency,
		DurationMonths:    r.DurationMonths,
		OldMembershipID:   r.OldMembershipID,
		OldMembershipName: r.OldMembershipName,
		CabinCrew:         r.CabinCrew,
		Status:            string(r.Status),
		PaymentLink:       r.PaymentLink,
		CreatedAt:         r.CreatedAt,
		PaidAt:            r.PaidAt,
	}
}
