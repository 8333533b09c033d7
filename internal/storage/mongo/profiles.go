package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/storage"
)

type contactDoc struct {
	ContactNo  string `bson:"contact_no"`
	Mode       string `bson:"mode"`
	IsActive   bool   `bson:"is_active"`
	IsVerified bool   `bson:"is_verified"`
}

// profileDoc — документ коллекции users. Nullable-поля хранятся как null.
type profileDoc struct {
	ID                   string       `bson:"_id"`
	Email                string       `bson:"email"`
	Name                 string       `bson:"name"`
	Gender               *string      `bson:"gender"`
	DOB                  *time.Time   `bson:"dob"`
	Contacts             []contactDoc `bson:"contacts"`
	HomeCountry          *string      `bson:"home_country"`
	HomeCountryName      *string      `bson:"home_country_name"`
	HomeState            *string      `bson:"home_state"`
	HomeStateName        *string      `bson:"home_state_name"`
	HomeCity             *string      `bson:"home_city"`
	HomeCityName         *string      `bson:"home_city_name"`
	Role                 []string     `bson:"role"`
	ProfileImage         *string      `bson:"profile_image"`
	SmokingHabit         bool         `bson:"smoking_habbit"`
	DrinkingHabit        bool         `bson:"drinking_habbit"`
	ActiveMembershipID   *string      `bson:"active_membership_id"`
	ActiveMembershipName *string      `bson:"active_membership_name"`
	LoyaltyPoints        int64        `bson:"loyalty_points"`
	CreatedAt            time.Time    `bson:"created_at"`
	UpdatedAt            time.Time    `bson:"updated_at"`
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}

func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

func contactsToDoc(cs []models.Contact) []contactDoc {
	out := make([]contactDoc, 0, len(cs))
	for _, c := range cs {
		out = append(out, contactDoc{
			ContactNo:  c.ContactNo,
			Mode:       string(c.Mode),
			IsActive:   c.IsActive,
			IsVerified: c.IsVerified,
		})
	}

	return out
}

func profileToDoc(p *models.Profile) profileDoc {
	d := profileDoc{
		ID:                   p.UserID.String(),
		Email:                p.Email,
		Name:                 p.Name,
		Gender:               strPtr(p.Gender.String()),
		Contacts:             contactsToDoc(p.Contacts),
		HomeCountry:          strPtr(p.HomeCountry.ID),
		HomeCountryName:      strPtr(p.HomeCountry.Name),
		HomeState:            strPtr(p.HomeState.ID),
		HomeStateName:        strPtr(p.HomeState.Name),
		HomeCity:             strPtr(p.HomeCity.ID),
		HomeCityName:         strPtr(p.HomeCity.Name),
		Role:                 p.Roles,
		ProfileImage:         strPtr(p.ProfileImage),
		SmokingHabit:         p.SmokingHabit,
		DrinkingHabit:        p.DrinkingHabit,
		ActiveMembershipID:   strPtr(p.ActiveMembershipID),
		ActiveMembershipName: strPtr(p.ActiveMembershipName),
		LoyaltyPoints:        p.LoyaltyPoints,
		CreatedAt:            toMS(p.CreatedAt),
		UpdatedAt:            toMS(p.UpdatedAt),
	}

	if p.DOB != nil {
		dob := p.DOB.UTC()
		d.DOB = &dob
	}

	if d.Role == nil {
		d.Role = []string{}
	}

	return d
}

func (d profileDoc) toModel() (*models.Profile, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("bad profile id %q: %w", d.ID, err)
	}

	gender, _ := models.ParseGender(strVal(d.Gender))

	p := &models.Profile{
		UserID:               id,
		Email:                d.Email,
		Name:                 d.Name,
		Gender:               gender,
		HomeCountry:          models.Place{ID: strVal(d.HomeCountry), Name: strVal(d.HomeCountryName)},
		HomeState:            models.Place{ID: strVal(d.HomeState), Name: strVal(d.HomeStateName)},
		HomeCity:             models.Place{ID: strVal(d.HomeCity), Name: strVal(d.HomeCityName)},
		Roles:                d.Role,
		ProfileImage:         strVal(d.ProfileImage),
		SmokingHabit:         d.SmokingHabit,
		DrinkingHabit:        d.DrinkingHabit,
		ActiveMembershipID:   strVal(d.ActiveMembershipID),
		ActiveMembershipName: strVal(d.ActiveMembershipName),
		LoyaltyPoints:        d.LoyaltyPoints,
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}

	if d.DOB != nil {
		dob := d.DOB.UTC()
		p.DOB = &dob
	}

	for _, c := range d.Contacts {
		p.Contacts = append(p.Contacts, models.Contact{
			ContactNo:  c.ContactNo,
			Mode:       models.ContactMode(c.Mode),
			IsActive:   c.IsActive,
			IsVerified: c.IsVerified,
		})
	}

	return p, nil
}

// updateToSet переводит ProfileUpdate в $set-документ.
// Пустые значения мест и строк записываются как null.
func updateToSet(upd models.ProfileUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": toMS(now)}

	if upd.Name != nil {
		set["name"] = *upd.Name
	}

	if upd.Gender != nil {
		set["gender"] = strPtr(upd.Gender.String())
	}

	if upd.DOB != nil {
		set["dob"] = upd.DOB.UTC()
	}

	if upd.Contacts != nil {
		set["contacts"] = contactsToDoc(*upd.Contacts)
	}

	place := func(idKey, nameKey string, p *models.Place) {
		if p == nil {
			return
		}
		set[idKey] = strPtr(p.ID)
		set[nameKey] = strPtr(p.Name)
	}
	place("home_country", "home_country_name", upd.HomeCountry)
	place("home_state", "home_state_name", upd.HomeState)
	place("home_city", "home_city_name", upd.HomeCity)

	if upd.ProfileImage != nil {
		set["profile_image"] = strPtr(*upd.ProfileImage)
	}

	if upd.SmokingHabit != nil {
		set["smoking_habbit"] = *upd.SmokingHabit
	}

	if upd.DrinkingHabit != nil {
		set["drinking_habbit"] = *upd.DrinkingHabit
	}

	if upd.ActiveMembershipID != nil {
		set["active_membership_id"] = strPtr(*upd.ActiveMembershipID)
	}

	if upd.ActiveMembershipName != nil {
		set["active_membership_name"] = strPtr(*upd.ActiveMembershipName)
	}

	return set
}

// Profile возвращает профиль пользователя.
func (m *Mongo) Profile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "storage/mongo/Profile"

	var d profileDoc
	if err := m.GetDocument(ctx, UsersCollection, userID.String(), &d); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := d.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// CreateProfile вставляет новый документ; ErrAlreadyExists, если он уже есть.
func (m *Mongo) CreateProfile(ctx context.Context, p *models.Profile) error {
	const op = "storage/mongo/CreateProfile"

	if _, err := m.users.InsertOne(ctx, profileToDoc(p)); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MergeProfile применяет заданные поля к существующему документу.
func (m *Mongo) MergeProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate, now time.Time) (*models.Profile, error) {
	const op = "storage/mongo/MergeProfile"

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d profileDoc
	err := m.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: userID.String()}},
		bson.D{{Key: "$set", Value: updateToSet(upd, now)}},
		opts,
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := d.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// ClearProfileFields удаляет gender, dob и локации, очищает contacts.
// После этого профиль снова считается неполным.
func (m *Mongo) ClearProfileFields(ctx context.Context, userID uuid.UUID, now time.Time) error {
	const op = "storage/mongo/ClearProfileFields"

	update := bson.D{
		{Key: "$unset", Value: bson.D{
			{Key: "gender", Value: ""},
			{Key: "dob", Value: ""},
			{Key: "home_country", Value: ""},
			{Key: "home_country_name", Value: ""},
			{Key: "home_state", Value: ""},
			{Key: "home_state_name", Value: ""},
			{Key: "home_city", Value: ""},
			{Key: "home_city_name", Value: ""},
		}},
		{Key: "$set", Value: bson.D{
			{Key: "contacts", Value: []contactDoc{}},
			{Key: "updated_at", Value: toMS(now)},
		}},
	}

	res, err := m.users.UpdateByID(ctx, userID.String(), update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteProfile удаляет документ профиля.
func (m *Mongo) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	const op = "storage/mongo/DeleteProfile"

	if err := m.DeleteDocument(ctx, UsersCollection, userID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ExistingProfiles возвращает ids, для которых есть документ профиля.
func (m *Mongo) ExistingProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	const op = "storage/mongo/ExistingProfiles"

	out := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	cur, err := m.users.Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: keys}}}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, d := range docs {
		if id, err := uuid.Parse(d.ID); err == nil {
			out[id] = true
		}
	}

	return out, nil
}
