// models содержит доменные сущности party-one.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender — пол пользователя; GenderUnspecified означает «не задан» (null).
type Gender int8

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return ""
	}
}

// ParseGender разбирает значение без учёта регистра. Пустая строка даёт
// GenderUnspecified, неизвестное значение — ok=false.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GenderUnspecified, true
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	case "other":
		return GenderOther, true
	default:
		return GenderUnspecified, false
	}
}

// ContactMode — канал связи.
type ContactMode string

const (
	ContactPhone    ContactMode = "phone"
	ContactWhatsApp ContactMode = "whatsapp"
)

// Contact — один контакт пользователя.
type Contact struct {
	ContactNo  string
	Mode       ContactMode
	IsActive   bool
	IsVerified bool
}

// Place — ссылка на элемент справочника локаций. Пустой ID означает null.
type Place struct {
	ID   string
	Name string
}

// IsSet сообщает, задан ли идентификатор.
func (p Place) IsSet() bool { return p.ID != "" }

// Profile — документ профиля пользователя.
type Profile struct {
	UserID               uuid.UUID
	Email                string
	Name                 string
	Gender               Gender
	DOB                  *time.Time
	Contacts             []Contact
	HomeCountry          Place
	HomeState            Place
	HomeCity             Place
	Roles                []string
	ProfileImage         string
	SmokingHabit         bool
	DrinkingHabit        bool
	ActiveMembershipID   string
	ActiveMembershipName string
	LoyaltyPoints        int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ProfileUpdate — частичное обновление профиля (merge).
// nil-поле означает «не менять». Contacts заменяются целиком, если заданы.
type ProfileUpdate struct {
	Name          *string
	Gender        *Gender
	DOB           *time.Time
	Contacts      *[]Contact
	HomeCountry   *Place
	HomeState     *Place
	HomeCity      *Place
	ProfileImage  *string
	SmokingHabit  *bool
	DrinkingHabit *bool

	ActiveMembershipID   *string
	ActiveMembershipName *string
}

// IsEmpty сообщает, что обновление ничего не меняет.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Gender == nil && u.DOB == nil && u.Contacts == nil &&
		u.HomeCountry == nil && u.HomeState == nil && u.HomeCity == nil &&
		u.ProfileImage == nil && u.SmokingHabit == nil && u.DrinkingHabit == nil &&
		u.ActiveMembershipID == nil && u.ActiveMembershipName == nil
}

// BuildContacts собирает список контактов из формы регистрации.
// Без номера возвращается один неактивный placeholder-контакт с пустым номером.
func BuildContacts(contactNo string, isWhatsApp bool) []Contact {
	contactNo = strings.TrimSpace(contactNo)
	if contactNo == "" {
		return []Contact{{ContactNo: "", Mode: ContactPhone}}
	}

	out := []Contact{{ContactNo: contactNo, Mode: ContactPhone, IsActive: true}}
	if isWhatsApp {
		out = append(out, Contact{ContactNo: contactNo, Mode: ContactWhatsApp, IsActive: true})
	}

	return out
}
