// Package profile содержит единственное определение полноты профиля и
// решения о маршруте после входа. Все места, где нужна эта проверка
// (вход по паролю и через Google, заявка на членство, partyctl), вызывают
// функции этого пакета.
package profile

import "github.com/pribylovaa/party-one/internal/models"

// Field — обязательное поле профиля.
type Field string

const (
	FieldGender   Field = "gender"
	FieldDOB      Field = "dob"
	FieldContacts Field = "contacts"
	FieldCountry  Field = "home_country"
	FieldState    Field = "home_state"
	FieldCity     Field = "home_city"
)

// Route — клиентский маршрут, на который направляется пользователь.
type Route string

const (
	RouteForm       Route = "/form"
	RouteMembership Route = "/membership-request"
)

// IsComplete сообщает, заполнены ли обязательные поля: gender и dob заданы,
// список contacts не пуст, все три локации заданы.
//
// Placeholder-контакт с пустым номером считается элементом списка; см.
// HasReachableContact.
func IsComplete(p *models.Profile) bool {
	return len(Missing(p)) == 0
}

// Missing возвращает обязательные поля, которых нет в профиле, в
// фиксированном порядке. Для nil-профиля возвращаются все поля.
func Missing(p *models.Profile) []Field {
	if p == nil {
		return []Field{FieldGender, FieldDOB, FieldContacts, FieldCountry, FieldState, FieldCity}
	}

	var out []Field
	if p.Gender == models.GenderUnspecified {
		out = append(out, FieldGender)
	}

	if p.DOB == nil {
		out = append(out, FieldDOB)
	}

	if len(p.Contacts) == 0 {
		out = append(out, FieldContacts)
	}

	if !p.HomeCountry.IsSet() {
		out = append(out, FieldCountry)
	}

	if !p.HomeState.IsSet() {
		out = append(out, FieldState)
	}

	if !p.HomeCity.IsSet() {
		out = append(out, FieldCity)
	}

	return out
}

// HasReachableContact сообщает, есть ли хотя бы один контакт с непустым номером.
func HasReachableContact(p *models.Profile) bool {
	if p == nil {
		return false
	}

	for _, c := range p.Contacts {
		if c.ContactNo != "" {
			return true
		}
	}

	return false
}

// OnlyPlaceholderContact — профиль считается полным только за счёт
// placeholder-контакта.
func OnlyPlaceholderContact(p *models.Profile) bool {
	return p != nil && len(p.Contacts) > 0 && !HasReachableContact(p)
}

// NextRoute — маршрут после входа: форма профиля, если профиль неполон,
// иначе страница заявки на членство.
func NextRoute(p *models.Profile) Route {
	if IsComplete(p) {
		return RouteMembership
	}

	return RouteForm
}

// Eligibility — результат проверки права подать заявку на членство.
type Eligibility string

const (
	Eligible          Eligibility = "eligible"
	KYCRequired       Eligibility = "kyc_required"
	ProfileIncomplete Eligibility = "profile_incomplete"
)

// CheckEligibility: без KYC — KYCRequired; при неполном профиле —
// ProfileIncomplete; иначе Eligible.
func CheckEligibility(p *models.Profile, hasKYC bool) Eligibility {
	if !hasKYC {
		return KYCRequired
	}

	if !IsComplete(p) {
		return ProfileIncomplete
	}

	return Eligible
}
