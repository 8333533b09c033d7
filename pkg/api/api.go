// Package api описывает JSON-контракт HTTP API party-one. Типы общие для
// сервера (internal/http) и клиентского SDK (pkg/partyclient).
//
// Соглашения:
//   - имена полей в snake_case;
//   - даты рождения передаются строкой DateLayout (YYYY-MM-DD);
//   - незаданные ссылки на справочник локаций — null;
//   - ошибки — ErrorResponse с success=false.
package api

import "time"

// DateLayout — формат даты рождения.
const DateLayout = time.DateOnly

// Place — элемент справочника локаций с отображаемым именем.
type Place struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Contact struct {
	ContactNo  string `json:"contact_no"`
	Mode       string `json:"mode"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

// User — учётная запись.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Provider      string    `json:"provider"`
	CreatedAt     time.Time `json:"created_at"`
}

type Tokens struct {
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

// Session — результат входа. NextRoute — клиентский маршрут
// (/form или /membership-request).
type Session struct {
	User      User   `json:"user"`
	Tokens    Tokens `json:"tokens"`
	NextRoute string `json:"next_route"`
	Created   bool   `json:"created"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DOB         string `json:"dob,omitempty"`
	ContactNo   string `json:"contact_no,omitempty"`
	IsWhatsApp  bool   `json:"is_whatsapp,omitempty"`
	HomeCountry *Place `json:"home_country,omitempty"`
	HomeState   *Place `json:"home_state,omitempty"`
	HomeCity    *Place `json:"home_city,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type GoogleCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// OTPRequest — ввод кода. Email нужен только в сценарии сброса пароля.
type OTPRequest struct {
	Email string `json:"email,omitempty"`
	OTP   string `json:"otp"`
}

// TicketResponse — одноразовый билет, выданный после проверки OTP.
type TicketResponse struct {
	Ticket string `json:"ticket"`
}

type TicketRequest struct {
	Ticket string `json:"ticket"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Ticket          string `json:"ticket"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Profile — документ профиля.
type Profile struct {
	UserID               string    `json:"user_id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Gender               *string   `json:"gender"`
	DOB                  *string   `json:"dob"`
	Contacts             []Contact `json:"contacts"`
	HomeCountry          *Place    `json:"home_country"`
	HomeState            *Place    `json:"home_state"`
	HomeCity             *Place    `json:"home_city"`
	Roles                []string  `json:"role"`
	ProfileImage         string    `json:"profile_image,omitempty"`
	SmokingHabit         bool      `json:"smoking_habit"`
	DrinkingHabit        bool      `json:"drinking_habit"`
	ActiveMembershipID   *string   `json:"active_membership_id"`
	ActiveMembershipName *string   `json:"active_membership_name"`
	LoyaltyPoints        int64     `json:"loyalty_points"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ProfileUpdate — частичное обновление; отсутствующее поле не меняется.
type ProfileUpdate struct {
	Name          *string    `json:"name,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	DOB           *string    `json:"dob,omitempty"`
	Contacts      *[]Contact `json:"contacts,omitempty"`
	HomeCountry   *Place     `json:"home_country,omitempty"`
	HomeState     *Place     `json:"home_state,omitempty"`
	HomeCity      *Place     `json:"home_city,omitempty"`
	ProfileImage  *string    `json:"profile_image,omitempty"`
	SmokingHabit  *bool      `json:"smoking_habit,omitempty"`
	DrinkingHabit *bool      `json:"drinking_habit,omitempty"`
}

type ProfileStatus struct {
	Complete           bool     `json:"complete"`
	Missing            []string `json:"missing"`
	NextRoute          string   `json:"next_route"`
	PlaceholderContact bool     `json:"placeholder_contact"`
	HasKYC             bool     `json:"has_kyc"`
	Eligibility        string   `json:"eligibility"`
}

type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	ISO2 string `json:"iso2,omitempty"`
}

type State struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	Name      string `json:"name"`
}

type City struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	StateID   string `json:"state_id"`
	Name      string `json:"name"`
}

// UploadRequest — запрос presigned URL для документа kind.
type UploadRequest struct {
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type UploadTicket struct {
	Key       string            `json:"key"`
	UploadURL string            `json:"upload_url"`
	ExpiresAt time.Time         `json:"expires_at"`
	Headers   map[string]string `json:"headers,omitempty"`
}

type URLResponse struct {
	URL string `json:"url"`
}

// KYC — анкета; Status и SubmittedAt заполняет сервер.
type KYC struct {
	Name                string     `json:"name"`
	Nationality         string     `json:"nationality"`
	Residency           string     `json:"residency"`
	HomeCountry         Place      `json:"home_country"`
	HomeState           Place      `json:"home_state"`
	HomeCity            Place      `json:"home_city"`
	PermanentAddress    string     `json:"permanent_address"`
	Zipcode             string     `json:"zipcode"`
	GovernmentIDNumber  string     `json:"government_id_number"`
	FrequencyOfClubbing string     `json:"frequency_of_clubbing"`
	GovtIDFront         string     `json:"govt_id_front"`
	GovtIDBack          string     `json:"govt_id_back"`
	UserImage           string     `json:"user_image"`
	Status              string     `json:"status,omitempty"`
	SubmittedAt         *time.Time `json:"submitted_at,omitempty"`
}

type Plan struct {
	PlanUniqueID   string `json:"plan_unique_id"`
	Price          int64  `json:"price"`
	DurationMonths int    `json:"duration_months"`
}

type Membership struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Plans    []Plan   `json:"plans"`
	Benefits []string `json:"benefits,omitempty"`
}

// MembershipsResponse — каталог, доступный при текущем уровне.
type MembershipsResponse struct {
	Current     string       `json:"current"`
	Memberships []Membership `json:"memberships"`
}

type MembershipRequestInput struct {
	MembershipID      string `json:"membership_id"`
	PlanID            string `json:"membership_plan_id,omitempty"`
	ReferralCode      string `json:"referral_code,omitempty"`
	CabinCrewFrontKey string `json:"cabin_crew_front_image_id,omitempty"`
	CabinCrewBackKey  string `json:"cabin_crew_back_image_id,omitempty"`
}

type MembershipRequest struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	MembershipID      string     `json:"membership_id"`
	MembershipName    string     `json:"membership_name"`
	PlanID            string     `json:"membership_plan_id"`
	ReferralCode      string     `json:"referral_code,omitempty"`
	Amount            int64      `json:"amount"`
	Currency          string     `json:"currency"`
	DurationMonths    int        `json:"duration_months"`
	OldMembershipID   string     `json:"old_membership_id,omitempty"`
	OldMembershipName string     `json:"old_membership_name,omitempty"`
	CabinCrew         bool       `json:"cabin_crew"`
	Status            string     `json:"status"`
	PaymentLink       string     `json:"payment_link"`
	CreatedAt         time.Time  `json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

type PaymentConfirmRequest struct {
	Token string `json:"token"`
}

// Error — тело ошибки. Code — стабильный машиночитаемый код
// (например, auth/invalid-email), Message — безопасное описание.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект ответа с ошибкой.
type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

// Коды ошибок, которые сервер возвращает в Error.Code.
const (
	CodeInvalidEmail       = "auth/invalid-email"
	CodeWeakPassword       = "auth/weak-password"
	CodePasswordMismatch   = "auth/password-mismatch"
	CodeEmailInUse         = "auth/email-already-in-use"
	CodeInvalidCredential  = "auth/invalid-credential"
	CodeUserNotFound       = "auth/user-not-found"
	CodeUserDisabled       = "auth/user-disabled"
	CodeEmailNotVerified   = "auth/email-not-verified"
	CodeTooManyRequests    = "auth/too-many-requests"
	CodeOperationNotAllow  = "auth/operation-not-allowed"
	CodeUnauthenticated    = "auth/unauthenticated"
	CodeInvalidToken       = "auth/invalid-token"
	CodeTokenExpired       = "auth/token-expired"
	CodeTokenRevoked       = "auth/token-revoked"
	CodeNetworkFailed      = "auth/network-request-failed"
	CodeOTPInvalid         = "otp/invalid-format"
	CodeOTPMismatch        = "otp/mismatch"
	CodeOTPExpired         = "otp/expired"
	CodeOTPTooManyAttempts = "otp/too-many-attempts"
	CodeWizardOutOfOrder   = "wizard/out-of-order"
	CodeKYCRequired        = "membership/kyc-required"
	CodeProfileIncomplete  = "membership/profile-incomplete"
	CodeUpgradeNotAllowed  = "membership/upgrade-not-allowed"
	CodePlanNotFound       = "membership/plan-not-found"
	CodePaymentInvalid     = "payment/invalid"
	CodeAlreadyPaid        = "payment/already-paid"
	CodeUploadsDisabled    = "uploads/disabled"
	CodeDocumentMissing    = "kyc/document-missing"
	CodeInvalidArgument    = "invalid-argument"
	CodeNotFound           = "not-found"
	CodeCanceled           = "canceled"
	CodeDeadlineExceeded   = "deadline-exceeded"
	CodeInternal           = "internal"
)
