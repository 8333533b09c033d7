package models

import (
	"time"

	"github.com/google/uuid"
)

// KYCStatus — статус проверки документов.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// KYC — анкета know-your-customer. *ImageKey — ключи объектов в
// хранилище документов, загруженных по presigned URL.
type KYC struct {
	UserID              uuid.UUID
	Name                string
	Nationality         string
	Residency           string
	HomeCountry         Place
	HomeState           Place
	HomeCity            Place
	PermanentAddress    string
	Zipcode             string
	GovernmentIDNumber  string
	FrequencyOfClubbing string
	GovtIDFrontKey      string
	GovtIDBackKey       string
	UserImageKey        string
	Status              KYCStatus
	SubmittedAt         time.Time
}

// DocumentKind — тип загружаемого документа.
type DocumentKind string

const (
	DocGovtIDFront    DocumentKind = "govt_id_front"
	DocGovtIDBack     DocumentKind = "govt_id_back"
	DocUserImage      DocumentKind = "user_image"
	DocCabinCrewFront DocumentKind = "cabin_crew_front"
	DocCabinCrewBack  DocumentKind = "cabin_crew_back"
)

// Valid сообщает, известен ли тип документа.
func (k DocumentKind) Valid() bool {
	switch k {
	case DocGovtIDFront, DocGovtIDBack, DocUserImage, DocCabinCrewFront, DocCabinCrewBack:
		return true
	default:
		return false
	}
}

// UploadTicket — presigned URL для прямой загрузки документа в хранилище.
type UploadTicket struct {
	Key       string
	UploadURL string
	ExpiresAt time.Time
	Headers   map[string]string
}
