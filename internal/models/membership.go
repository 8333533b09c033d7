package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan — тарифный план уровня членства. Price — в минимальных единицах валюты.
type Plan struct {
	PlanUniqueID   string
	Price          int64
	DurationMonths int
}

// Membership — уровень членства (tier) из каталога.
type Membership struct {
	ID       string
	Name     string
	Plans    []Plan
	Benefits []string
}

// PlanByID ищет план по идентификатору.
func (m Membership) PlanByID(id string) (Plan, bool) {
	for _, p := range m.Plans {
		if p.PlanUniqueID == id {
			return p, true
		}
	}

	return Plan{}, false
}

// RequestStatus — статус заявки на членство.
type RequestStatus string

const (
	RequestPendingPayment RequestStatus = "pending_payment"
	RequestPaid           RequestStatus = "paid"
)

// MembershipRequest — заявка пользователя на покупку/смену уровня.
type MembershipRequest struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	MembershipID          string
	MembershipName        string
	PlanID                string
	ReferralCode          string
	Amount                int64
	Currency              string
	DurationMonths        int
	OldMembershipID       string
	OldMembershipName     string
	CabinCrew             bool
	GovtFrontImageID      string
	GovtBackImageID       string
	CabinCrewFrontImageID string
	CabinCrewBackImageID  string
	Status                RequestStatus
	PaymentLink           string
	CreatedAt             time.Time
	PaidAt                *time.Time
}
