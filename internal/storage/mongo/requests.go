package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/storage"
)

type requestDoc struct {
	ID                    string     `bson:"_id"`
	UserID                string     `bson:"user_id"`
	MembershipID          string     `bson:"membership_id"`
	MembershipName        string     `bson:"membership_name"`
	PlanID                string     `bson:"membership_plan_id"`
	ReferralCode          *string    `bson:"referral_code"`
	Amount                int64      `bson:"amount"`
	Currency              string     `bson:"currency"`
	DurationMonths        int        `bson:"duration_months"`
	OldMembershipID       *string    `bson:"old_membership_id"`
	OldMembershipName     *string    `bson:"old_membership_name"`
	CabinCrew             bool       `bson:"cabin_crew"`
	GovtFrontImageID      *string    `bson:"govt_front_image_id"`
	GovtBackImageID       *string    `bson:"govt_back_image_id"`
	CabinCrewFrontImageID *string    `bson:"cabin_crew_front_image_id"`
	CabinCrewBackImageID  *string    `bson:"cabin_crew_back_image_id"`
	Status                string     `bson:"status"`
	PaymentLink           string     `bson:"payment_link"`
	CreatedAt             time.Time  `bson:"created_at"`
	PaidAt                *time.Time `bson:"paid_at"`
}

func requestToDoc(r *models.MembershipRequest) requestDoc {
	return requestDoc{
		ID:                    r.ID.String(),
		UserID:                r.UserID.String(),
		MembershipID:          r.MembershipID,
		MembershipName:        r.MembershipName,
		PlanID:                r.PlanID,
		ReferralCode:          strPtr(r.ReferralCode),
		Amount:                r.Amount,
		Currency:              r.Currency,
		DurationMonths:        r.DurationMonths,
		OldMembershipID:       strPtr(r.OldMembershipID),
		OldMembershipName:     strPtr(r.OldMembershipName),
		CabinCrew:             r.CabinCrew,
		GovtFrontImageID:      strPtr(r.GovtFrontImageID),
		GovtBackImageID:       strPtr(r.GovtBackImageID),
		CabinCrewFrontImageID: strPtr(r.CabinCrewFrontImageID),
		CabinCrewBackImageID:  strPtr(r.CabinCrewBackImageID),
		Status:                string(r.Status),
		PaymentLink:           r.PaymentLink,
		CreatedAt:             toMS(r.CreatedAt),
		PaidAt:                r.PaidAt,
	}
}

func (d requestDoc) toModel() (*models.MembershipRequest, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("bad request id %q: %w", d.ID, err)
	}

	uid, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("bad user id %q: %w", d.UserID, err)
	}

	return &models.MembershipRequest{
		ID:                    id,
		UserID:                uid,
		MembershipID:          d.MembershipID,
		MembershipName:        d.MembershipName,
		PlanID:                d.PlanID,
		ReferralCode:          strVal(d.ReferralCode),
		Amount:                d.Amount,
		Currency:              d.Currency,
		DurationMonths:        d.DurationMonths,
		OldMembershipID:       strVal(d.OldMembershipID),
		OldMembershipName:     strVal(d.OldMembershipName),
		CabinCrew:             d.CabinCrew,
		GovtFrontImageID:      strVal(d.GovtFrontImageID),
		GovtBackImageID:       strVal(d.GovtBackImageID),
		CabinCrewFrontImageID: strVal(d.CabinCrewFrontImageID),
		CabinCrewBackImageID:  strVal(d.CabinCrewBackImageID),
		Status:                models.RequestStatus(d.Status),
		PaymentLink:           d.PaymentLink,
		CreatedAt:             d.CreatedAt.UTC(),
		PaidAt:                d.PaidAt,
	}, nil
}

// SaveRequest вставляет новую заявку.
func (m *Mongo) SaveRequest(ctx context.Context, r *models.MembershipRequest) error {
	const op = "storage/mongo/SaveRequest"

	if _, err := m.requests.InsertOne(ctx, requestToDoc(r)); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RequestByID возвращает заявку.
func (m *Mongo) RequestByID(ctx context.Context, id uuid.UUID) (*models.MembershipRequest, error) {
	const op = "storage/mongo/RequestByID"

	var d requestDoc
	if err := m.GetDocument(ctx, RequestsCollection, id.String(), &d); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r, err := d.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// RequestsByUser возвращает заявки пользователя, новые первыми.
func (m *Mongo) RequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.MembershipRequest, error) {
	const op = "storage/mongo/RequestsByUser"

	cur, err := m.requests.Find(ctx,
		bson.D{{Key: "user_id", Value: userID.String()}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var docs []requestDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.MembershipRequest, 0, len(docs))
	for _, d := range docs {
		r, err := d.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, *r)
	}

	return out, nil
}

// MarkRequestPaid отмечает оплату заявки в статусе pending_payment.
func (m *Mongo) MarkRequestPaid(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "storage/mongo/MarkRequestPaid"

	paidAt := toMS(at)
	res, err := m.requests.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "status", Value: string(models.RequestPendingPayment)},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: string(models.RequestPaid)},
			{Key: "paid_at", Value: paidAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteUserRequests удаляет все заявки пользователя.
func (m *Mongo) DeleteUserRequests(ctx context.Context, userID uuid.UUID) error {
	const op = "storage/mongo/DeleteUserRequests"

	if _, err := m.requests.DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID.String()}}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
