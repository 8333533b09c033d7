package mongo

import (
	"context"
	"fmt"

	"github.com/pribylovaa/party-one/internal/models"
)

type planDoc struct {
	PlanUniqueID string `bson:"plan_unique_id"`
	Price        int64  `bson:"price"`
	Duration     int    `bson:"duration"`
}

type membershipDoc struct {
	ID       string    `bson:"_id"`
	Name     string    `bson:"name"`
	Order    int       `bson:"order"`
	Plans    []planDoc `bson:"plans"`
	Benefits []string  `bson:"benefits"`
}

func (d membershipDoc) toModel() models.Membership {
	m := models.Membership{ID: d.ID, Name: d.Name, Benefits: d.Benefits}
	for _, p := range d.Plans {
		m.Plans = append(m.Plans, models.Plan{
			PlanUniqueID:   p.PlanUniqueID,
			Price:          p.Price,
			DurationMonths: p.Duration,
		})
	}

	return m
}

// Memberships возвращает каталог в порядке поля order.
func (m *Mongo) Memberships(ctx context.Context) ([]models.Membership, error) {
	const op = "storage/mongo/Memberships"

	var docs []membershipDoc
	if err := m.ListCollection(ctx, MembershipsCollection, "order", &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.Membership, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}

	return out, nil
}

// MembershipByID возвращает уровень каталога.
func (m *Mongo) MembershipByID(ctx context.Context, id string) (*models.Membership, error) {
	const op = "storage/mongo/MembershipByID"

	var d membershipDoc
	if err := m.GetDocument(ctx, MembershipsCollection, id, &d); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := d.toModel()

	return &out, nil
}

// PutMembership записывает уровень каталога целиком (используется при
// загрузке каталога из файла).
func (m *Mongo) PutMembership(ctx context.Context, ms models.Membership, order int) error {
	const op = "storage/mongo/PutMembership"

	d := membershipDoc{ID: ms.ID, Name: ms.Name, Order: order, Benefits: ms.Benefits, Plans: []planDoc{}}
	for _, p := range ms.Plans {
		d.Plans = append(d.Plans, planDoc{PlanUniqueID: p.PlanUniqueID, Price: p.Price, Duration: p.DurationMonths})
	}

	if d.Benefits == nil {
		d.Benefits = []string{}
	}

	if err := m.SetDocument(ctx, MembershipsCollection, ms.ID, d, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
