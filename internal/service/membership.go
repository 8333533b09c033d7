package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/membership"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/payments"
	"github.com/pribylovaa/party-one/internal/pkg/log"
	"github.com/pribylovaa/party-one/internal/profile"
	"github.com/pribylovaa/party-one/internal/storage"
)

// MembershipRequestInput — выбор пользователя на странице заявки.
// PlanID и ключи документов бортпроводника учитываются только для Amethyst.
type MembershipRequestInput struct {
	MembershipID      string
	PlanID            string
	ReferralCode      string
	CabinCrewFrontKey string
	CabinCrewBackKey  string
}

// AvailableMemberships возвращает каталог, отфильтрованный по текущему
// уровню пользователя, и сам текущий уровень.
func (s *Service) AvailableMemberships(ctx context.Context, uid uuid.UUID) ([]models.Membership, string, error) {
	const op = "service.membership.AvailableMemberships"

	var current string

	p, err := s.documents.Profile(ctx, uid)
	switch {
	case err == nil:
		current = p.ActiveMembershipName
	case !errors.Is(err, storage.ErrNotFound):
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	all, err := s.documents.Memberships(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return membership.FilterAvailable(current, all), current, nil
}

// RequestMembership создаёт заявку в статусе pending_payment и ссылку на
// оплату. Требует KYC и полный профиль; целевой уровень должен быть
// допустим для текущего.
func (s *Service) RequestMembership(ctx context.Context, uid uuid.UUID, in MembershipRequestInput) (*models.MembershipRequest, error) {
	const op = "service.membership.RequestMembership"

	if uid == uuid.Nil || strings.TrimSpace(in.MembershipID) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p, err := s.documents.Profile(ctx, uid)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	k, err := s.documents.KYCByUser(ctx, uid)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch profile.CheckEligibility(p, k != nil) {
	case profile.KYCRequired:
		return nil, fmt.Errorf("%s: %w", op, ErrKYCRequired)
	case profile.ProfileIncomplete:
		return nil, fmt.Errorf("%s: %w", op, ErrProfileIncomplete)
	}

	ms, err := s.documents.MembershipByID(ctx, in.MembershipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w: membership %q", op, ErrNotFound, in.MembershipID)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !membership.CanUpgrade(p.ActiveMembershipName, ms.Name) {
		return nil, fmt.Errorf("%s: %w: %q -> %q", op, ErrUpgradeNotAllowed, p.ActiveMembershipName, ms.Name)
	}

	req := &models.MembershipRequest{
		ID:                uuid.New(),
		UserID:            uid,
		MembershipID:      ms.ID,
		MembershipName:    ms.Name,
		ReferralCode:      strings.TrimSpace(in.ReferralCode),
		Currency:          s.cfg.Payments.Currency,
		OldMembershipID:   p.ActiveMembershipID,
		OldMembershipName: p.ActiveMembershipName,
		GovtFrontImageID:  k.GovtIDFrontKey,
		GovtBackImageID:   k.GovtIDBackKey,
		Status:            models.RequestPendingPayment,
		CreatedAt:         s.now(),
	}

	var plan models.Plan
	if membership.RequiresCabinCrew(ms.Name) {
		var ok bool
		if plan, ok = ms.PlanByID(in.PlanID); !ok {
			return nil, fmt.Errorf("%s: %w: %q", op, ErrPlanNotFound, in.PlanID)
		}

		if err := s.checkUpload(ctx, uid, models.DocCabinCrewFront, in.CabinCrewFrontKey); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := s.checkUpload(ctx, uid, models.DocCabinCrewBack, in.CabinCrewBackKey); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		req.CabinCrew = true
		req.CabinCrewFrontImageID = in.CabinCrewFrontKey
		req.CabinCrewBackImageID = in.CabinCrewBackKey
	} else {
		if len(ms.Plans) == 0 {
			return nil, fmt.Errorf("%s: %w: %s has no plans", op, ErrPlanNotFound, ms.Name)
		}
		plan = ms.Plans[0]
	}

	req.PlanID = plan.PlanUniqueID
	req.Amount = plan.Price
	req.DurationMonths = plan.DurationMonths

	link, _, err := s.payments.Link(payments.Order{
		RequestID:      req.ID.String(),
		UserID:         uid.String(),
		MembershipID:   req.MembershipID,
		MembershipName: req.MembershipName,
		PlanID:         req.PlanID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.PaymentLink = link

	if err := s.documents.SaveRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.MembershipRequest(ms.Name, string(req.Status))
	s.publishRequest(ctx, events.TypeMembershipRequested, req)

	log.From(ctx).Info("membership_requested",
		slog.String("user_id", uid.String()),
		slog.String("request_id", req.ID.String()),
		slog.String("tier", ms.Name),
		slog.Int64("amount", req.Amount),
	)

	return req, nil
}

// MembershipRequests возвращает заявки пользователя (новые первыми).
func (s *Service) MembershipRequests(ctx context.Context, uid uuid.UUID) ([]models.MembershipRequest, error) {
	const op = "service.membership.MembershipRequests"

	out, err := s.documents.RequestsByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ConfirmPayment принимает подписанное подтверждение оплаты: переводит
// заявку в paid и делает уровень активным в профиле.
func (s *Service) ConfirmPayment(ctx context.Context, token string) (*models.MembershipRequest, error) {
	const op = "service.membership.ConfirmPayment"

	order, err := s.payments.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrPaymentInvalid)
	}

	id, err := uuid.Parse(order.RequestID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrPaymentInvalid)
	}

	req, err := s.documents.RequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.UserID.String() != order.UserID || req.Amount != order.Amount || req.MembershipID != order.MembershipID {
		return nil, fmt.Errorf("%s: %w: order does not match request", op, ErrPaymentInvalid)
	}

	if req.Status == models.RequestPaid {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyPaid)
	}

	now := s.now()
	if err := s.documents.MarkRequestPaid(ctx, id, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyPaid)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Status = models.RequestPaid
	req.PaidAt = &now

	upd := models.ProfileUpdate{
		ActiveMembershipID:   &req.MembershipID,
		ActiveMembershipName: &req.MembershipName,
	}
	if _, err := s.documents.MergeProfile(ctx, req.UserID, upd, now); err != nil {
		return nil, fmt.Errorf("%s: activate membership: %w", op, err)
	}

	s.metrics.MembershipRequest(req.MembershipName, string(req.Status))
	s.publishRequest(ctx, events.TypeMembershipPaid, req)

	return req, nil
}

func (s *Service) publishRequest(ctx context.Context, typ string, req *models.MembershipRequest) {
	ev := events.New(typ, events.MembershipRequest{
		RequestID:      req.ID.String(),
		UserID:         req.UserID.String(),
		MembershipID:   req.MembershipID,
		MembershipName: req.MembershipName,
		PlanID:         req.PlanID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		PaymentLink:    req.PaymentLink,
	})

	if err := s.events.Publish(ctx, ev); err != nil {
		log.From(ctx).Warn("membership_event_publish_failed",
			slog.String("type", typ),
			slog.String("err", err.Error()),
		)
	}
}
