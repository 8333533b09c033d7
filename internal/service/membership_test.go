package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/membership"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/payments"
	"github.com/pribylovaa/party-one/internal/storage"
)

func catalog() []models.Membership {
	plan := func(id string, price int64, months int) models.Plan {
		return models.Plan{PlanUniqueID: id, Price: price, DurationMonths: months}
	}

	return []models.Membership{
		{ID: "ms-Silver", Name: membership.Silver, Plans: []models.Plan{plan("silver-12", 10000, 12)}},
		{ID: "ms-Gold", Name: membership.Gold, Plans: []models.Plan{plan("gold-12", 25000, 12)}},
		{ID: "ms-Platinum", Name: membership.Platinum, Plans: []models.Plan{plan("plat-12", 50000, 12)}},
		{ID: "ms-Amethyst", Name: membership.Amethyst, Plans: []models.Plan{plan("ame-6", 15000, 6), plan("ame-12", 27000, 12)}},
		{ID: "ms-Solitaire", Name: membership.Solitaire, Plans: []models.Plan{plan("sol-12", 99000, 12)}},
	}
}

func tierByName(name string) *models.Membership {
	for _, m := range catalog() {
		if m.Name == name {
			return &m
		}
	}
	return nil
}

func names(ms []models.Membership) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func kycFor(uid uuid.UUID) *models.KYC {
	return &models.KYC{
		UserID:         uid,
		GovtIDFrontKey: documentPrefix(uid, models.DocGovtIDFront) + "f.jpg",
		GovtIDBackKey:  documentPrefix(uid, models.DocGovtIDBack) + "b.jpg",
		Status:         models.KYCPending,
	}
}

func TestAvailableMemberships(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current string
		want    []string
	}{
		{current: "", want: []string{"Silver", "Gold", "Platinum", "Amethyst", "Solitaire"}},
		{current: "Silver", want: []string{"Gold", "Platinum", "Amethyst", "Solitaire"}},
		{current: "Gold", want: []string{"Platinum", "Amethyst", "Solitaire"}},
		{current: "Platinum", want: []string{"Amethyst", "Solitaire"}},
		{current: "Solitaire", want: []string{"Amethyst"}},
		{current: "Amethyst", want: []string{"Gold", "Platinum", "Solitaire"}},
		{current: "Bronze", want: []string{"Silver", "Gold", "Platinum", "Amethyst", "Solitaire"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("current_"+tt.current, func(t *testing.T) {
			t.Parallel()

			e := newEnv(t)
			uid := uuid.New()
			e.docs.EXPECT().Profile(gomock.Any(), uid).Return(completeProfile(uid, tt.current), nil)
			e.docs.EXPECT().Memberships(gomock.Any()).Return(catalog(), nil)

			got, current, err := e.svc.AvailableMemberships(context.Background(), uid)
			require.NoError(t, err)
			require.Equal(t, tt.current, current)
			require.Equal(t, tt.want, names(got))
		})
	}
}

func TestAvailableMemberships_NoProfile(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	uid := uuid.New()
	e.docs.EXPECT().Profile(gomock.Any(), uid).Return(nil, storage.ErrNotFound)
	e.docs.EXPECT().Memberships(gomock.Any()).Return(catalog(), nil)

	got, current, err := e.svc.AvailableMemberships(context.Background(), uid)
	require.NoError(t, err)
	require.Empty(t, current)
	require.Len(t, got, 5)
}

func TestRequestMembership_Gold_ThenConfirmPayment(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	uid := uuid.New()

	var saved *models.MembershipRequest
	e.docs.EXPECT().Profile(gomock.Any(), uid).Return(completeProfile(uid, "Silver"), nil)
	e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(kycFor(uid), nil)
	e.docs.EXPECT().MembershipByID(gomock.Any(), "ms-Gold").Return(tierByName("Gold"), nil)
	e.docs.EXPECT().SaveRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.MembershipRequest) error { saved = r; return nil })
	evs := e.captureEvents(2)

	req, err := e.svc.RequestMembership(ctx, uid, MembershipRequestInput{
		MembershipID: "ms-Gold",
		PlanID:       "ignored",
		ReferralCode: " FRIEND ",
	})
	require.NoError(t, err)
	require.Same(t, saved, req)
	require.Equal(t, "gold-12", req.PlanID)
	require.EqualValues(t, 25000, req.Amount)
	require.Equal(t, "USD", req.Currency)
	require.Equal(t, "FRIEND", req.ReferralCode)
	require.Equal(t, "Silver", req.OldMembershipName)
	require.Equal(t, "ms-Silver", req.OldMembershipID)
	require.False(t, req.CabinCrew)
	require.Equal(t, models.RequestPendingPayment, req.Status)
	require.Equal(t, kycFor(uid).GovtIDFrontKey, req.GovtFrontImageID)

	link, err := url.Parse(req.PaymentLink)
	require.NoError(t, err)
	require.Equal(t, "pay.test", link.Host)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	require.Equal(t, events.TypeMembershipRequested, (*evs)[0].Type)

	// токен из ссылки, которую получил пользователь, оплату не подтверждает.
	_, err = e.svc.ConfirmPayment(ctx, token)
	require.ErrorIs(t, err, ErrPaymentInvalid)

	// оплата: подтверждение подписано биллингом
	confirm := e.billingConfirmation(t, req, req.Amount)
	e.docs.EXPECT().RequestByID(gomock.Any(), req.ID).Return(req, nil)
	e.docs.EXPECT().MarkRequestPaid(gomock.Any(), req.ID, gomock.Any()).Return(nil)
	e.docs.EXPECT().MergeProfile(gomock.Any(), uid, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd models.ProfileUpdate, _ time.Time) (*models.Profile, error) {
			require.Equal(t, "ms-Gold", *upd.ActiveMembershipID)
			require.Equal(t, "Gold", *upd.ActiveMembershipName)
			require.Nil(t, upd.Contacts)
			return completeProfile(uid, "Gold"), nil
		})

	paid, err := e.svc.ConfirmPayment(ctx, confirm)
	require.NoError(t, err)
	require.Equal(t, models.RequestPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	require.Equal(t, events.TypeMembershipPaid, (*evs)[1].Type)

	// повторное подтверждение
	e.docs.EXPECT().RequestByID(gomock.Any(), req.ID).Return(paid, nil)
	_, err = e.svc.ConfirmPayment(ctx, confirm)
	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestRequestMembership_AmethystNeedsPlanAndCabinCrewDocs(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*env, uuid.UUID) {
		e := newEnv(t)
		uid := uuid.New()
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(completeProfile(uid, "Gold"), nil)
		e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(kycFor(uid), nil)
		e.docs.EXPECT().MembershipByID(gomock.Any(), "ms-Amethyst").Return(tierByName("Amethyst"), nil)
		return e, uid
	}

	t.Run("unknown_plan", func(t *testing.T) {
		t.Parallel()

		e, uid := setup(t)
		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{
			MembershipID: "ms-Amethyst",
			PlanID:       "nope",
		})
		require.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("missing_docs", func(t *testing.T) {
		t.Parallel()

		e, uid := setup(t)
		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{
			MembershipID: "ms-Amethyst",
			PlanID:       "ame-12",
		})
		require.ErrorIs(t, err, ErrDocumentMissing)
	})

	t.Run("foreign_key", func(t *testing.T) {
		t.Parallel()

		e, uid := setup(t)
		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{
			MembershipID:      "ms-Amethyst",
			PlanID:            "ame-12",
			CabinCrewFrontKey: documentPrefix(uuid.New(), models.DocCabinCrewFront) + "x.jpg",
			CabinCrewBackKey:  documentPrefix(uid, models.DocCabinCrewBack) + "y.jpg",
		})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		e, uid := setup(t)
		front := documentPrefix(uid, models.DocCabinCrewFront) + "x.jpg"
		back := documentPrefix(uid, models.DocCabinCrewBack) + "y.png"

		e.files.EXPECT().Stat(gomock.Any(), front).Return(&storage.ObjectInfo{Key: front, Size: 1000, ContentType: "image/jpeg"}, nil)
		e.files.EXPECT().Stat(gomock.Any(), back).Return(&storage.ObjectInfo{Key: back, Size: 2000, ContentType: "image/png"}, nil)
		e.docs.EXPECT().SaveRequest(gomock.Any(), gomock.Any()).Return(nil)
		e.captureEvents(1)

		req, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{
			MembershipID:      "ms-Amethyst",
			PlanID:            "ame-12",
			CabinCrewFrontKey: front,
			CabinCrewBackKey:  back,
		})
		require.NoError(t, err)
		require.True(t, req.CabinCrew)
		require.Equal(t, "ame-12", req.PlanID)
		require.EqualValues(t, 27000, req.Amount)
		require.Equal(t, 12, req.DurationMonths)
		require.Equal(t, front, req.CabinCrewFrontImageID)
		require.Equal(t, back, req.CabinCrewBackImageID)
	})
}

func TestRequestMembership_Eligibility(t *testing.T) {
	t.Parallel()

	t.Run("no_kyc", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(completeProfile(uid, ""), nil)
		e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{MembershipID: "ms-Gold"})
		require.ErrorIs(t, err, ErrKYCRequired)
	})

	t.Run("incomplete_profile", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		p := completeProfile(uid, "")
		p.DOB = nil
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(p, nil)
		e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(kycFor(uid), nil)

		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{MembershipID: "ms-Gold"})
		require.ErrorIs(t, err, ErrProfileIncomplete)
	})

	t.Run("downgrade", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(completeProfile(uid, "Platinum"), nil)
		e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(kycFor(uid), nil)
		e.docs.EXPECT().MembershipByID(gomock.Any(), "ms-Gold").Return(tierByName("Gold"), nil)

		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{MembershipID: "ms-Gold"})
		require.ErrorIs(t, err, ErrUpgradeNotAllowed)
	})

	t.Run("unknown_tier", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		e.docs.EXPECT().Profile(gomock.Any(), uid).Return(completeProfile(uid, ""), nil)
		e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(kycFor(uid), nil)
		e.docs.EXPECT().MembershipByID(gomock.Any(), "ms-x").Return(nil, storage.ErrNotFound)

		_, err := e.svc.RequestMembership(context.Background(), uid, MembershipRequestInput{MembershipID: "ms-x"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty_id", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		_, err := e.svc.RequestMembership(context.Background(), uuid.New(), MembershipRequestInput{MembershipID: " "})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestConfirmPayment_Rejects(t *testing.T) {
	t.Parallel()

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		_, err := e.svc.ConfirmPayment(context.Background(), "garbage")
		require.ErrorIs(t, err, ErrPaymentInvalid)
	})

	t.Run("amount_mismatch", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		req := &models.MembershipRequest{
			ID:           uuid.New(),
			UserID:       uuid.New(),
			MembershipID: "ms-Gold",
			Amount:       25000,
			Status:       models.RequestPendingPayment,
		}

		e.docs.EXPECT().RequestByID(gomock.Any(), req.ID).Return(req, nil)

		_, err := e.svc.ConfirmPayment(context.Background(), e.billingConfirmation(t, req, 1))
		require.ErrorIs(t, err, ErrPaymentInvalid)
	})

	t.Run("disabled_without_webhook_secret", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		req := &models.MembershipRequest{ID: uuid.New(), UserID: uuid.New(), MembershipID: "ms-Gold", Amount: 25000}
		confirm := e.billingConfirmation(t, req, req.Amount)

		cfg := testCfg()
		cfg.Payments.WebhookSecret = ""
		e.svc = New(Deps{Accounts: e.acc, Documents: e.docs, Ephemeral: e.eph, Events: e.pub}, cfg)

		_, err := e.svc.ConfirmPayment(context.Background(), confirm)
		require.ErrorIs(t, err, ErrPaymentInvalid)
	})
}

// billingConfirmation подписывает подтверждение оплаты так, как это
// делает биллинг: секретом webhook.
func (e *env) billingConfirmation(t *testing.T, req *models.MembershipRequest, amount int64) string {
	t.Helper()

	cfg := e.svc.cfg
	billing := payments.NewLinker(cfg.Payments.CheckoutURL, "checkout-only", cfg.Payments.WebhookSecret, cfg.Auth.Issuer, time.Hour)

	tok, err := billing.Confirmation(payments.Order{
		RequestID:      req.ID.String(),
		UserID:         req.UserID.String(),
		MembershipID:   req.MembershipID,
		MembershipName: req.MembershipName,
		PlanID:         req.PlanID,
		Amount:         amount,
		Currency:       req.Currency,
		DurationMonths: req.DurationMonths,
	})
	require.NoError(t, err)

	return tok
}
