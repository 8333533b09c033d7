package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/internal/service"
	"github.com/pribylovaa/party-one/pkg/api"
)

// Memberships — каталог уровней, доступных при текущем уровне пользователя.
func (h *Handlers) Memberships(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	ms, current, err := h.Service.AvailableMemberships(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MembershipsResponse{Current: current, Memberships: membershipsToAPI(ms)})
}

func (h *Handlers) RequestMembership(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var in api.MembershipRequestInput
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	req, err := h.Service.RequestMembership(r.Context(), uid, service.MembershipRequestInput{
		MembershipID:      in.MembershipID,
		PlanID:            in.PlanID,
		ReferralCode:      in.ReferralCode,
		CabinCrewFrontKey: in.CabinCrewFrontKey,
		CabinCrewBackKey:  in.CabinCrewBackKey,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestToAPI(req))
}

func (h *Handlers) MembershipRequests(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	rs, err := h.Service.MembershipRequests(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]api.MembershipRequest, 0, len(rs))
	for i := range rs {
		out = append(out, requestToAPI(&rs[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// ConfirmPayment вызывается платёжной страницей с подписанным токеном из
// ссылки на оплату; Bearer не требуется.
func (h *Handlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var in api.PaymentConfirmRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	req, err := h.Service.ConfirmPayment(r.Context(), in.Token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestToAPI(req))
}
