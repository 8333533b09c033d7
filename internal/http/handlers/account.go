package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/pkg/api"
)

func (h *Handlers) RequestAccountDeletion(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.Service.RequestAccountDeletion(r.Context(), uid); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handlers) VerifyDeletionOTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var in api.OTPRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ticket, err := h.Service.VerifyDeletionOTP(r.Context(), uid, in.OTP)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: ticket})
}

func (h *Handlers) ConfirmAccountDeletion(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var in api.TicketRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.ConfirmAccountDeletion(r.Context(), uid, in.Ticket); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
