package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/pkg/api"
)

// SendResetOTP — шаг 1 сброса пароля: код на e-mail.
func (h *Handlers) SendResetOTP(w http.ResponseWriter, r *http.Request) {
	var in api.EmailRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.SendResetOTP(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// VerifyResetOTP — шаг 2: код меняется на одноразовый билет.
func (h *Handlers) VerifyResetOTP(w http.ResponseWriter, r *http.Request) {
	var in api.OTPRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ticket, err := h.Service.VerifyResetOTP(r.Context(), in.Email, in.OTP)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: ticket})
}

// ResetPassword — шаг 3: новый пароль по билету.
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in api.ResetPasswordRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.ResetPassword(r.Context(), in.Email, in.Ticket, in.Password, in.ConfirmPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
