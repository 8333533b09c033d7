package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/pkg/api"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in api.RegisterRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	rin, err := registerFromAPI(in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	u, err := h.Service.Register(r.Context(), rin)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userToAPI(u))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in api.LoginRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	s, err := h.Service.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToAPI(s))
}

func (h *Handlers) GoogleURL(w http.ResponseWriter, r *http.Request) {
	u, state, err := h.Service.GoogleAuthURL(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.GoogleURLResponse{URL: u, State: state})
}

func (h *Handlers) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	var in api.GoogleCallbackRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	s, err := h.Service.GoogleLogin(r.Context(), in.Code, in.State)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToAPI(s))
}

func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var in api.TokenRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.VerifyEmail(r.Context(), in.Token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var in api.EmailRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.ResendVerification(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in api.RefreshRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	t, err := h.Service.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokensToAPI(*t))
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in api.RefreshRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.Logout(r.Context(), in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	u, err := h.Service.Me(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToAPI(u))
}
