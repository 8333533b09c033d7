package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/pkg/api"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	p, err := h.Service.Profile(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToAPI(p))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var in api.ProfileUpdate
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	upd, err := profileUpdateFromAPI(in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.Service.UpdateProfile(r.Context(), uid, upd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToAPI(p))
}

// ProfileStatus отдаёт полноту профиля и маршрут, куда вести клиента.
func (h *Handlers) ProfileStatus(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	st, err := h.Service.ProfileStatus(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusToAPI(st))
}
