package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/pkg/api"
)

func (h *Handlers) Countries(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Service.Countries(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]api.Country, 0, len(cs))
	for _, c := range cs {
		out = append(out, api.Country{ID: c.ID, Name: c.Name, ISO2: c.ISO2})
	}

	writeJSON(w, http.StatusOK, out)
}

// States: ?country=<id>.
func (h *Handlers) States(w http.ResponseWriter, r *http.Request) {
	ss, err := h.Service.States(r.Context(), r.URL.Query().Get("country"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]api.State, 0, len(ss))
	for _, s := range ss {
		out = append(out, api.State{ID: s.ID, CountryID: s.CountryID, Name: s.Name})
	}

	writeJSON(w, http.StatusOK, out)
}

// Cities: ?country=<id>&state=<id>.
func (h *Handlers) Cities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cs, err := h.Service.Cities(r.Context(), q.Get("country"), q.Get("state"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]api.City, 0, len(cs))
	for _, c := range cs {
		out = append(out, api.City{ID: c.ID, CountryID: c.CountryID, StateID: c.StateID, Name: c.Name})
	}

	writeJSON(w, http.StatusOK, out)
}
