package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/party-one/internal/http/errors"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/pkg/api"
)

// UploadURL выдаёт presigned PUT URL; клиент грузит файл напрямую в хранилище
// и затем передаёт ключ в анкете KYC или заявке.
func (h *Handlers) UploadURL(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var in api.UploadRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	t, err := h.Service.UploadURL(r.Context(), uid, models.DocumentKind(in.Kind), in.ContentType, in.Size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.UploadTicket{
		Key:       t.Key,
		UploadURL: t.UploadURL,
		ExpiresAt: t.ExpiresAt,
		Headers:   t.Headers,
	})
}

// DocumentURL: ?key=<object key>.
func (h *Handlers) DocumentURL(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	u, err := h.Service.DocumentURL(r.Context(), uid, r.URL.Query().Get("key"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.URLResponse{URL: u})
}

func (h *Handlers) GetKYC(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	k, err := h.Service.KYC(r.Context(), uid)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, kycToAPI(k))
}

func (h *Handlers) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var in api.KYC
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	k, err := h.Service.SubmitKYC(r.Context(), uid, kycFromAPI(in))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, kycToAPI(k))
}
