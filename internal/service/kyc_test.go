package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/internal/events"
	"github.com/pribylovaa/party-one/internal/models"
	"github.com/pribylovaa/party-one/internal/storage"
)

func kycInput(uid uuid.UUID) KYCInput {
	return KYCInput{
		Name:               " Ann Lee ",
		Nationality:        "Indian",
		Residency:          "Resident",
		HomeCountry:        models.Place{ID: "101", Name: "India"},
		PermanentAddress:   "1 Main st",
		Zipcode:            "400001",
		GovernmentIDNumber: "X123",
		GovtIDFrontKey:     documentPrefix(uid, models.DocGovtIDFront) + "f.jpg",
		GovtIDBackKey:      documentPrefix(uid, models.DocGovtIDBack) + "b.jpg",
		UserImageKey:       documentPrefix(uid, models.DocUserImage) + "u.png",
	}
}

func TestSubmitKYC_OK(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	uid := uuid.New()
	in := kycInput(uid)

	for _, key := range []string{in.GovtIDFrontKey, in.GovtIDBackKey, in.UserImageKey} {
		e.files.EXPECT().Stat(gomock.Any(), key).Return(&storage.ObjectInfo{Key: key, Size: 512, ContentType: "image/jpeg"}, nil)
	}

	var saved *models.KYC
	e.docs.EXPECT().SaveKYC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k *models.KYC) error { saved = k; return nil })
	evs := e.captureEvents(1)

	k, err := e.svc.SubmitKYC(context.Background(), uid, in)
	require.NoError(t, err)
	require.Same(t, saved, k)
	require.Equal(t, "Ann Lee", k.Name)
	require.Equal(t, models.KYCPending, k.Status)
	require.Equal(t, in.UserImageKey, k.UserImageKey)
	require.False(t, k.SubmittedAt.IsZero())
	require.Equal(t, events.TypeKYCSubmitted, (*evs)[0].Type)
}

func TestSubmitKYC_DetailsStepStopsEarly(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	uid := uuid.New()
	in := kycInput(uid)
	in.Nationality = "  "
	in.HomeCountry = models.Place{}

	// ни Stat, ни SaveKYC не вызываются.
	_, err := e.svc.SubmitKYC(context.Background(), uid, in)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.True(t, strings.Contains(err.Error(), "nationality, home_country"), err.Error())
}

func TestSubmitKYC_Documents(t *testing.T) {
	t.Parallel()

	t.Run("not_uploaded", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		in := kycInput(uid)

		e.files.EXPECT().Stat(gomock.Any(), in.GovtIDFrontKey).Return(nil, storage.ErrNotFound)

		_, err := e.svc.SubmitKYC(context.Background(), uid, in)
		require.ErrorIs(t, err, ErrDocumentMissing)
	})

	t.Run("too_large", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		in := kycInput(uid)

		e.files.EXPECT().Stat(gomock.Any(), in.GovtIDFrontKey).Return(&storage.ObjectInfo{Size: 2 << 20, ContentType: "image/jpeg"}, nil)

		_, err := e.svc.SubmitKYC(context.Background(), uid, in)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("wrong_type", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		in := kycInput(uid)

		e.files.EXPECT().Stat(gomock.Any(), in.GovtIDFrontKey).Return(&storage.ObjectInfo{Size: 10, ContentType: "application/pdf"}, nil)

		_, err := e.svc.SubmitKYC(context.Background(), uid, in)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("path_escape", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()
		in := kycInput(uid)
		in.GovtIDFrontKey = documentPrefix(uid, models.DocGovtIDFront) + "../../other/f.jpg"

		_, err := e.svc.SubmitKYC(context.Background(), uid, in)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("uploads_disabled", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		e.svc.files = nil
		uid := uuid.New()

		_, err := e.svc.SubmitKYC(context.Background(), uid, kycInput(uid))
		require.ErrorIs(t, err, ErrUploadsDisabled)
	})
}

func TestKYC_Lookup(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	uid := uuid.New()
	e.docs.EXPECT().KYCByUser(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err := e.svc.KYC(context.Background(), uid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUploadURL(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		e := newEnv(t)
		uid := uuid.New()

		var key string
		e.files.EXPECT().PresignPut(gomock.Any(), gomock.Any(), "image/png", e.svc.cfg.S3.PresignTTL).
			DoAndReturn(func(_ context.Context, k, _ string, _ time.Duration) (string, error) {
				key = k
				return "https://s3.test/" + k, nil
			})

		tk, err := e.svc.UploadURL(context.Background(), uid, models.DocUserImage, "image/png", 1024)
		require.NoError(t, err)
		require.Equal(t, key, tk.Key)
		require.True(t, strings.HasPrefix(tk.Key, "kyc/"+uid.String()+"/user_image/"))
		require.True(t, strings.HasSuffix(tk.Key, ".png"))
		require.Equal(t, "image/png", tk.Headers["Content-Type"])
	})

	tests := []struct {
		name  string
		kind  models.DocumentKind
		ctype string
		size  int64
	}{
		{name: "bad_kind", kind: "passport", ctype: "image/png", size: 10},
		{name: "bad_type", kind: models.DocGovtIDFront, ctype: "text/plain", size: 10},
		{name: "zero_size", kind: models.DocGovtIDFront, ctype: "image/png", size: 0},
		{name: "too_big", kind: models.DocGovtIDFront, ctype: "image/png", size: 1<<20 + 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEnv(t)
			_, err := e.svc.UploadURL(context.Background(), uuid.New(), tt.kind, tt.ctype, tt.size)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDocumentURL_OnlyOwnKeys(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	uid := uuid.New()
	own := documentPrefix(uid, models.DocGovtIDBack) + "b.jpg"

	e.files.EXPECT().PresignGet(gomock.Any(), own, gomock.Any()).Return("https://s3.test/get", nil)

	u, err := e.svc.DocumentURL(context.Background(), uid, own)
	require.NoError(t, err)
	require.Equal(t, "https://s3.test/get", u)

	_, err = e.svc.DocumentURL(context.Background(), uid, documentPrefix(uuid.New(), models.DocGovtIDBack)+"b.jpg")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.svc.DocumentURL(context.Background(), uid, "kyc/"+uid.String()+"/../x")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
