package partyclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/party-one/pkg/api"
)

func strPtr(s string) *string { return &s }

func TestSessionStore_PersistsAndVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := OpenSessionStore(path)
	require.NoError(t, err)
	require.Equal(t, int64(0), s.Load().Version)

	_, err = s.Replace(Session{User: &api.User{ID: "u1"}, NextRoute: "/form"})
	require.NoError(t, err)
	got, err := s.Merge(Session{NextRoute: "/membership-request"})
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, "u1", got.User.ID)

	reopened, err := OpenSessionStore(path)
	require.NoError(t, err)
	require.Equal(t, got, reopened.Load())
}

func TestSessionStore_ReplaceDropsOldFields(t *testing.T) {
	s, err := OpenSessionStore("")
	require.NoError(t, err)

	_, err = s.Replace(Session{User: &api.User{ID: "u1"}, Profile: &api.Profile{Name: "Ann"}})
	require.NoError(t, err)

	got, err := s.Replace(Session{User: &api.User{ID: "u2"}})
	require.NoError(t, err)
	require.Equal(t, "u2", got.User.ID)
	require.Nil(t, got.Profile)
	require.Equal(t, int64(2), got.Version)
}

func TestSessionStore_MergeProfile(t *testing.T) {
	s, err := OpenSessionStore("")
	require.NoError(t, err)

	_, err = s.Replace(Session{Profile: &api.Profile{
		Name:     "Ann",
		Gender:   strPtr("Female"),
		Contacts: []api.Contact{{ContactNo: "123", Mode: "phone", IsActive: true}},
	}})
	require.NoError(t, err)

	// contacts не переданы — остаются прежними.
	got, err := s.Merge(Session{Profile: &api.Profile{DOB: strPtr("1990-01-02")}})
	require.NoError(t, err)
	require.Equal(t, "Ann", got.Profile.Name)
	require.Equal(t, "Female", *got.Profile.Gender)
	require.Equal(t, "1990-01-02", *got.Profile.DOB)
	require.Len(t, got.Profile.Contacts, 1)

	got, err = s.Merge(Session{Profile: &api.Profile{Contacts: []api.Contact{}}})
	require.NoError(t, err)
	require.Empty(t, got.Profile.Contacts)
}

func TestSessionStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := OpenSessionStore(path)
	require.NoError(t, err)

	_, err = s.Replace(Session{Tokens: &api.Tokens{AccessToken: "a"}})
	require.NoError(t, err)
	require.NoError(t, s.Clear())

	got := s.Load()
	require.Nil(t, got.Tokens)
	require.Equal(t, int64(2), got.Version)
}

func TestOpenSessionStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := OpenSessionStore(path)
	require.Error(t, err)
}
