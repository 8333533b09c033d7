package payments

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLinker(now time.Time) *Linker {
	l := NewLinker("https://pay.example.com/checkout?src=app", "link-secret", "billing-secret", "party-one", 30*time.Minute)
	l.now = func() time.Time { return now }

	return l
}

func order() Order {
	return Order{
		RequestID:      "req-1",
		UserID:         "user-1",
		MembershipID:   "gold",
		MembershipName: "Gold",
		PlanID:         "gold-12",
		Amount:         129900,
		Currency:       "USD",
		DurationMonths: 12,
	}
}

func linkToken(t *testing.T, l *Linker, o Order) string {
	t.Helper()

	link, _, err := l.Link(o)
	require.NoError(t, err)
	u, err := url.Parse(link)
	require.NoError(t, err)

	return u.Query().Get("token")
}

func TestLink_Format(t *testing.T) {
	t.Parallel()

	now := time.Now()
	l := testLinker(now)

	link, exp, err := l.Link(order())
	require.NoError(t, err)
	require.WithinDuration(t, now.Add(30*time.Minute), exp, time.Second)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "pay.example.com", u.Host)
	require.Equal(t, "app", u.Query().Get("src"))
	require.NotEmpty(t, u.Query().Get("token"))
}

func TestConfirmation_RoundTrip(t *testing.T) {
	t.Parallel()

	l := testLinker(time.Now())

	tok, err := l.Confirmation(order())
	require.NoError(t, err)

	got, err := l.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, order(), *got)
}

// TestVerify_RejectsLinkToken — токен из ссылки на оплату, которую видит
// пользователь, не подтверждает оплату.
func TestVerify_RejectsLinkToken(t *testing.T) {
	t.Parallel()

	l := testLinker(time.Now())

	_, err := l.Verify(linkToken(t, l, order()))
	require.ErrorIs(t, err, ErrInvalidLink)

	// даже если секреты ссылок и webhook совпали по ошибке конфигурации.
	same := NewLinker("https://pay.example.com", "shared", "shared", "party-one", time.Minute)
	_, err = same.Verify(linkToken(t, same, order()))
	require.ErrorIs(t, err, ErrInvalidLink)
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Now()
	l := testLinker(now)

	tok, err := l.Confirmation(order())
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		late := testLinker(now.Add(time.Hour))
		_, err := late.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidLink)
	})

	t.Run("other_secret", func(t *testing.T) {
		other := NewLinker("https://pay.example.com", "link-secret", "other", "party-one", time.Minute)
		_, err := other.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidLink)
	})

	t.Run("signed_with_link_secret", func(t *testing.T) {
		forged := NewLinker("https://pay.example.com", "link-secret", "link-secret", "party-one", time.Minute)
		forged.now = l.now
		ftok, err := forged.Confirmation(order())
		require.NoError(t, err)

		_, err = l.Verify(ftok)
		require.ErrorIs(t, err, ErrInvalidLink)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := l.Verify("not-a-token")
		require.ErrorIs(t, err, ErrInvalidLink)
	})

	t.Run("missing_ids", func(t *testing.T) {
		o := order()
		o.RequestID = ""
		ctok, err := l.Confirmation(o)
		require.NoError(t, err)
		_, err = l.Verify(ctok)
		require.ErrorIs(t, err, ErrInvalidLink)
	})
}

func TestConfirmations_DisabledWithoutSecret(t *testing.T) {
	t.Parallel()

	l := NewLinker("https://pay.example.com", "link-secret", "", "party-one", time.Minute)

	_, err := l.Confirmation(order())
	require.ErrorIs(t, err, ErrConfirmDisabled)

	_, err = l.Verify(linkToken(t, l, order()))
	require.ErrorIs(t, err, ErrInvalidLink)
	require.ErrorIs(t, err, ErrConfirmDisabled)
}
