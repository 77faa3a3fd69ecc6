package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin_Scenario(t *testing.T) {
	form := url.Values{}
	form.Set("user", "alice")
	form.Set("password", "pw1")
	form.Set("password2", "pw1")

	rr := doPostForm(t, "/register", form, nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))

	loginForm := url.Values{}
	loginForm.Set("user", "alice")
	loginForm.Set("password", "pw1")

	rr = doPostForm(t, "/login", loginForm, nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/quotes", rr.Header().Get("Location"))

	cookie := sessionCookieFrom(rr)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	session, err := testServer.store.GetSessionByToken(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, "alice", session.Username)

	// Wrong password: cookie cleared, bounced back to /login.
	badForm := url.Values{}
	badForm.Set("user", "alice")
	badForm.Set("password", "wrong")

	rr = doPostForm(t, "/login", badForm, nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))

	cleared := sessionCookieFrom(rr)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)
}

func TestLogin_UnknownUser(t *testing.T) {
	form := url.Values{}
	form.Set("user", "nobody_here")
	form.Set("password", "pw")

	rr := doPostForm(t, "/login", form, nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRegister_PasswordMismatch(t *testing.T) {
	form := url.Values{}
	form.Set("user", "mismatch_user")
	form.Set("password", "one")
	form.Set("password2", "two")

	rr := doPostForm(t, "/register", form, nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/register", rr.Header().Get("Location"))

	cleared := sessionCookieFrom(rr)
	require.NotNil(t, cleared)
	require.Negative(t, cleared.MaxAge)

	user, err := testServer.store.GetUserByUsername(context.Background(), "mismatch_user")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestRegister_ExistingUsernameIsSilent(t *testing.T) {
	createAPIUser(t, "taken_name", "pw")

	form := url.Values{}
	form.Set("user", "taken_name")
	form.Set("password", "other")
	form.Set("password2", "other")

	rr := doPostForm(t, "/register", form, nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestLoginPage_RedirectsWhenAlreadySignedIn(t *testing.T) {
	createAPIUser(t, "login_page_user", "pw")
	cookie := newSessionCookie(t, "login_page_user")

	rr := doGet(t, "/login", cookie)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/quotes", rr.Header().Get("Location"))

	rr = doGet(t, "/register", cookie)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/quotes", rr.Header().Get("Location"))
}

func TestLogout_Idempotent(t *testing.T) {
	createAPIUser(t, "logout_user", "pw")
	cookie := newSessionCookie(t, "logout_user")

	rr := doGet(t, "/logout", cookie)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
	cleared := sessionCookieFrom(rr)
	require.NotNil(t, cleared)
	require.Negative(t, cleared.MaxAge)

	session, err := testServer.store.GetSessionByToken(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.Nil(t, session)

	// Second logout with the now-dead cookie must not fault and must
	// clear the cookie again.
	rr = doGet(t, "/logout", cookie)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
	cleared = sessionCookieFrom(rr)
	require.NotNil(t, cleared)
	require.Negative(t, cleared.MaxAge)

	// And without any cookie at all.
	rr = doGet(t, "/logout", nil)
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}
