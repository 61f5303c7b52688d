package postzaper

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/dipakkr/postzaper/views"
)

// sessionName is the cookie the PostZaper app sets on sign-in. The
// marketing site only reads it.
const sessionName = "postzaper_session"

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// SignedIn reports whether the request carries an app session with a user.
func SignedIn(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	id, ok := sess.Values["user_id"].(string)
	return ok && id != ""
}

// NavFor returns the primary navigation state for the request.
func (a *App) NavFor(c echo.Context) views.Nav {
	nav := views.Nav{
		PrimaryHref:  a.Config.LoginURL,
		PrimaryLabel: "Get Started",
		Current:      c.Request().URL.Path,
	}
	if SignedIn(c) {
		nav.LoggedIn = true
		nav.PrimaryHref = a.Config.DashboardURL
		nav.PrimaryLabel = "Dashboard"
	}
	return nav
}
