package middleware

import (
	"net/http"
	"strings"
	"time"
)

const (
	// LangParam selects a language for the session via query string.
	LangParam = "lang"
	// LangCookieName persists the selection across requests.
	LangCookieName = "sd_lang"
)

// LanguageSetter is the slice of the app the resolver needs.
type LanguageSetter interface {
	SetLanguage(code string) bool
	Language() string
}

// Language applies a `lang` query parameter or cookie to the language state.
// The query parameter wins and is persisted as a cookie holding the
// canonical code the app resolved; invalid codes are ignored, leaving the
// active language untouched.
func Language(setter LanguageSetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if code := strings.TrimSpace(r.URL.Query().Get(LangParam)); code != "" {
				if setter.SetLanguage(code) {
					http.SetCookie(w, &http.Cookie{
						Name:     LangCookieName,
						Value:    setter.Language(),
						Path:     "/",
						Expires:  time.Now().Add(365 * 24 * time.Hour),
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
			} else if cookie, err := r.Cookie(LangCookieName); err == nil {
				setter.SetLanguage(cookie.Value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
