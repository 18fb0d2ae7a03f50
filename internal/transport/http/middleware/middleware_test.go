package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated request id in context")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Fatal("expected request id echoed in the response header")
	}
}

func TestRequestIDHonorsHeader(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-123" {
		t.Fatalf("expected caller id kept, got %q", seen)
	}
}

type fakeSetter struct {
	calls []string
	ok    bool
	code  string
}

func (f *fakeSetter) SetLanguage(code string) bool {
	f.calls = append(f.calls, code)
	return f.ok
}

func (f *fakeSetter) Language() string { return f.code }

func TestLanguageQueryParamSetsCookie(t *testing.T) {
	setter := &fakeSetter{ok: true, code: "tr"}
	handler := Language(setter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=tr", nil))

	if len(setter.calls) != 1 || setter.calls[0] != "tr" {
		t.Fatalf("expected one SetLanguage(tr) call, got %v", setter.calls)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "tr" {
		t.Fatalf("expected language cookie, got %v", cookies)
	}
}

func TestLanguageCookieHoldsCanonicalCode(t *testing.T) {
	setter := &fakeSetter{ok: true, code: "tr"}
	handler := Language(setter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=tr-TR", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "tr" {
		t.Fatalf("expected cookie to hold the resolved code, got %v", cookies)
	}
}

func TestLanguageInvalidCodeSetsNoCookie(t *testing.T) {
	setter := &fakeSetter{ok: false}
	handler := Language(setter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=zz", nil))

	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("rejected language must not be persisted")
	}
}

func TestLanguageCookieApplied(t *testing.T) {
	setter := &fakeSetter{ok: true}
	handler := Language(setter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "tr"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if len(setter.calls) != 1 || setter.calls[0] != "tr" {
		t.Fatalf("expected cookie language applied, got %v", setter.calls)
	}
}

func TestBodyLimitRejectsOversizedPost(t *testing.T) {
	var readErr error
	handler := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 64)))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if readErr == nil {
		t.Fatal("expected reading past the body limit to fail")
	}
	var maxErr *http.MaxBytesError
	if !errors.As(readErr, &maxErr) {
		t.Fatalf("expected MaxBytesError, got %v", readErr)
	}
}

func TestBodyLimitLeavesGetAlone(t *testing.T) {
	var readErr error
	handler := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(strings.Repeat("a", 64)))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if readErr != nil {
		t.Fatalf("expected GET body untouched, got %v", readErr)
	}
}

func TestRecovererConvertsPanic(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
