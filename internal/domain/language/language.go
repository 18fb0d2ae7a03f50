package language

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Default is the language the UI starts in and falls back to.
const Default = "en"

var supportedCodes = []string{"en", "tr"}

var supportedTags = []language.Tag{
	language.English,
	language.Turkish,
}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the closed set of language codes.
func Supported() []string {
	out := make([]string, len(supportedCodes))
	copy(out, supportedCodes)
	return out
}

// Normalize resolves an arbitrary code ("tr", "tr-TR", "en_US") to one of the
// supported codes. It reports false for codes that do not match confidently.
func Normalize(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return "", false
	}
	return supportedCodes[index], true
}

// Setting holds the single active language code.
type Setting struct {
	mu   sync.Mutex
	code string
}

func NewSetting(code string) *Setting {
	normalized, ok := Normalize(code)
	if !ok {
		normalized = Default
	}
	return &Setting{code: normalized}
}

// Set switches the active language. Unknown codes are rejected and leave the
// setting unchanged.
func (s *Setting) Set(code string) bool {
	normalized, ok := Normalize(code)
	if !ok {
		return false
	}
	s.mu.Lock()
	s.code = normalized
	s.mu.Unlock()
	return true
}

// Code returns the active language code.
func (s *Setting) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}
