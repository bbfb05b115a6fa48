package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
	}{
		{name: "default", target: "/"},
		{name: "english header", target: "/", accept: "en-US,en;q=0.9"},
		{name: "untranslated language", target: "/", accept: "es-CO,es;q=0.9"},
		{name: "query is ignored", target: "/?lang=zh-CN"},
		{name: "malformed header", target: "/", accept: ";;;"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(req); got != language.AmericanEnglish {
				t.Fatalf("ResolveTag() = %v, want %v", got, language.AmericanEnglish)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	if got := ResolveTag(nil); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag(nil) = %v, want en-US", got)
	}
}
