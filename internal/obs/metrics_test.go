package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                       "/",
		"/metrics":               "/metrics",
		"/v1/auth/login":         "/v1/auth/login",
		"/v1/dashboard?limit=10": "/v1/dashboard",
		"/v1/navigation":         "/v1/navigation",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}
