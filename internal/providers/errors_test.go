package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorString(t *testing.T) {
	err := &FetchError{Provider: "nhl", URL: "http://x/standings", StatusCode: 503, Body: "down"}
	if got := err.Error(); !strings.Contains(got, "503") || !strings.Contains(got, "down") {
		t.Fatalf("expected status and body in error string, got %q", got)
	}

	transport := &FetchError{URL: "http://x", Err: context.DeadlineExceeded}
	if got := transport.Error(); !strings.Contains(got, "deadline") {
		t.Fatalf("expected cause in error string, got %q", got)
	}
	if !errors.Is(transport, context.DeadlineExceeded) {
		t.Fatalf("expected cause to unwrap")
	}

	if got := (&FetchError{}).Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	fetch := fmt.Errorf("standings: %w", &FetchError{StatusCode: 500})
	decode := fmt.Errorf("schedule: %w", &DecodeError{Err: errors.New("unexpected EOF")})

	if !errors.Is(fetch, ErrFetch) || errors.Is(fetch, ErrDecode) {
		t.Fatalf("expected fetch error to match only ErrFetch")
	}
	if !errors.Is(decode, ErrDecode) || errors.Is(decode, ErrFetch) {
		t.Fatalf("expected decode error to match only ErrDecode")
	}

	fe, ok := AsFetchError(fetch)
	if !ok || fe.StatusCode != 500 {
		t.Fatalf("expected to unwrap fetch error")
	}
	if _, ok := AsFetchError(decode); ok {
		t.Fatalf("expected decode error not to unwrap as fetch error")
	}
}

func TestReason(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{&FetchError{StatusCode: 502}, "status 502"},
		{&FetchError{Err: errors.New("refused")}, "network error"},
		{&DecodeError{Err: errors.New("bad")}, "bad response"},
		{ErrProviderUnavailable, "no provider"},
		{errors.New("other"), "error"},
	}
	for _, tc := range cases {
		if got := Reason(tc.err); got != tc.expected {
			t.Fatalf("err %v expected %q, got %q", tc.err, tc.expected, got)
		}
	}
}
