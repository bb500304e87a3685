package domain

import (
	"strings"
	"testing"
)

func TestPostStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to PostStatus
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestPostStatus_Terminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !StatusApproved.Terminal() || !StatusRejected.Terminal() {
		t.Fatalf("approved and rejected must be terminal")
	}
}

func TestValidateContent_Boundaries(t *testing.T) {
	longBody := strings.Repeat("b", MinBodyLen)

	if err := ValidateContent("abcd", longBody); err != ErrTitleTooShort {
		t.Fatalf("4-rune title: expected ErrTitleTooShort, got %v", err)
	}
	if err := ValidateContent("abcde", longBody); err != nil {
		t.Fatalf("5-rune title: expected nil, got %v", err)
	}

	if err := ValidateContent("valid title", strings.Repeat("b", MinBodyLen-1)); err != ErrBodyTooShort {
		t.Fatalf("19-rune body: expected ErrBodyTooShort, got %v", err)
	}
	if err := ValidateContent("valid title", longBody); err != nil {
		t.Fatalf("20-rune body: expected nil, got %v", err)
	}
}

func TestValidateContent_CountsRunesNotBytes(t *testing.T) {
	// 5 codepoints, more than 5 bytes.
	title := "héllö"
	body := strings.Repeat("ß", MinBodyLen)
	if err := ValidateContent(title, body); err != nil {
		t.Fatalf("multibyte content rejected: %v", err)
	}
}
