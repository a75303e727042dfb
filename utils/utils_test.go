package utils

import (
	"testing"
	"time"
)

func TestGenerateAPISecret(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		secret, err := GenerateAPISecret()
		if err != nil {
			t.Fatalf("GenerateAPISecret() error = %v", err)
		}
		if len(secret) != APISecretBytes*2 {
			t.Fatalf("len(secret) = %d, want %d", len(secret), APISecretBytes*2)
		}
		if _, dup := seen[secret]; dup {
			t.Fatalf("duplicate secret generated: %s", secret)
		}
		seen[secret] = struct{}{}
	}
}

func TestHashAPIKey(t *testing.T) {
	a := HashAPIKey("secret-a")
	if a != HashAPIKey("secret-a") {
		t.Error("HashAPIKey() is not deterministic")
	}
	if a == HashAPIKey("secret-b") {
		t.Error("different secrets produced the same digest")
	}
	if a == HashAPIKey("secret-a ") {
		t.Error("trailing whitespace must change the digest")
	}
	if len(a) != 64 {
		t.Errorf("len(digest) = %d, want 64", len(a))
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("abcdef0123456789"); got != "abcdef01..." {
		t.Errorf("MaskSecret() = %q", got)
	}
	if got := MaskSecret("short"); got != "****" {
		t.Errorf("MaskSecret(short) = %q", got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := NowUTC()
	parsed, err := ParseTimestamp(FormatTimestamp(now))
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	if !parsed.Equal(now) {
		t.Errorf("round trip = %v, want %v", parsed, now)
	}

	rfc, err := ParseTimestamp("2024-05-01T10:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseTimestamp(rfc3339) error = %v", err)
	}
	if want := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC); !rfc.Equal(want) {
		t.Errorf("ParseTimestamp(rfc3339) = %v, want %v", rfc, want)
	}

	if _, err := ParseTimestamp(""); err == nil {
		t.Error("ParseTimestamp(\"\") should fail")
	}
}
