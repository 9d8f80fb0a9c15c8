package tokens

import (
	"testing"

	"github.com/hairloom/salon-booking/internal/models"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 42, Role: models.RoleCustomer}

	signed, err := GenerateAccessToken("secret", user)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := Parse("secret", signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID=%d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleCustomer {
		t.Fatalf("Role=%q, want customer", claims.Role)
	}
	if claims.Purpose != "" {
		t.Fatalf("access token must not carry a purpose, got %q", claims.Purpose)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleOwner}

	signed, err := GenerateAccessToken("secret", user)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse("other-secret", signed); err == nil {
		t.Fatalf("token signed with a different secret must be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("secret", "not.a.token"); err == nil {
		t.Fatalf("malformed token must be rejected")
	}
}

func TestResetTokenCarriesPurposeAndJTI(t *testing.T) {
	signed, jti, err := GenerateResetToken("secret", 7)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if jti == "" {
		t.Fatalf("reset token must carry a jti")
	}

	claims, err := Parse("secret", signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Purpose != PurposeReset {
		t.Fatalf("Purpose=%q, want %q", claims.Purpose, PurposeReset)
	}
	if claims.JTI != jti {
		t.Fatalf("JTI=%q, want %q", claims.JTI, jti)
	}
	if claims.UserID != 7 {
		t.Fatalf("UserID=%d, want 7", claims.UserID)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Password123!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword("Password123!", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("wrong password accepted")
	}
}
