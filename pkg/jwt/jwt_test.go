package jwt

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("user_2f9kq", "member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserExtID != "user_2f9kq" || claims.Role != "member" {
		t.Errorf("claims round-trip wrong: %+v", claims)
	}
}

func TestValidateTokenStripsBearerPrefix(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("user_2f9kq", "member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserExtID != "user_2f9kq" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestGenerateTokenEmptyUser(t *testing.T) {
	svc := NewJWTService("test-secret")
	if _, err := svc.GenerateToken("", "member"); err == nil {
		t.Fatal("expected error for empty user ext id")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := NewJWTService("key-a").GenerateToken("user_2f9kq", "member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewJWTService("key-b").ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail under a different key")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret")
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
