package service

import (
	"errors"
	"testing"

	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/config"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/jwtutil"
)

func initTestJWT() {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationDays: 1})
}

func TestRegisterAndLogin(t *testing.T) {
	initTestJWT()
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterRequest{
		Email:        "shop@example.com",
		Password:     "secret123",
		FullName:     "Shop Owner",
		BusinessName: "The Shop",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}

	if _, err := svc.Register(RegisterRequest{Email: "shop@example.com", Password: "other"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	loggedIn, token, err := svc.Login("shop@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || loggedIn.ID != user.ID {
		t.Errorf("login returned token=%q user=%d", token, loggedIn.ID)
	}

	claims, err := jwtutil.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user id=%d, want %d", claims.UserID, user.ID)
	}

	if _, _, err := svc.Login("shop@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfileNeverClearsWithEmptyString(t *testing.T) {
	initTestJWT()
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterRequest{
		Email:    "profile@example.com",
		Password: "secret123",
		FullName: "Original Name",
		Phone:    "0111",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{
		FullName: strPtr(""),
		Phone:    strPtr("0222"),
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FullName != "Original Name" {
		t.Errorf("empty string cleared fullName: %q", updated.FullName)
	}
	if updated.Phone != "0222" {
		t.Errorf("phone=%q, want 0222", updated.Phone)
	}
	// Omitted fields stay put too
	if updated.Email != "profile@example.com" {
		t.Errorf("email changed: %q", updated.Email)
	}
}

func TestResetPassword(t *testing.T) {
	initTestJWT()
	db := setupTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Register(RegisterRequest{Email: "reset@example.com", Password: "before"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ResetPassword("reset@example.com", "after"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if _, _, err := svc.Login("reset@example.com", "before"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted: %v", err)
	}
	if _, _, err := svc.Login("reset@example.com", "after"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	if err := svc.ResetPassword("missing@example.com", "pw"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.ResetPassword("reset@example.com", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty password, got %v", err)
	}
}
