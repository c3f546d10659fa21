// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/restful-users/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, "iphone", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 || token.DeviceName != "iphone" {
		t.Errorf("unexpected token fields: %+v", token)
	}
	if time.Until(token.ExpiresAt) <= 0 {
		t.Error("expected expiry in the future")
	}

	claims := &models.Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	if err != nil {
		t.Fatalf("could not parse token: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.DeviceName != "iphone" {
		t.Errorf("expected device claim 'iphone', got %s", claims.DeviceName)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Minute, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, "device", tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 7, "laptop", time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.UserID != 7 {
		t.Errorf("expected userID 7, got %d", parsed.UserID)
	}
	if parsed.DeviceName != "laptop" {
		t.Errorf("expected device laptop, got %s", parsed.DeviceName)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, _ := GenerateJWTToken("iss", 1, "d", time.Hour, "key")
	expired, _ := GenerateJWTToken("iss", 1, "d", time.Nanosecond, "key")
	time.Sleep(time.Millisecond)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneSigned, _ := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	badSubjectSigned, _ := badSubject.SignedString([]byte("key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired.SignedString, "key", "iss"},
		{"none algorithm", noneSigned, "key", "iss"},
		{"non numeric subject", badSubjectSigned, "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.header, " ", "_"), func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
