package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestHMACKeyfuncPinsSigningMethod(t *testing.T) {
	keyfunc := HMACKeyfunc("unit-test-secret")

	tests := []struct {
		name   string
		method jwt.SigningMethod
		wantOK bool
	}{
		{"hs256", jwt.SigningMethodHS256, true},
		{"hs512", jwt.SigningMethodHS512, true},
		{"rs256", jwt.SigningMethodRS256, false},
		{"ecdsa", jwt.SigningMethodES256, false},
		{"none", jwt.SigningMethodNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := &jwt.Token{
				Method: tc.method,
				Header: map[string]any{"alg": tc.method.Alg()},
			}
			key, err := keyfunc(tok)
			if tc.wantOK {
				if err != nil {
					t.Fatalf("keyfunc rejected %s: %v", tc.method.Alg(), err)
				}
				if string(key.([]byte)) != "unit-test-secret" {
					t.Fatal("keyfunc returned the wrong secret")
				}
				return
			}
			if err == nil {
				t.Fatalf("keyfunc released the secret for alg %s", tc.method.Alg())
			}
			if !strings.Contains(err.Error(), tc.method.Alg()) {
				t.Fatalf("error %q does not name the offending alg", err)
			}
		})
	}
}

func TestHMACKeyfuncRejectsForgedAlgOnParse(t *testing.T) {
	const secret = "unit-test-secret"

	claims := jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Minute).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwt.Parse(signed, HMACKeyfunc(secret)); err != nil {
		t.Fatalf("genuine HS256 token rejected: %v", err)
	}

	// alg=none with an empty signature must not slip through.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jwt.Parse(unsigned, HMACKeyfunc(secret)); err == nil {
		t.Fatal("token with alg=none was accepted")
	}
}
