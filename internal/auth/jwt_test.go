package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saulo-duarte/menteviva-api/internal/auth"
)

const testSecret = "uma-chave-secreta-para-testes-segura-e-longa"
const testUserID = "user-123"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init should panic when the secret is empty")
			}
		}()
		auth.Init("")
	})

	t.Run("ValidSecret", func(t *testing.T) {
		auth.Init(testSecret)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.Init(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, auth.RoleUser, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed: %v", err)
		}
		if claims.UserID != testUserID {
			t.Errorf("UserID = %s, want %s", claims.UserID, testUserID)
		}
		if claims.Role != auth.RoleUser {
			t.Errorf("Role = %s, want %s", claims.Role, auth.RoleUser)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, auth.RoleUser, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("got %v, want %v", err, jwt.ErrTokenExpired)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, auth.RoleUser, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		auth.Init("chave-secreta-falsa-diferente")
		_, err = auth.ValidateJWT(tokenStr)
		auth.Init(testSecret)

		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("got %v, want %v", err, jwt.ErrTokenSignatureInvalid)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth.Init(testSecret)

	var gotUserID string
	protected := auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		if err != nil {
			t.Fatalf("claims missing: %v", err)
		}
		gotUserID = claims.UserID
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("NoToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("BearerToken", func(t *testing.T) {
		token, _ := auth.GenerateJWT(testUserID, auth.RoleUser, time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || gotUserID != testUserID {
			t.Errorf("status = %d user = %q", rec.Code, gotUserID)
		}
	})

	t.Run("Cookie", func(t *testing.T) {
		gotUserID = ""
		token, _ := auth.GenerateJWT(testUserID, auth.RoleUser, time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || gotUserID != testUserID {
			t.Errorf("status = %d user = %q", rec.Code, gotUserID)
		}
	})
}
