package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/wiradarma21/travel_booking/models"
)

func testUser() models.User {
	return models.User{ID: "u1", Name: "Ayu", Email: "ayu@example.com", Role: models.RoleTourist}
}

func TestValidateLoggedOutIsValid(t *testing.T) {
	m := NewManager(NewMemoryStore())

	valid, issues := m.Validate()
	if !valid {
		t.Errorf("empty session should be valid, got issues %v", issues)
	}
}

func TestValidateTokenWithoutUser(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	raw, _ := json.Marshal(Record{Version: 1, Token: "abc", IsAuthenticated: true})
	store.Set("session-state", string(raw))

	valid, issues := m.Validate()
	if valid {
		t.Fatal("token without user data should be invalid")
	}
	if len(issues) != 1 || issues[0] != "Token exists but user data is missing" {
		t.Errorf("unexpected issues: %v", issues)
	}
}

func TestValidateUserWithoutToken(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	user := testUser()
	raw, _ := json.Marshal(Record{Version: 1, User: &user, IsAuthenticated: true})
	store.Set("session-state", string(raw))

	valid, issues := m.Validate()
	if valid {
		t.Fatal("user data without token should be invalid")
	}
	if len(issues) != 1 || issues[0] != "User data exists but token is missing" {
		t.Errorf("unexpected issues: %v", issues)
	}
}

func TestValidateIncompleteUser(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	user := models.User{ID: "u1"}
	raw, _ := json.Marshal(Record{Version: 1, Token: "abc", User: &user, IsAuthenticated: true})
	store.Set("session-state", string(raw))

	valid, issues := m.Validate()
	if valid {
		t.Fatal("user missing email and role should be invalid")
	}
	if len(issues) != 2 {
		t.Errorf("expected email and role issues, got %v", issues)
	}
}

func TestFixClearsInconsistentState(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)

	raw, _ := json.Marshal(Record{Version: 1, Token: "abc", IsAuthenticated: true})
	store.Set("session-state", string(raw))

	m.Fix()

	if m.Token() != "" {
		t.Error("Fix should clear the inconsistent session")
	}
	if valid, _ := m.Validate(); !valid {
		t.Error("session should be valid (logged out) after Fix")
	}
}

func TestSaveLoginAndLogout(t *testing.T) {
	m := NewManager(NewMemoryStore())

	if err := m.SaveLogin("token-123", testUser()); err != nil {
		t.Fatalf("SaveLogin failed: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Fatal("session should be authenticated after login")
	}
	if m.Token() != "token-123" {
		t.Errorf("unexpected token %q", m.Token())
	}

	m.Logout()
	if m.IsAuthenticated() {
		t.Error("session should not be authenticated after logout")
	}
	if valid, _ := m.Validate(); !valid {
		t.Error("logged-out session should validate")
	}
}

func TestMigrateLegacyKeys(t *testing.T) {
	store := NewMemoryStore()
	store.Set("auth_token", "legacy-token")
	store.Set("auth-storage", `{"state":{"user":{"id":"u1","name":"Ayu","email":"ayu@example.com","role":"tourist"},"isAuthenticated":true}}`)

	m := NewManager(store)

	if !m.IsAuthenticated() {
		t.Fatal("migrated session should be authenticated")
	}
	if m.Token() != "legacy-token" {
		t.Errorf("unexpected token %q", m.Token())
	}
	if user := m.User(); user == nil || user.ID != "u1" {
		t.Errorf("unexpected migrated user %+v", user)
	}

	if _, ok, _ := store.Get("auth_token"); ok {
		t.Error("legacy token key should be removed after migration")
	}
	if _, ok, _ := store.Get("auth-storage"); ok {
		t.Error("legacy state key should be removed after migration")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestTokenExpired(t *testing.T) {
	m := NewManager(NewMemoryStore())
	now := time.Now()

	m.SaveLogin(signedToken(t, now.Add(time.Hour)), testUser())
	if m.TokenExpired(now) {
		t.Error("token expiring in an hour should not read as expired")
	}

	m.SaveLogin(signedToken(t, now.Add(-time.Hour)), testUser())
	if !m.TokenExpired(now) {
		t.Error("token expired an hour ago should read as expired")
	}

	// Opaque non-JWT tokens never read as expired.
	m.SaveLogin("not-a-jwt", testUser())
	if m.TokenExpired(now) {
		t.Error("non-JWT token should not read as expired")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"
	store := NewFileStore(path)

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get("k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("Get returned (%q, %v, %v)", value, ok, err)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key should be gone after Delete")
	}
}
