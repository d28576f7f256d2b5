package session

import (
	"encoding/json"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/wiradarma21/travel_booking/models"
)

const (
	// recordKey holds the single versioned session record.
	recordKey = "session-state"

	// Legacy two-key layout: a bare token plus a persisted state envelope.
	legacyTokenKey = "auth_token"
	legacyStateKey = "auth-storage"

	recordVersion = 1
)

// Record is the one persisted session document.
type Record struct {
	Version         int          `json:"version"`
	Token           string       `json:"token,omitempty"`
	User            *models.User `json:"user,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// legacyEnvelope mirrors the old persisted shape: {state:{user,isAuthenticated}}.
type legacyEnvelope struct {
	State struct {
		User            *models.User `json:"user"`
		IsAuthenticated bool         `json:"isAuthenticated"`
	} `json:"state"`
}

// Manager owns reading, writing, validating and healing the session record.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	if err := m.Migrate(); err != nil {
		log.Printf("Warning: session migration failed: %v", err)
	}
	return m
}

// Migrate lifts the legacy two-key layout into the versioned record and
// removes the old keys. A record that already exists wins.
func (m *Manager) Migrate() error {
	if _, ok, err := m.store.Get(recordKey); err != nil {
		return err
	} else if ok {
		return nil
	}

	token, hasToken, err := m.store.Get(legacyTokenKey)
	if err != nil {
		return err
	}
	rawState, hasState, err := m.store.Get(legacyStateKey)
	if err != nil {
		return err
	}
	if !hasToken && !hasState {
		return nil
	}

	record := Record{Version: recordVersion, Token: token}
	if hasState {
		var envelope legacyEnvelope
		if err := json.Unmarshal([]byte(rawState), &envelope); err == nil {
			record.User = envelope.State.User
			record.IsAuthenticated = envelope.State.IsAuthenticated
		}
	}

	if err := m.write(record); err != nil {
		return err
	}
	m.store.Delete(legacyTokenKey)
	m.store.Delete(legacyStateKey)
	log.Println("Migrated legacy auth storage to versioned session record")
	return nil
}

func (m *Manager) write(record Record) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return m.store.Set(recordKey, string(raw))
}

// Current returns the session record; a missing record reads as logged out.
func (m *Manager) Current() Record {
	raw, ok, err := m.store.Get(recordKey)
	if err != nil || !ok {
		return Record{Version: recordVersion}
	}
	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		// Corrupt record: clear rather than operate on garbage.
		m.Logout()
		return Record{Version: recordVersion}
	}
	return record
}

func (m *Manager) Token() string {
	return m.Current().Token
}

func (m *Manager) User() *models.User {
	return m.Current().User
}

func (m *Manager) IsAuthenticated() bool {
	record := m.Current()
	return record.Token != "" && record.User != nil && record.IsAuthenticated
}

// SaveLogin stores the backend-issued token and user in one write.
func (m *Manager) SaveLogin(token string, user models.User) error {
	return m.write(Record{
		Version:         recordVersion,
		Token:           token,
		User:            &user,
		IsAuthenticated: true,
	})
}

func (m *Manager) SaveUser(user models.User) error {
	record := m.Current()
	record.User = &user
	return m.write(record)
}

// Logout clears the record and any lingering legacy keys together.
func (m *Manager) Logout() {
	m.store.Delete(recordKey)
	m.store.Delete(legacyTokenKey)
	m.store.Delete(legacyStateKey)
}

// Validate checks token/user consistency. Both absent is a valid logged-out
// state; any mismatch is reported with its issue.
func (m *Manager) Validate() (bool, []string) {
	record := m.Current()
	var issues []string

	hasToken := record.Token != ""
	hasUser := record.User != nil

	if !hasToken && hasUser {
		issues = append(issues, "User data exists but token is missing")
	}
	if hasToken && !hasUser {
		issues = append(issues, "Token exists but user data is missing")
	}
	if !hasToken && !hasUser {
		return true, nil
	}

	if hasToken && hasUser {
		if record.User.ID == "" {
			issues = append(issues, "User ID is missing")
		}
		if record.User.Email == "" {
			issues = append(issues, "User email is missing")
		}
		if record.User.Role == "" {
			issues = append(issues, "User role is missing")
		}
	}

	return len(issues) == 0, issues
}

// Fix self-heals an inconsistent session by clearing everything, forcing a
// fresh login instead of operating on corrupt state.
func (m *Manager) Fix() {
	valid, issues := m.Validate()
	if valid {
		return
	}
	log.Printf("Warning: auth state is inconsistent: %v. Clearing all auth data.", issues)
	m.Logout()
}

// TokenExpired inspects the exp claim without verifying the signature; the
// token is backend-signed and opaque to this client.
func (m *Manager) TokenExpired(now time.Time) bool {
	token := m.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	// Tokens without an exp claim never read as expired.
	return !claims.VerifyExpiresAt(now.Unix(), false)
}
