package main

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestAuth(t *testing.T) *authService {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'member'
		);
	`)
	require.NoError(t, err)

	return newAuthService(db, "test-secret")
}

func insertUser(t *testing.T, a *authService, email, password, role string) {
	t.Helper()
	_, err := a.db.Exec(`INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?)`, email, hashPassword(password), role)
	require.NoError(t, err)
}

func TestValidateCredentials(t *testing.T) {
	auth := newTestAuth(t)
	insertUser(t, auth, "ana@example.com", "s3cret", roleAdmin)

	role, ok, err := auth.validateCredentials("ana@example.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, roleAdmin, role)

	_, ok, err = auth.validateCredentials("ana@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = auth.validateCredentials("nobody@example.com", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionValueRoundTrip(t *testing.T) {
	auth := newTestAuth(t)

	value := auth.createSessionValue(session{Email: "ana@example.com", Role: roleMember})
	got, ok := auth.verifySessionValue(value)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, roleMember, got.Role)
}

func TestSessionValueRejectsTampering(t *testing.T) {
	auth := newTestAuth(t)
	value := auth.createSessionValue(session{Email: "ana@example.com", Role: roleMember})

	payload, signature, ok := strings.Cut(value, ".")
	require.True(t, ok)

	forged := auth.createSessionValue(session{Email: "ana@example.com", Role: roleAdmin})
	forgedPayload, _, _ := strings.Cut(forged, ".")

	cases := map[string]string{
		"missing signature":  payload,
		"empty value":        "",
		"garbage signature":  payload + ".deadbeef",
		"swapped payload":    forgedPayload + "." + signature,
		"non-hex signature":  payload + ".zz",
		"non-base64 payload": "!!!." + signature,
	}
	for name, tampered := range cases {
		_, ok := auth.verifySessionValue(tampered)
		assert.False(t, ok, name)
	}
}

func TestSessionValueVerifiesWithSameSecretOnly(t *testing.T) {
	auth := newTestAuth(t)
	other := &authService{sessionSecret: []byte("other-secret")}

	value := auth.createSessionValue(session{Email: "ana@example.com", Role: roleMember})
	_, ok := other.verifySessionValue(value)
	assert.False(t, ok)
}
