package application

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Authenticator verifies login credentials and yields the caller's role.
// It is a deliberately small capability so the placeholder implementation
// below can be swapped for a real identity provider without touching the
// HTTP layer.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Role names returned by the static authenticator.
const (
	RoleAdmin     = "admin"
	RoleSecretary = "secretary"
)

const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonSaltLength  = 16
	argonKeyLength   = 32
)

// StaticAuthenticator holds exactly two accounts, admin and secretary, with
// passwords hashed at construction time. A login placeholder, not real auth.
type StaticAuthenticator struct {
	credentials map[string]staticCredential
	// decoyHash keeps verification time comparable for unknown usernames.
	decoyHash string
}

type staticCredential struct {
	role string
	hash string
}

// NewStaticAuthenticator hashes the two configured passwords and returns the
// placeholder authenticator.
func NewStaticAuthenticator(adminPassword, secretaryPassword string) (*StaticAuthenticator, error) {
	adminHash, err := hashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	secretaryHash, err := hashPassword(secretaryPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secretary password: %w", err)
	}

	decoyHash, err := hashPassword("")
	if err != nil {
		return nil, fmt.Errorf("failed to hash decoy password: %w", err)
	}

	return &StaticAuthenticator{
		credentials: map[string]staticCredential{
			"admin":     {role: RoleAdmin, hash: adminHash},
			"secretary": {role: RoleSecretary, hash: secretaryHash},
		},
		decoyHash: decoyHash,
	}, nil
}

// Authenticate checks the supplied credentials and returns the account role.
func (a *StaticAuthenticator) Authenticate(_ context.Context, username, password string) (string, error) {
	if a == nil {
		return "", ErrInvalidCredentials
	}

	credential, ok := a.credentials[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		verifyPassword(a.decoyHash, password)
		return "", ErrInvalidCredentials
	}
	if !verifyPassword(credential.hash, password) {
		return "", ErrInvalidCredentials
	}
	return credential.role, nil
}

// hashPassword derives an argon2id hash in the standard
// $argon2id$v=19$m=...,t=...,p=...$salt$hash encoding.
func hashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonIterations, argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func verifyPassword(encoded, password string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(expected, key) == 1
}
