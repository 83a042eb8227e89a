// Package auth holds the credential manager (password digest and
// verification) and the in-memory session token registry.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Password digest                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// HashPassword returns a deterministic one-way digest of the plaintext.
//
// The digest is intentionally a fast unsalted SHA3-256: stored hashes
// are compared by equality and clients depend on Hash(p) == Hash(p).
// Swapping in an adaptive salted hash behind this interface invalidates
// every stored credential, so it stays until a migration is scheduled.
func HashPassword(plaintext string) string {
	sum := sha3.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether plaintext digests to storedHash.
func VerifyPassword(plaintext, storedHash string) bool {
	digest := HashPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
}

/*─────────────────────────────────────────────────────────────────────────────*
| Token registry                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// TokenRegistry maps opaque session tokens to user ids. Tokens live in
// process memory for the lifetime of the server: there is no expiry
// and no logout. The registry is append-only under a mutex so
// concurrent logins never lose entries.
type TokenRegistry struct {
	mu     sync.RWMutex
	tokens map[string]string // token -> user id
}

// NewTokenRegistry returns an empty registry.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{tokens: make(map[string]string)}
}

// Issue creates a fresh opaque token for the given user id and records
// it. Tokens are UUIDs: unguessable, no structure beyond opacity.
func (r *TokenRegistry) Issue(userID string) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.tokens[token] = userID
	r.mu.Unlock()
	return token
}

// UserFor resolves a token to the user id it was issued for.
func (r *TokenRegistry) UserFor(token string) (string, bool) {
	r.mu.RLock()
	id, ok := r.tokens[token]
	r.mu.RUnlock()
	return id, ok
}

// Len reports how many tokens have been issued.
func (r *TokenRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Request context                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentUserIDKey ctxKey = "currentUserID"

// CurrentUserID returns the authenticated user id placed in the
// request context by LoadTokenUser, with a found flag.
func CurrentUserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(currentUserIDKey).(string)
	return id, ok
}

// WithUserID returns a copy of the request carrying the user id in its
// context. Exported for handler tests.
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserIDKey, userID))
}

// LoadTokenUser resolves an "Authorization: Bearer <token>" header
// against the registry and injects the user id into the request
// context. Requests without a valid token pass through untouched;
// handlers that need the identity check CurrentUserID themselves.
func (r *TokenRegistry) LoadTokenUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if id, found := r.UserFor(strings.TrimSpace(token)); found {
				req = WithUserID(req, id)
			}
		}
		next.ServeHTTP(w, req)
	})
}
