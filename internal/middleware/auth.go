package middleware

import (
	"context"
	"net/http"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/auth"
)

type contextKey string

const IdentityKey contextKey = "identity"

const (
	SignInPath = "/signin"
	SignUpPath = "/signup"
	HomePath   = "/"
)

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, bool)
}

// Gate decides, per request, whether a page may be served or the client has
// to be redirected. Anonymous-only paths (the sign-in and sign-up forms)
// bounce authenticated users home; every other path requires a valid session.
type Gate struct {
	verifier      TokenVerifier
	anonymousOnly map[string]struct{}
	signIn        string
	home          string
}

func NewGate(verifier TokenVerifier) *Gate {
	return &Gate{
		verifier: verifier,
		anonymousOnly: map[string]struct{}{
			SignInPath: {},
			SignUpPath: {},
		},
		signIn: SignInPath,
		home:   HomePath,
	}
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := g.verify(auth.CookieToken(r))

		if _, anon := g.anonymousOnly[r.URL.Path]; anon {
			if ok {
				http.Redirect(w, r, g.home, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if !ok {
			http.Redirect(w, r, g.signIn, http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verify treats a missing token and a panicking verifier the same as a
// failed verification.
func (g *Gate) verify(token string) (id auth.Identity, ok bool) {
	if token == "" {
		return auth.Identity{}, false
	}
	defer func() {
		if recover() != nil {
			id, ok = auth.Identity{}, false
		}
	}()
	return g.verifier.Verify(token)
}

// IdentityFromContext returns the identity the gate attached to the request.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(auth.Identity)
	return id, ok
}
