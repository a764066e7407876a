package viewmodel

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stis-apps/titiktemu/internal/client/session"
	"github.com/stis-apps/titiktemu/internal/logging"
)

// Destination is the start screen chosen at launch.
type Destination int

const (
	DestinationLogin Destination = iota
	DestinationHome
)

func (d Destination) String() string {
	if d == DestinationHome {
		return "home"
	}
	return "login"
}

// SplashViewModel decides the start destination from the stored session.
type SplashViewModel struct {
	*Core
	store session.Store
}

func NewSplashViewModel(store session.Store, log logging.Logger) *SplashViewModel {
	return &SplashViewModel{Core: newCore(log), store: store}
}

// Decide returns home when a token is present and not known to be
// expired. The expiry check is purely local: the token is decoded
// without signature verification, only to read the exp claim. A token
// that cannot be decoded is still sent to the server, which remains the
// authority; the first rejected request triggers the forced logout.
// A token with an exp in the past is cleared right away so the user is
// not bounced through a doomed request.
func (vm *SplashViewModel) Decide(ctx context.Context) Destination {
	token := vm.store.GetToken(ctx)
	if token == "" {
		return DestinationLogin
	}

	if expired(token) {
		vm.log.Info(ctx, "stored token expired, clearing session")
		if err := vm.store.ClearAll(ctx); err != nil {
			vm.log.Warn(ctx, "failed to clear expired session", "error", err)
		}
		return DestinationLogin
	}
	return DestinationHome
}

// expired reports whether raw carries an exp claim in the past. Tokens
// that cannot be parsed or carry no exp are treated as not expired.
func expired(raw string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
