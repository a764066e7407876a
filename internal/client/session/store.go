// Package session owns the durable client-side session: the bearer token
// and the cached profile snapshot, stored in a local SQLite database.
// The store is the sole owner of that state; exactly one session may be
// active per installation.
package session

import "context"

// Storage keys. All session state lives under these fixed keys in the
// session table.
const (
	KeyToken      = "token"
	KeyUsername   = "username"
	KeyEmail      = "email"
	KeyFullName   = "fullName"
	KeyRole       = "role"
	KeyExternalID = "externalId"
	KeyPhone      = "phone"
)

// UserData is a partial profile update. Nil fields are left unchanged;
// a pointer to an empty string clears the stored value explicitly.
type UserData struct {
	Username   *string
	Email      *string
	FullName   *string
	Role       *string
	ExternalID *string
	Phone      *string
}

// Snapshot is the cached profile as currently stored.
type Snapshot struct {
	Username   string
	Email      string
	FullName   string
	Role       string
	ExternalID string
	Phone      string
}

// String returns a pointer to s, for building UserData literals.
func String(s string) *string { return &s }

// Store is the persistent session store.
//
// Contract:
//   - GetToken never fails: any read problem yields "".
//   - SaveUserData merges, it does not replace.
//   - After ClearAll returns, GetToken yields "" and no partial-clear
//     state is ever observable.
//   - TokenUpdates/UsernameUpdates deliver the current value on subscribe
//     and every subsequent change; slow consumers only see the latest.
type Store interface {
	GetToken(ctx context.Context) string
	SaveToken(ctx context.Context, token string) error
	SaveUserData(ctx context.Context, data UserData) error
	UserData(ctx context.Context) (Snapshot, error)
	ClearAll(ctx context.Context) error
	TokenUpdates() (<-chan string, func())
	UsernameUpdates() (<-chan string, func())
}
