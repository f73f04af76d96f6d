package model

// Session is proof of a prior successful authentication.
// The token is a pure opaque capability: no signing, no embedded claims,
// validated only by store lookup. A session is valid iff the current unix
// time is <= ExpiresAt; expiry is the only termination path (no revocation),
// and a user may hold any number of concurrent sessions.
type Session struct {
	Token     string // 64 hex chars from 32 CSPRNG bytes, unique
	UserID    ID
	ExpiresAt int64 // unix seconds
}
