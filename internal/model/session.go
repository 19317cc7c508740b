package model

// Session is the single normalized shape for an authenticated session.
// The backend has been observed returning the token under either `jwt`
// or `token`, and the user either flat or nested; the gateway folds all
// of those variants into this struct before anything else sees them.
//
// Fields:
//  User  – profile of the authenticated account, nil when anonymous.
//  Token – bearer token for the Authorization header, empty when anonymous.
type Session struct {
	User  *User
	Token string
}

// IsAuthenticated reports whether the session holds both a user and a
// token.  One without the other is treated as anonymous.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}
