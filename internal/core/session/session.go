package session

import "github.com/dgrijalva/jwt-go"

// Session identifies the acting user for a single call. It is built by the
// HTTP middleware from the login token and passed explicitly to every
// operation that needs the current user's identity.
type Session struct {
	UserID   string
	Username string
}

// Claims is the JWT payload issued at login and decoded back into a Session.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}
