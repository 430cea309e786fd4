// Package sessiontoken mints and validates the signed bearer credential
// that identifies an authenticated account.
//
// Tokens are standard HS256 JWTs carrying {jti, sub, iat, exp}. They are
// stateless: nothing is stored server-side, validity is the signature
// plus the absolute expiry. Logout therefore means the client discards
// the token, and token lifetime is a hard upper bound on session length.
//
//	issuer, _ := sessiontoken.New(key, 24*time.Hour)
//	tok, expiresAt, _ := issuer.Issue(accountID)
//	claims, err := issuer.Parse(tok)
package sessiontoken
