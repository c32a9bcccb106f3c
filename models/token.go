package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AccessAdmin is the access level of backend administrators.
const AccessAdmin = 100

// Claims is the JWT claim set issued to backend editors.
type Claims struct {
	jwt.RegisteredClaims

	// AccessLevel is the editor's access level, compared against a module's
	// required level before a sync is started.
	AccessLevel int `json:"acl"`
}

// Token wraps a JWT token with the editor identity it carries.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
