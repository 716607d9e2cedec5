// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by an access token.
// The user id travels in the standard "sub" claim.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Token wraps a signed bearer token together with its parsed claims.
//
// SignedString holds the compact header.payload.signature form sent in the
// Authorization header. UserID is the parsed "sub" claim.
type Token struct {
	// Token is the underlying JWT, kept for claim inspection.
	*jwt.Token `json:"-"`

	TokenClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userIDString == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact signed form of the token.
func (t *Token) String() string {
	return t.SignedString
}
