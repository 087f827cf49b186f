// Package token infers display/gating claims from the bearer token issued by
// the user service. The payload is decoded, never verified: real authorization
// is enforced by the backends on every request, this only drives what the UI
// shows and which views are offered.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Role is the UI-facing capability derived from the token payload.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleNonAdmin Role = "NON_ADMIN"
)

var errMalformed = errors.New("token: malformed credential")

// RoleOf returns RoleAdmin only when the payload carries role == "ADMIN"
// (case-sensitive). Missing or malformed tokens resolve to RoleNonAdmin.
func RoleOf(raw string) Role {
	claims, err := decodePayload(raw)
	if err != nil {
		return RoleNonAdmin
	}
	if v, ok := claims["role"].(string); ok && v == "ADMIN" {
		return RoleAdmin
	}
	return RoleNonAdmin
}

// Email reads the sub claim.
func Email(raw string) (string, bool) {
	claims, err := decodePayload(raw)
	if err != nil {
		return "", false
	}
	v, ok := claims["sub"].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// UserID reads the numeric user id, trying userId, then id, then uid.
// String-typed values are coerced; anything non-numeric reports absence.
func UserID(raw string) (int, bool) {
	claims, err := decodePayload(raw)
	if err != nil {
		return 0, false
	}
	for _, key := range []string{"userId", "id", "uid"} {
		v, ok := claims[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n), true
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return i, true
			}
		}
		return 0, false
	}
	return 0, false
}

// decodePayload splits the three-part credential and unmarshals the middle
// base64url segment into an untyped claim map.
func decodePayload(raw string) (map[string]any, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 || parts[1] == "" {
		return nil, errMalformed
	}
	seg := strings.TrimRight(parts[1], "=")
	b, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return nil, errMalformed
	}
	var claims map[string]any
	if err := json.Unmarshal(b, &claims); err != nil {
		return nil, errMalformed
	}
	return claims, nil
}
