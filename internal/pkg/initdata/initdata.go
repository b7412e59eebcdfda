// Package initdata parses and verifies the initData payload a Telegram
// mini-app sends on login. Verification is a pluggable step: the default
// Verifier implements the platform's HMAC scheme keyed by the bot token,
// and signature checking can be disabled for development.
package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

var ErrInvalidPayload = errors.New("invalid init data payload")

// User is the profile embedded in a verified initData payload.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
}

type Verifier struct {
	botToken      string
	skipSignature bool
}

func NewVerifier(botToken string, skipSignature bool) *Verifier {
	return &Verifier{botToken: botToken, skipSignature: skipSignature}
}

// Verify checks the payload signature and returns the embedded user
// profile. It fails with ErrInvalidPayload when the payload is absent,
// malformed, unsigned, or carries no usable identity.
func (v *Verifier) Verify(raw string) (*User, error) {
	if raw == "" {
		return nil, ErrInvalidPayload
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, ErrInvalidPayload
	}

	if !v.skipSignature {
		if err := validateSignature(values, v.botToken); err != nil {
			return nil, err
		}
	}

	return parseUser(values)
}

func parseUser(values url.Values) (*User, error) {
	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, ErrInvalidPayload
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, ErrInvalidPayload
	}
	if user.ID == 0 || user.FirstName == "" {
		return nil, ErrInvalidPayload
	}

	return &user, nil
}

// validateSignature implements the Telegram WebApp scheme: the hash field
// must equal HMAC-SHA256 of the sorted key=value lines under a secret key
// derived from the bot token.
func validateSignature(values url.Values, botToken string) error {
	gotHash := values.Get("hash")
	if gotHash == "" {
		return ErrInvalidPayload
	}

	pairs := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheckString))
	wantHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(gotHash), []byte(wantHash)) {
		return ErrInvalidPayload
	}

	return nil
}
