// Package auth finds the AniList access token and keeps it in the system keyring.
package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/anisan-cli/anikit/constant"
	"github.com/anisan-cli/anikit/key"
	"github.com/anisan-cli/anikit/log"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

// EnvToken is read when no token is passed explicitly. A .env file in the working directory counts.
const EnvToken = "ANILIST_TOKEN"

const keyringUser = "anilist-token"

// Source says where a resolved token came from.
type Source int

const (
	SourceNone Source = iota
	SourceFlag
	SourceEnv
	SourceKeyring
)

func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "flag"
	case SourceEnv:
		return "environment"
	case SourceKeyring:
		return "keyring"
	default:
		return "none"
	}
}

// Resolve picks the token from flag, then EnvToken, then the keyring when auth.keyring is on.
func Resolve(flag string) (mo.Option[string], Source) {
	if token := strings.TrimSpace(flag); token != "" {
		return mo.Some(token), SourceFlag
	}

	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return mo.Some(token), SourceEnv
	}

	if !viper.GetBool(key.AuthKeyring) {
		return mo.None[string](), SourceNone
	}

	if token, ok := Load().Get(); ok {
		return mo.Some(token), SourceKeyring
	}

	return mo.None[string](), SourceNone
}

// Save stores token in the system keyring.
func Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if err := keyring.Set(constant.App, keyringUser, token); err != nil {
		log.Error("failed to save token to keyring: " + err.Error())
		return err
	}

	return nil
}

// Load returns the stored token, if any.
func Load() mo.Option[string] {
	token, err := keyring.Get(constant.App, keyringUser)
	if err != nil {
		// a missing token is the common case
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("keyring unavailable: %v", err)
		}
		return mo.None[string]()
	}

	return mo.Some(token)
}

// Delete removes the stored token. Deleting a missing token is not an error.
func Delete() error {
	err := keyring.Delete(constant.App, keyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Error("failed to delete token from keyring: " + err.Error())
		return err
	}

	return nil
}
