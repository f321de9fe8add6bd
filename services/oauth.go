// services/oauth.go - provider attribute mapping
package services

import (
	"fmt"

	"withme/models"
)

// OAuthProfile is the normalized user info extracted from a provider's
// userinfo payload.
type OAuthProfile struct {
	Name    string
	Email   string
	Image   string
	Subject string
}

// providerMapping declares which payload fields carry {name, email, avatar}
// for one provider. Adding a provider is a table entry, not a code branch.
type providerMapping struct {
	nameKey    string
	emailKey   string
	imageKey   string
	subjectKey string
	// envelope names a nested object holding the profile fields, as Naver
	// wraps everything in "response".
	envelope string
}

var providerMappings = map[string]providerMapping{
	"google": {
		nameKey:    "name",
		emailKey:   "email",
		imageKey:   "picture",
		subjectKey: "sub",
	},
	"naver": {
		nameKey:    "name",
		emailKey:   "email",
		imageKey:   "profile_image",
		subjectKey: "id",
		envelope:   "response",
	},
}

// ExtractOAuthProfile normalizes a provider userinfo payload using the
// mapping table.
func ExtractOAuthProfile(provider string, attributes map[string]any) (OAuthProfile, error) {
	mapping, ok := providerMappings[provider]
	if !ok {
		return OAuthProfile{}, fmt.Errorf("%w: %s", models.ErrUnknownProvider, provider)
	}

	attrs := attributes
	if mapping.envelope != "" {
		nested, ok := attributes[mapping.envelope].(map[string]any)
		if !ok {
			return OAuthProfile{}, fmt.Errorf("%w: %s payload missing %q", models.ErrUnknownProvider, provider, mapping.envelope)
		}
		attrs = nested
	}

	profile := OAuthProfile{
		Name:    stringAttr(attrs, mapping.nameKey),
		Email:   stringAttr(attrs, mapping.emailKey),
		Image:   stringAttr(attrs, mapping.imageKey),
		Subject: stringAttr(attrs, mapping.subjectKey),
	}
	if profile.Email == "" {
		return OAuthProfile{}, fmt.Errorf("%w: %s payload missing email", models.ErrUnknownProvider, provider)
	}
	return profile, nil
}

func stringAttr(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}
