package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"withme/models"
)

func TestExtractOAuthProfile(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		attributes map[string]any
		want       OAuthProfile
		wantErr    error
	}{
		{
			name:     "google flat payload",
			provider: "google",
			attributes: map[string]any{
				"sub":     "123",
				"name":    "Minji",
				"email":   "minji@example.com",
				"picture": "https://img/p.png",
			},
			want: OAuthProfile{Name: "Minji", Email: "minji@example.com", Image: "https://img/p.png", Subject: "123"},
		},
		{
			name:     "naver nested response payload",
			provider: "naver",
			attributes: map[string]any{
				"response": map[string]any{
					"id":            "abc",
					"name":          "Dohyun",
					"email":         "dohyun@example.com",
					"profile_image": "https://img/n.png",
				},
			},
			want: OAuthProfile{Name: "Dohyun", Email: "dohyun@example.com", Image: "https://img/n.png", Subject: "abc"},
		},
		{
			name:       "unknown provider",
			provider:   "myspace",
			attributes: map[string]any{"email": "x@example.com"},
			wantErr:    models.ErrUnknownProvider,
		},
		{
			name:       "naver payload without envelope",
			provider:   "naver",
			attributes: map[string]any{"email": "x@example.com"},
			wantErr:    models.ErrUnknownProvider,
		},
		{
			name:       "missing email",
			provider:   "google",
			attributes: map[string]any{"name": "NoMail"},
			wantErr:    models.ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractOAuthProfile(tt.provider, tt.attributes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
