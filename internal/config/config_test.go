package config

import "testing"

func TestGoogleOAuthEnabled(t *testing.T) {
	tests := []struct {
		name     string
		oauth    OAuth2GoogleConfig
		expected bool
	}{
		{
			name: "fully configured",
			oauth: OAuth2GoogleConfig{
				ClientID:     "client-id",
				ClientSecret: "client-secret",
				RedirectURL:  "http://localhost:8080/api/v1/auth/oauth/callback/google",
			},
			expected: true,
		},
		{
			name:     "unset",
			oauth:    OAuth2GoogleConfig{},
			expected: false,
		},
		{
			name: "missing secret",
			oauth: OAuth2GoogleConfig{
				ClientID:    "client-id",
				RedirectURL: "http://localhost:8080/api/v1/auth/oauth/callback/google",
			},
			expected: false,
		},
		{
			name: "missing redirect url",
			oauth: OAuth2GoogleConfig{
				ClientID:     "client-id",
				ClientSecret: "client-secret",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{OAuth2Google: tt.oauth}
			if got := cfg.GoogleOAuthEnabled(); got != tt.expected {
				t.Errorf("GoogleOAuthEnabled() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error when DB_PASSWORD is unset")
	}

	cfg.Database.Password = "secret"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error when JWT_SECRET_KEY is unset")
	}

	cfg.JWT.Secret = "jwt-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
