package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"search": map[string]any{
			"similarityThreshold": 0.3,
			"defaultPageSize":     20,
		},
		"jwt": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SEARCH_SIMILARITYTHRESHOLD", want: "search.similarityThreshold"},
		{envKey: "SEARCH_DEFAULTPAGESIZE", want: "search.defaultPageSize"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Search.SimilarityThreshold != defaultSimilarityThreshold {
		t.Fatalf("SimilarityThreshold = %v, want %v", cfg.Search.SimilarityThreshold, defaultSimilarityThreshold)
	}
	if cfg.JWT.TTL != defaultTokenTTL {
		t.Fatalf("TTL = %v, want %v", cfg.JWT.TTL, defaultTokenTTL)
	}
}

func TestApplyDefaults_RejectsOutOfRangeThreshold(t *testing.T) {
	cfg := &Config{Search: &SearchConfig{SimilarityThreshold: 1.0}}
	applyDefaults(cfg)

	if cfg.Search.SimilarityThreshold != defaultSimilarityThreshold {
		t.Fatalf("SimilarityThreshold = %v, want default %v", cfg.Search.SimilarityThreshold, defaultSimilarityThreshold)
	}
}
