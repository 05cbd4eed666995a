package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"auth": map[string]any{
			"requireDedicatedSecrets": false,
		},
		"app": map[string]any{
			"baseURL": "",
		},
		"rateLimit": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
		"seed": map[string]any{
			"adminEmail": "",
		},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":             "postgres.sslMode",
		"AUTH_REQUIREDEDICATEDSECRETS": "auth.requireDedicatedSecrets",
		"APP_BASEURL":                  "app.baseURL",
		"RATELIMIT_REDIS_ADDR":         "rateLimit.redis.addr",
		"SEED_ADMINEMAIL":              "seed.adminEmail",
		"STRIPE__SECRETKEY":            "stripe.secretkey",
		"UNKNOWN_SECTION_KEY":          "unknown.section.key",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5433")
	// Index 2 has no port, so it and anything after it are ignored.
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "replica-c")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}
