package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "http://localhost:5000/api",
		},
		"stripe": map[string]any{
			"secretKey": "",
		},
		"snapshot": map[string]any{
			"bucketUrl": "mem://",
		},
		"queue": map[string]any{
			"pollInterval": "5s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "STRIPE_SECRETKEY", want: "stripe.secretKey"},
		{envKey: "SNAPSHOT_BUCKETURL", want: "snapshot.bucketUrl"},
		{envKey: "QUEUE_POLLINTERVAL", want: "queue.pollInterval"},
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
