package advice

import "testing"

func TestResolveAPIKey_EnvironmentWins(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	if got := ResolveAPIKey(); got != "env-key" {
		t.Errorf("ResolveAPIKey = %q, want %q", got, "env-key")
	}
}
