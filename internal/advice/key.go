package advice

import (
	"os"

	"github.com/vincentqiao/medflow/internal/keyring"
	"github.com/vincentqiao/medflow/internal/logger"
)

// EnvAPIKey is the environment variable consulted before the OS keyring.
// A .env file loaded at startup can supply it.
const EnvAPIKey = "GEMINI_API_KEY"

// ResolveAPIKey finds the advice API key: the environment wins, then the
// OS keyring. An empty result is fine; the client then always falls back.
func ResolveAPIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}

	key, err := keyring.GetAPIKey()
	if err != nil {
		if err != keyring.ErrNotFound {
			logger.Debug("keyring lookup failed", "err", err)
		}
		return ""
	}
	return key
}
