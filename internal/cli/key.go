package cli

import (
	"fmt"
	"strings"

	"github.com/vincentqiao/medflow/internal/advice"
	"github.com/vincentqiao/medflow/internal/keyring"
)

type KeySetCmd struct {
	Key string `arg:"" help:"Gemini API key used for advice messages."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(strings.TrimSpace(c.Key)); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in the OS keyring.")
	return nil
}

type KeyShowCmd struct{}

func (c *KeyShowCmd) Run(ctx *Context) error {
	key := advice.ResolveAPIKey()
	if key == "" {
		fmt.Println("No API key configured. Advice messages will use the built-in fallback.")
		fmt.Printf("Set one with 'medflow key set <key>' or the %s environment variable.\n", advice.EnvAPIKey)
		return nil
	}

	masked := key
	if len(masked) > 8 {
		masked = masked[:4] + strings.Repeat("*", len(masked)-8) + masked[len(masked)-4:]
	}
	fmt.Printf("API key configured: %s\n", masked)
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No API key stored in the keyring.")
			return nil
		}
		return err
	}
	fmt.Println("✓ API key removed from the OS keyring.")
	return nil
}
