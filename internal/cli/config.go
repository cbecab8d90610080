package cli

import (
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/keyring"
)

type ConfigCmd struct {
	SetAPIKey    ConfigSetAPIKeyCmd    `cmd:"" name:"set-api-key" help:"Store the generative-text API key in the OS keyring."`
	DeleteAPIKey ConfigDeleteAPIKeyCmd `cmd:"" name:"delete-api-key" help:"Remove the API key from the OS keyring."`
}

type ConfigSetAPIKeyCmd struct {
	Key string `arg:"" help:"The API key."`
}

func (c *ConfigSetAPIKeyCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

type ConfigDeleteAPIKeyCmd struct{}

func (c *ConfigDeleteAPIKeyCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed from OS keyring.")
	return nil
}
