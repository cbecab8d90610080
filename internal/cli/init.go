package cli

import (
	"fmt"

	"github.com/manasgurde21/DailyGrow/internal/service"
)

type InitCmd struct {
	Seed bool `help:"Populate a fresh store with starter habits and tasks."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Seed {
		svc := service.New(ctx.Store)
		if err := svc.Seed(Today()); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized dailygrow storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
