//go:build integration

package integration

import (
	"context"
	"os"
)

// initEnvVars sets process environment variables before the rest of the app is initialized.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}
