package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh apt state without touching the PPA registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd.Context())
		},
	}
	return cmd
}

func runUpdate(ctx context.Context) error {
	service := newAppService()
	if err := service.Update(ctx); err != nil {
		return err
	}
	fmt.Println("updated")
	return nil
}
