package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ubports-qa/internal/app"
)

func newRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <repo>",
		Aliases: []string{"uninstall"},
		Short:   "Remove an installed testing PPA",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runRemove(ctx context.Context, repo string) error {
	service := newAppService()
	result, err := service.Remove(ctx, app.RemoveRequest{Repo: repo})
	if err != nil {
		return err
	}
	fmt.Printf("removed: %s\n", result.ID)
	return nil
}
