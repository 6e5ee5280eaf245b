package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"ubports-qa/internal/app"
)

func newInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <repo> [pr]",
		Short: "Install a testing PPA, optionally pinned to a pull-request build",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), args)
		},
	}
	return cmd
}

func runInstall(ctx context.Context, args []string) error {
	pr := 0
	if len(args) == 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil || parsed <= 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("pull-request number must be a positive integer")
		}
		pr = parsed
	}
	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{Repo: args[0], PullRequest: pr})
	if err != nil {
		return err
	}
	fmt.Printf("installed: %s\n", result.ID)
	fmt.Println(result.RemovalHint)
	return nil
}
