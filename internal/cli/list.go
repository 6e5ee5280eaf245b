package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ubports-qa/internal/app"
	"ubports-qa/internal/types"
)

type listOptions struct {
	Format string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed testing PPAs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "plain", "Output format: plain, json or yaml")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		Format: types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	if err != nil {
		return err
	}
	if result.Rendered != "" {
		fmt.Println(result.Rendered)
	}
	return nil
}
