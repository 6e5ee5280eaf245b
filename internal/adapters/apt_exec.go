package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ubports-qa/internal/ports"
	"ubports-qa/internal/shared"
)

// AptExecAdapter shells out to apt-get. The command name is a field so
// tests can substitute a stub binary.
type AptExecAdapter struct {
	Command string
}

func NewAptExecAdapter() AptExecAdapter {
	return AptExecAdapter{Command: "apt-get"}
}

func (a AptExecAdapter) Update(ctx context.Context) error {
	return a.run(ctx, "update")
}

func (a AptExecAdapter) Upgrade(ctx context.Context) error {
	return a.run(ctx, "upgrade", "-y")
}

func (a AptExecAdapter) Autoremove(ctx context.Context) error {
	return a.run(ctx, "autoremove", "-y")
}

func (a AptExecAdapter) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, a.Command, args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(a.Command + " command failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.AptPort = AptExecAdapter{}
