package app

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"ubports-qa/internal/types"
)

// List returns the installed testing PPAs. Purely a registry scan; no
// privilege or mount-state change is needed.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	if err := ctx.Err(); err != nil {
		return ListResult{}, err
	}
	ids, err := s.registry().Identifiers()
	if err != nil {
		return ListResult{}, err
	}
	rendered, err := renderList(types.RepositoryList{Repositories: ids}, req.Format)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Repositories: ids, Rendered: rendered}, nil
}

func renderList(doc types.RepositoryList, format types.OutputFormat) (string, error) {
	switch format {
	case types.OutputFormatPlain, "":
		return strings.Join(doc.Repositories, "\n"), nil
	case types.OutputFormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to render json").
				WithCause(err)
		}
		return string(data), nil
	case types.OutputFormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to render yaml").
				WithCause(err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown output format: " + string(format))
	}
}
