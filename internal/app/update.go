package app

import "context"

// Update refreshes apt state inside the writability guard without
// touching the registry.
func (s Service) Update(ctx context.Context) error {
	return s.guard().Run(ctx, func(ctx context.Context) error {
		s.refreshPackages(ctx)
		return nil
	})
}
