package report

import "context"

type Service interface {
	// Execute runs the work hour report and returns the fixed column
	// schema paired with the variance rows. Read-only.
	Execute(ctx context.Context, req ExecuteRequest) (Result, error)
}
