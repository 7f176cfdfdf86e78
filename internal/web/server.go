package web

import "context"

// Server is the lifecycle the CLI drives.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}
