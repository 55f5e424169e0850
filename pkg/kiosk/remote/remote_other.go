//go:build !linux

package remote

import (
	"context"
	"log/slog"
)

func Open(_ context.Context, _ string, _ *slog.Logger) (*Remote, error) {
	return nil, ErrUnsupported
}
