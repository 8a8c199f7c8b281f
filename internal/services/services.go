// Package services implements the domain use cases on top of the repository ports.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sportsessions/internal/domain"
)

// withTimeout bounds ctx by d. A zero d leaves ctx unbounded so store timeouts apply alone.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	return nil
}
