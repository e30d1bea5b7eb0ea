//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/pberardi-dev/slotwise/libs/db"
	"github.com/pberardi-dev/slotwise/services/business-service/internal/storage"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *db.Pool, _ *storage.Repository) error {
	return nil
}
