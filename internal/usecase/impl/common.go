// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "recyclemart/internal/delivery/context"
	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// repoErrors maps repository sentinels to the domain errors the delivery layer understands.
var repoErrors = []struct {
	sentinel error
	domain   *domainerrors.BaseError
}{
	{sentinel: repository.ErrUserNotFound, domain: domainerrors.ErrUserNotFound},
	{sentinel: repository.ErrDuplicateEmail, domain: domainerrors.ErrDuplicateEmail},
	{sentinel: repository.ErrRequestNotFound, domain: domainerrors.ErrRequestNotFound},
	{sentinel: repository.ErrDeviceNotFound, domain: domainerrors.ErrDeviceNotFound},
	{sentinel: repository.ErrDeviceAlreadyOrdered, domain: domainerrors.ErrDeviceUnavailable},
	{sentinel: repository.ErrIndexOutOfRange, domain: domainerrors.ErrIndexOutOfRange},
	{sentinel: repository.ErrOrderNotFound, domain: domainerrors.ErrOrderNotFound},
	{sentinel: repository.ErrProductNotFound, domain: domainerrors.ErrProductNotFound},
}

// mapRepoError wraps err with message, swapping a repository sentinel for its domain error.
func mapRepoError(err error, message string) error {
	for _, m := range repoErrors {
		if errors.Is(err, m.sentinel) {
			return errors.Wrap(m.domain, message)
		}
	}

	return errors.Wrap(err, message)
}

func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

func newNotification(notificationType, message string, at time.Time) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New(),
		Type:      notificationType,
		Message:   message,
		CreatedAt: at,
	}
}
