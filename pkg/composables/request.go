package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vandaszabo/mintaprojekt/pkg/constants"
)

var ErrNoActor = errors.New("no actor found in context")

// WithActor binds the authenticated actor's ID to ctx. The HTTP layer
// resolves it once per request; everything below reads it from here.
func WithActor(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.ActorKey, actorID)
}

func UseActor(ctx context.Context) (uuid.UUID, error) {
	actor := ctx.Value(constants.ActorKey)
	if actor == nil {
		return uuid.Nil, ErrNoActor
	}
	return actor.(uuid.UUID), nil
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logger.(*logrus.Entry)
}
