package realtime

import (
	"context"
	"time"

	orderRepo "campora/database/repository/order"
	"campora/utils"

	"go.uber.org/zap"
)

// OrderStream ties the order change stream to the hub and keeps it
// alive: if the stream dies it reopens after a short pause until the
// context is cancelled.
type OrderStream struct {
	Repo orderRepo.OrderRepository
	Hub  *Hub
}

const reconnectDelay = 5 * time.Second

// Start launches the watch loop in the background.
func (s *OrderStream) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *OrderStream) run(ctx context.Context) {
	logger := utils.GetLogger()
	for {
		events, err := s.Repo.Watch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("failed to open order change stream, retrying",
				zap.Duration("retryIn", reconnectDelay),
				zap.Error(err),
			)
		} else {
			s.Hub.Run(ctx, events)
			if ctx.Err() != nil {
				return
			}
			logger.Warn("order change stream closed, reopening",
				zap.Duration("retryIn", reconnectDelay),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}
