package orderRepo

import (
	"campora/models"
	"campora/utils"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Watch opens a change stream on the orders collection and emits the
// full document of every insert, replace and update. The channel closes
// when ctx is cancelled or the stream dies; subscribers treat each
// emission as a signal to reload and re-project from scratch.
func (r *mongoOrderRepo) Watch(ctx context.Context) (<-chan models.Order, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("error opening order change stream: %w", err)
	}

	out := make(chan models.Order)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument models.Order `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				logger.Warn("failed to decode order change event", zap.Error(err))
				continue
			}
			select {
			case out <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Error("order change stream terminated", zap.Error(err))
		}
	}()
	return out, nil
}
