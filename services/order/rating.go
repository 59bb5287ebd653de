package order

import (
	"context"
	"errors"

	"campora/models"
	"campora/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RateOrder records the single post-completion rating of an order. The
// rating document and the order's rated flag are sibling writes with no
// cross-document atomicity; a crash between them leaves a rating whose
// order still reads unrated, which the duplicate check tolerates by
// consulting the flag only.
func (svc *DefaultOrderService) RateOrder(ctx context.Context, actor models.Actor, orderID string, stars int, comment string) (*models.Rating, error) {
	if actor.Role != models.RoleCustomer {
		return nil, ErrForbidden
	}
	if stars < 1 || stars > 5 {
		return nil, NewValidationError("stars", "stars must be between 1 and 5")
	}

	ord, err := svc.Repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if ord.CustomerID != actor.ID {
		return nil, ErrForbidden
	}
	if ord.Status != models.ItemCompleted {
		return nil, ErrOrderNotCompleted
	}
	if ord.Rated {
		return nil, ErrAlreadyRated
	}

	rating := models.Rating{
		BookingID:  orderID,
		CustomerID: actor.ID,
		Stars:      stars,
		Comment:    comment,
	}
	ratingID, err := svc.Ratings.Create(ctx, rating)
	if err != nil {
		return nil, err
	}
	rating.ID = ratingID

	if err := svc.Repo.SetRated(ctx, orderID, true); err != nil {
		utils.GetLogger().Error("rating stored but rated flag not set",
			zap.String("orderId", orderID),
			zap.String("ratingId", ratingID),
			zap.Error(err),
		)
		return nil, err
	}
	return &rating, nil
}
