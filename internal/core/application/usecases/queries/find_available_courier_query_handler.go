package queries

import (
	"context"

	"deliverysystem/internal/core/domain/services"
)

// FindAvailableCourierQueryHandler returns the first available courier that
// can carry the weight. The pick is first-match in storage order. When none
// qualifies the error matches errs.ErrObjectNotFound.
//
// The courier is not reserved; use AssignCourierCommand for that.
type FindAvailableCourierQueryHandler struct {
	repos      RepositoriesFactory
	dispatcher services.OrderDispatcher
}

func NewFindAvailableCourierQueryHandler(repos RepositoriesFactory) FindAvailableCourierQueryHandler {
	return FindAvailableCourierQueryHandler{
		repos:      repos,
		dispatcher: services.NewOrderDispatcher(),
	}
}

func (h FindAvailableCourierQueryHandler) Handle(
	ctx context.Context,
	query FindAvailableCourierQuery,
) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	couriers, err := h.repos.Create().CourierRepository().GetAvailableForWeight(ctx, query.WeightKg())
	if err != nil {
		return CourierResponse{}, err
	}

	c, err := h.dispatcher.FindAvailable(couriers, query.WeightKg())
	if err != nil {
		return CourierResponse{}, err
	}
	return newCourierResponse(c), nil
}
