package create_order

import (
	"time"

	createOrder "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	ServiceVariantID int64   `json:"serviceVariantId"`
	OptionIDs        []int64 `json:"optionIds,omitempty"`
	StartsAt         int64   `json:"startsAt"` // миллисекунды epoch (UTC)
	Bonus            int     `json:"bonus,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"userId"`
	ExecutorID       *int64  `json:"executorId,omitempty"`
	BaseServiceID    int64   `json:"baseServiceId"`
	ServiceVariantID int64   `json:"serviceVariantId"`
	OptionIDs        []int64 `json:"optionIds"`
	StartsAt         int64   `json:"startsAt"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	ServiceName      string  `json:"serviceName"`
	TotalPrice       float64 `json:"totalPrice"`
	Bonus            int     `json:"bonus"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(userID int64) *createOrder.Request {
	return &createOrder.Request{
		UserID:           userID,
		ServiceVariantID: r.ServiceVariantID,
		OptionIDs:        r.OptionIDs,
		StartsAt:         time.UnixMilli(r.StartsAt).UTC(),
		Bonus:            r.Bonus,
		Notes:            r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	optionIDs := resp.OptionIDs
	if optionIDs == nil {
		optionIDs = []int64{}
	}

	return &OrderResponse{
		ID:               resp.ID,
		UserID:           resp.UserID,
		ExecutorID:       resp.ExecutorID,
		BaseServiceID:    resp.BaseServiceID,
		ServiceVariantID: resp.ServiceVariantID,
		OptionIDs:        optionIDs,
		StartsAt:         resp.StartsAt.UnixMilli(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		ServiceName:      resp.ServiceName,
		TotalPrice:       resp.TotalPrice,
		Bonus:            resp.Bonus,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
