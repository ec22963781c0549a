package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Response модели

// OrderResponse ответ с данными заказа
type OrderResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"userId"`
	ExecutorID       *int64  `json:"executorId,omitempty"`
	BaseServiceID    int64   `json:"baseServiceId"`
	ServiceVariantID int64   `json:"serviceVariantId"`
	OptionIDs        []int64 `json:"optionIds"`
	StartsAt         int64   `json:"startsAt"` // миллисекунды epoch (UTC)
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`

	// Денормализованные данные
	ServiceName string  `json:"serviceName"`
	TotalPrice  float64 `json:"totalPrice"`
	Bonus       int     `json:"bonus"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// Методы конвертации

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	optionIDs := o.OptionIDs
	if optionIDs == nil {
		optionIDs = []int64{}
	}

	return &OrderResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		ExecutorID:       o.ExecutorID,
		BaseServiceID:    o.BaseServiceID,
		ServiceVariantID: o.ServiceVariantID,
		OptionIDs:        optionIDs,
		StartsAt:         o.StartsAt.UnixMilli(),
		DurationMinutes:  o.DurationMinutes,
		Status:           string(o.Status),
		ServiceName:      o.ServiceName,
		TotalPrice:       o.TotalPrice,
		Bonus:            o.Bonus,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список domain моделей в DTO
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	resp := &OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
	}

	for _, o := range orders {
		resp.Orders = append(resp.Orders, *FromDomainOrder(o))
	}

	return resp
}
