package handler

import (
	"time"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

type categoryResponse struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func toCategoryResponse(c model.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Slug: c.Slug, Title: c.Title}
}

type menuItemResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Featured bool    `json:"featured"`
	Category int64   `json:"category"`
}

func toMenuItemResponse(m model.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:       m.ID,
		Title:    m.Title,
		Price:    model.Amount(m.PriceCents),
		Featured: m.Featured,
		Category: m.CategoryID,
	}
}

type cartLineResponse struct {
	ID        int64   `json:"id"`
	MenuItem  int64   `json:"menuitem"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Price     float64 `json:"price"`
}

func toCartLineResponse(l model.CartLine) cartLineResponse {
	return cartLineResponse{
		ID:        l.ID,
		MenuItem:  l.MenuItemID,
		Quantity:  l.Quantity,
		UnitPrice: model.Amount(l.UnitPriceCents),
		Price:     model.Amount(l.PriceCents),
	}
}

func toCartLineResponses(lines []model.CartLine) []cartLineResponse {
	resp := make([]cartLineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, toCartLineResponse(l))
	}
	return resp
}

type cartResponse struct {
	Items         []cartLineResponse `json:"items"`
	TotalPrice    float64            `json:"total_price"`
	ItemCount     int                `json:"item_count"`
	TotalQuantity int32              `json:"total_quantity"`
}

type userCartResponse struct {
	User     int64              `json:"user"`
	Username string             `json:"username"`
	Items    []cartLineResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

type orderItemResponse struct {
	ID       int64   `json:"id"`
	Order    int64   `json:"order"`
	MenuItem int64   `json:"menuitem"`
	Quantity int32   `json:"quantity"`
	Price    float64 `json:"price"`
}

func toOrderItemResponses(items []model.OrderItem) []orderItemResponse {
	resp := make([]orderItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, orderItemResponse{
			ID:       it.ID,
			Order:    it.OrderID,
			MenuItem: it.MenuItemID,
			Quantity: it.Quantity,
			Price:    model.Amount(it.PriceCents),
		})
	}
	return resp
}

type orderResponse struct {
	ID            int64   `json:"id"`
	User          int64   `json:"user"`
	DeliveryCrew  *int64  `json:"delivery_crew"`
	Status        bool    `json:"status"`
	Total         float64 `json:"total"`
	Date          string  `json:"date"`
	DeliveredTime *string `json:"delivered_time"`
}

func toOrderResponse(o model.Order) orderResponse {
	resp := orderResponse{
		ID:           o.ID,
		User:         o.UserID,
		DeliveryCrew: o.DeliveryCrewID,
		Status:       o.Status,
		Total:        model.Amount(o.TotalCents),
		Date:         o.Date.Format(time.DateOnly),
	}
	if o.DeliveredTime != nil {
		delivered := o.DeliveredTime.Format(time.RFC3339)
		resp.DeliveredTime = &delivered
	}
	return resp
}

type orderWithItemsResponse struct {
	orderResponse
	Items []orderItemResponse `json:"items"`
}

type userResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	IsStaff     bool     `json:"is_staff"`
	IsActive    bool     `json:"is_active"`
	IsSuperuser bool     `json:"is_superuser"`
	Groups      []string `json:"groups"`
	ReadyToWork *bool    `json:"ready_to_work"`
}

func toUserResponse(u model.User) userResponse {
	groups := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		groups = append(groups, string(g))
	}
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsStaff:     u.IsStaff,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		Groups:      groups,
		ReadyToWork: u.ReadyToWork,
	}
}

type ratingSummaryResponse struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

func toRatingSummaryResponse(s model.RatingSummary) ratingSummaryResponse {
	return ratingSummaryResponse{Count: s.Count, Average: s.Average}
}

type ratingResponse struct {
	ID          int64  `json:"id"`
	User        int64  `json:"user"`
	Rate        int16  `json:"rate"`
	ContentType string `json:"content_type"`
	ObjectID    int64  `json:"object_id"`
}

func toRatingResponse(r model.Rating) ratingResponse {
	return ratingResponse{
		ID:          r.ID,
		User:        r.UserID,
		Rate:        r.Rate,
		ContentType: string(r.Target.Kind),
		ObjectID:    r.Target.ID,
	}
}
