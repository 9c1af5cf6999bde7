package handler

import (
	"net/http"
	"time"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

type salesReportResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Total  float64 `json:"total"`
	Orders int64   `json:"orders"`
}

func toSalesReportResponse(rep model.SalesReport) salesReportResponse {
	return salesReportResponse{
		From:   rep.From.Format(time.DateOnly),
		To:     rep.To.Format(time.DateOnly),
		Total:  model.Amount(rep.TotalCents),
		Orders: rep.Orders,
	}
}

// SalesReport возвращает отчёт о продажах.
// Параметр date даёт отчёт за день, пара from/to — за период включительно.
func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if v := q.Get("date"); v != "" {
		date, err := time.Parse(time.DateOnly, v)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		rep, err := h.service.DailySales(r.Context(), date)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, toSalesReportResponse(*rep))
		return
	}

	from, err := time.Parse(time.DateOnly, q.Get("from"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	to, err := time.Parse(time.DateOnly, q.Get("to"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rep, err := h.service.RangeSales(r.Context(), from, to)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSalesReportResponse(*rep))
}
