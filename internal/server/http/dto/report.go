package dto

import "github.com/merchline/merchline/internal/domain/model"

// StatusCountResponse is one status bucket of a sales report.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// SalesReportResponse summarizes a wholesaler's sales.
type SalesReportResponse struct {
	OrderCount int64                 `json:"order_count"`
	Revenue    float64               `json:"revenue"`
	ByStatus   []StatusCountResponse `json:"by_status"`
}

// SpendingReportResponse summarizes a retailer's purchasing.
type SpendingReportResponse struct {
	OrderCount  int64   `json:"order_count"`
	TotalSpent  float64 `json:"total_spent"`
	Outstanding float64 `json:"outstanding"`
}

// CollectionReportResponse compares owed against collected.
type CollectionReportResponse struct {
	TotalOwed      float64 `json:"total_owed"`
	TotalCollected float64 `json:"total_collected"`
	CollectionRate float64 `json:"collection_rate"`
}

// ToSalesReportResponse maps a sales report to its wire form.
func ToSalesReportResponse(r model.SalesReport) SalesReportResponse {
	buckets := make([]StatusCountResponse, 0, len(r.ByStatus))
	for _, b := range r.ByStatus {
		buckets = append(buckets, StatusCountResponse{Status: string(b.Status), Count: b.Count})
	}
	return SalesReportResponse{OrderCount: r.OrderCount, Revenue: r.Revenue, ByStatus: buckets}
}

// ToSpendingReportResponse maps a spending report to its wire form.
func ToSpendingReportResponse(r model.SpendingReport) SpendingReportResponse {
	return SpendingReportResponse{OrderCount: r.OrderCount, TotalSpent: r.TotalSpent, Outstanding: r.Outstanding}
}

// ToCollectionReportResponse maps a collection report to its wire form.
func ToCollectionReportResponse(r model.CollectionReport) CollectionReportResponse {
	return CollectionReportResponse{TotalOwed: r.TotalOwed, TotalCollected: r.TotalCollected, CollectionRate: r.CollectionRate}
}
