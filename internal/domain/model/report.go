package model

// StatusCount is one bucket of an order status breakdown.
type StatusCount struct {
	Status OrderStatus
	Count  int64
}

// SalesReport aggregates a wholesaler's order book.
type SalesReport struct {
	OrderCount int64
	Revenue    float64
	ByStatus   []StatusCount
}

// SpendingReport aggregates a retailer's purchasing.
type SpendingReport struct {
	OrderCount  int64
	TotalSpent  float64
	Outstanding float64
}

// CollectionReport compares owed against collected for a wholesaler.
// CollectionRate is a percentage in [0, 100].
type CollectionReport struct {
	TotalOwed      float64
	TotalCollected float64
	CollectionRate float64
}
