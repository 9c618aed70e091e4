package usecase

// ValidQuantity reports whether a quantity is usable for a cart or order line.
func ValidQuantity(quantity int) bool {
	return quantity > 0
}

// ValidAmount reports whether a monetary amount is positive.
func ValidAmount(amount float64) bool {
	return amount > 0
}
