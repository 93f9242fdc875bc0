package models

// PaymentStats aggregates the Payment table.
type PaymentStats struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// Stats is the dashboard summary. Zero values stand in for counts that
// could not be computed.
type Stats struct {
	Students    int64        `json:"students"`
	Teachers    int64        `json:"teachers"`
	Departments int64        `json:"departments"`
	Courses     int64        `json:"courses"`
	Enrollments int64        `json:"enrollments"`
	Books       int64        `json:"books"`
	Payments    PaymentStats `json:"payments"`
}
