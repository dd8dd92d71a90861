package domain

// SegmentAtRisk is the mart segment fed to the retention dashboard:
// customers with 3+ orders that have not returned for over 30 days.
const SegmentAtRisk = "Em Risco"

// RFMCustomer is one row of the customer RFM mart. Name, phone and email may
// be empty; identity falls back to ID at the presentation boundary.
type RFMCustomer struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	Frequency     int
	RecencyDays   int
	MonetaryValue float64
	Segment       string
}

// HasName reports whether a display name is available.
func (c RFMCustomer) HasName() bool {
	return c.Name != ""
}

// SegmentList is a segment slice together with its count.
type SegmentList struct {
	SegmentName string
	TotalCount  int
	Customers   []RFMCustomer
}
