package entities

import "time"

// InvoiceStatus represents the billing state of an invoice.

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// LineItem is one billable row of an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// Invoice is a materialized billing document, linked to at most one job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_contact-index): owner_contact
//
// InvoiceNumber is assigned from a per-owner counter: strictly increasing,
// never reused, gap-tolerant (a failed materialization burns its number).
type Invoice struct {
	ID            string        `json:"id"`
	OwnerContact  string        `json:"owner_contact"`
	JobID         string        `json:"job_id,omitempty"`
	InvoiceNumber int64         `json:"invoice_number"`
	Client        string        `json:"client"`
	Date          time.Time     `json:"date"`
	LineItems     []LineItem    `json:"line_items"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Total sums quantity x rate over all line items.
func (i Invoice) Total() float64 {
	total := 0.0
	for _, li := range i.LineItems {
		total += li.Quantity * li.Rate
	}
	return total
}
