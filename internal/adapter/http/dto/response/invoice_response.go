package response

import (
	"time"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/usecase"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	OwnerContact  string             `json:"owner_contact"`
	JobID         string             `json:"job_id,omitempty"`
	InvoiceNumber int64              `json:"invoice_number"`
	Client        string             `json:"client,omitempty"`
	Date          time.Time          `json:"date"`
	LineItems     []LineItemResponse `json:"line_items"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// InvoiceDraftResponse is the preview of an invoice before it is assigned a
// number and persisted.
type InvoiceDraftResponse struct {
	JobID        string             `json:"job_id"`
	OwnerContact string             `json:"owner_contact"`
	Client       string             `json:"client,omitempty"`
	Date         time.Time          `json:"date"`
	LineItems    []LineItemResponse `json:"line_items"`
	Total        float64            `json:"total"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Quantity * li.Rate,
		})
	}
	return out
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		OwnerContact:  i.OwnerContact,
		JobID:         i.JobID,
		InvoiceNumber: i.InvoiceNumber,
		Client:        i.Client,
		Date:          i.Date,
		LineItems:     fromLineItems(i.LineItems),
		Total:         i.Total(),
		Status:        string(i.Status),
		CreatedAt:     i.CreatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, FromInvoice(i))
	}
	return out
}

func FromInvoiceDraft(d usecase.InvoiceDraft) InvoiceDraftResponse {
	return InvoiceDraftResponse{
		JobID:        d.JobID,
		OwnerContact: d.OwnerContact,
		Client:       d.Client,
		Date:         d.Date,
		LineItems:    fromLineItems(d.LineItems),
		Total:        d.Total,
	}
}
