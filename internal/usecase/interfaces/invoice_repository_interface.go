package interfaces

import (
	"context"

	"jobdesk/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// NextInvoiceNumber must be atomic per owner: concurrent callers get
// distinct, strictly increasing numbers. Numbers handed out for a
// materialization that later fails are not reclaimed.

type IInvoiceRepository interface {
	Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Save(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerContact string) ([]entities.Invoice, error)
	NextInvoiceNumber(ctx context.Context, ownerContact string) (int64, error)
}
