package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job mirrors the jobs table.
type Job struct {
	JobID               int64
	ClientID            int64
	JobDate             time.Time
	ShipmentInvoiceNo   *string
	TransportDocumentNo string
	VATNumber           *string
	TransportMode       string
	ShipmentAddress     *string
	PortLoading         string
	PlaceLoading        string
	PortDischarge       string
	PlaceDischarge      string
	NoOfPackages        int
	GrossWeight         decimal.Decimal
	NetWeight           decimal.Decimal
	CBM                 decimal.Decimal
	IsFinished          bool
	IsInvoiced          bool
	CreatedAt           time.Time
}
