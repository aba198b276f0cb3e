package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransportMode is the route type of a shipment job.
type TransportMode string

const (
	TransportSea  TransportMode = "SEA"
	TransportAir  TransportMode = "AIR"
	TransportLand TransportMode = "LAND"
)

// Job is one shipment job owned by a client. Flipping IsInvoiced to true is the
// state trigger for the invoice shadow-entry synchronizer; the flip is idempotent
// with respect to ledger entries.
type Job struct {
	JobID               int64           `json:"jobID"`
	ClientID            int64           `json:"clientID"`
	JobDate             time.Time       `json:"jobDate"`
	ShipmentInvoiceNo   string          `json:"shipmentInvoiceNo"`
	TransportDocumentNo string          `json:"transportDocumentNo"`
	VATNumber           string          `json:"vatNumber"`
	TransportMode       TransportMode   `json:"transportMode"`
	ShipmentAddress     string          `json:"shipmentAddress"`
	PortLoading         string          `json:"portLoading"`
	PlaceLoading        string          `json:"placeLoading"`
	PortDischarge       string          `json:"portDischarge"`
	PlaceDischarge      string          `json:"placeDischarge"`
	NoOfPackages        int             `json:"noOfPackages"`
	GrossWeight         decimal.Decimal `json:"grossWeight"`
	NetWeight           decimal.Decimal `json:"netWeight"`
	CBM                 decimal.Decimal `json:"cbm"`
	IsFinished          bool            `json:"isFinished"`
	IsInvoiced          bool            `json:"isInvoiced"`
	CreatedAt           time.Time       `json:"createdAt"`
}
