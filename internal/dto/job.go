package dto

import (
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJobRequest defines the payload for creating a job. Exactly one of
// ClientID or Client must be supplied; an inline Client is matched by name
// (find-or-create) so repeated imports never duplicate masters.
type CreateJobRequest struct {
	ClientID            *int64               `json:"clientID"`
	Client              *CreateClientRequest `json:"client"`
	JobDate             time.Time            `json:"jobDate"`
	ShipmentInvoiceNo   string               `json:"shipmentInvoiceNo"`
	TransportDocumentNo string               `json:"transportDocumentNo"`
	VATNumber           string               `json:"vatNumber"`
	TransportMode       string               `json:"transportMode" binding:"omitempty,oneof=SEA AIR LAND"`
	ShipmentAddress     string               `json:"shipmentAddress"`
	PortLoading         string               `json:"portLoading"`
	PlaceLoading        string               `json:"placeLoading"`
	PortDischarge       string               `json:"portDischarge"`
	PlaceDischarge      string               `json:"placeDischarge"`
	NoOfPackages        int                  `json:"noOfPackages"`
	GrossWeight         decimal.Decimal      `json:"grossWeight"`
	NetWeight           decimal.Decimal      `json:"netWeight"`
	CBM                 decimal.Decimal      `json:"cbm"`
}

// UpdateJobRequest defines the payload for updating a job. The optional inline
// Client follows the snapshot rule: a changed name switches the job to that
// client (find-or-create); a same-name payload never rewrites the master.
type UpdateJobRequest struct {
	Client              *CreateClientRequest `json:"client"`
	JobDate             *time.Time           `json:"jobDate"`
	ShipmentInvoiceNo   *string              `json:"shipmentInvoiceNo"`
	TransportDocumentNo *string              `json:"transportDocumentNo"`
	VATNumber           *string              `json:"vatNumber"`
	TransportMode       *string              `json:"transportMode" binding:"omitempty,oneof=SEA AIR LAND"`
	ShipmentAddress     *string              `json:"shipmentAddress"`
	PortLoading         *string              `json:"portLoading"`
	PlaceLoading        *string              `json:"placeLoading"`
	PortDischarge       *string              `json:"portDischarge"`
	PlaceDischarge      *string              `json:"placeDischarge"`
	NoOfPackages        *int                 `json:"noOfPackages"`
	GrossWeight         *decimal.Decimal     `json:"grossWeight"`
	NetWeight           *decimal.Decimal     `json:"netWeight"`
	CBM                 *decimal.Decimal     `json:"cbm"`
	IsFinished          *bool                `json:"isFinished"`
	IsInvoiced          *bool                `json:"isInvoiced"`
}

// SetJobInvoicedRequest flips the invoiced flag on a job.
type SetJobInvoicedRequest struct {
	IsInvoiced *bool `json:"isInvoiced" binding:"required"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID               int64           `json:"jobID"`
	ClientID            int64           `json:"clientID"`
	JobDate             time.Time       `json:"jobDate"`
	ShipmentInvoiceNo   string          `json:"shipmentInvoiceNo"`
	TransportDocumentNo string          `json:"transportDocumentNo"`
	VATNumber           string          `json:"vatNumber"`
	TransportMode       string          `json:"transportMode"`
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

// JobInvoicedResponse returns the saved job together with the outcome of the
// shadow-entry synchronization side effect.
type JobInvoicedResponse struct {
	Job        JobResponse             `json:"job"`
	LedgerSync domain.ShadowSyncResult `json:"ledgerSync"`
}

// ToJobResponse converts a domain.Job to JobResponse.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:               j.JobID,
		ClientID:            j.ClientID,
		JobDate:             j.JobDate,
		ShipmentInvoiceNo:   j.ShipmentInvoiceNo,
		TransportDocumentNo: j.TransportDocumentNo,
		VATNumber:           j.VATNumber,
		TransportMode:       string(j.TransportMode),
		ShipmentAddress:     j.ShipmentAddress,
		PortLoading:         j.PortLoading,
		PlaceLoading:        j.PlaceLoading,
		PortDischarge:       j.PortDischarge,
		PlaceDischarge:      j.PlaceDischarge,
		NoOfPackages:        j.NoOfPackages,
		GrossWeight:         j.GrossWeight,
		NetWeight:           j.NetWeight,
		CBM:                 j.CBM,
		IsFinished:          j.IsFinished,
		IsInvoiced:          j.IsInvoiced,
		CreatedAt:           j.CreatedAt,
	}
}

// ToJobResponses converts a slice of domain.Job to []JobResponse.
func ToJobResponses(jobs []domain.Job) []JobResponse {
	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = ToJobResponse(&jobs[i])
	}
	return responses
}
