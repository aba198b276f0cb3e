package mapping

import (
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/models"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:   d.ClientID,
		Name:       d.Name,
		Address:    d.Address,
		PostalCode: d.PostalCode,
		Phone:      d.Phone,
		Email:      strPtrOrNil(d.Email),
		VATNumber:  strPtrOrNil(d.VATNumber),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:   m.ClientID,
		Name:       m.Name,
		Address:    m.Address,
		PostalCode: m.PostalCode,
		Phone:      m.Phone,
		Email:      strOrEmpty(m.Email),
		VATNumber:  strOrEmpty(m.VATNumber),
		CreatedAt:  m.CreatedAt,
	}
}

// ToModelJob converts a domain Job to a model Job
func ToModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:               d.JobID,
		ClientID:            d.ClientID,
		JobDate:             d.JobDate,
		ShipmentInvoiceNo:   strPtrOrNil(d.ShipmentInvoiceNo),
		TransportDocumentNo: d.TransportDocumentNo,
		VATNumber:           strPtrOrNil(d.VATNumber),
		TransportMode:       string(d.TransportMode),
		ShipmentAddress:     strPtrOrNil(d.ShipmentAddress),
		PortLoading:         d.PortLoading,
		PlaceLoading:        d.PlaceLoading,
		PortDischarge:       d.PortDischarge,
		PlaceDischarge:      d.PlaceDischarge,
		NoOfPackages:        d.NoOfPackages,
		GrossWeight:         d.GrossWeight,
		NetWeight:           d.NetWeight,
		CBM:                 d.CBM,
		IsFinished:          d.IsFinished,
		IsInvoiced:          d.IsInvoiced,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:               m.JobID,
		ClientID:            m.ClientID,
		JobDate:             m.JobDate,
		ShipmentInvoiceNo:   strOrEmpty(m.ShipmentInvoiceNo),
		TransportDocumentNo: m.TransportDocumentNo,
		VATNumber:           strOrEmpty(m.VATNumber),
		TransportMode:       domain.TransportMode(m.TransportMode),
		ShipmentAddress:     strOrEmpty(m.ShipmentAddress),
		PortLoading:         m.PortLoading,
		PlaceLoading:        m.PlaceLoading,
		PortDischarge:       m.PortDischarge,
		PlaceDischarge:      m.PlaceDischarge,
		NoOfPackages:        m.NoOfPackages,
		GrossWeight:         m.GrossWeight,
		NetWeight:           m.NetWeight,
		CBM:                 m.CBM,
		IsFinished:          m.IsFinished,
		IsInvoiced:          m.IsInvoiced,
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		InvoiceItemID: m.InvoiceItemID,
		JobID:         m.JobID,
		ChargeTypeID:  m.ChargeTypeID,
		Description:   m.Description,
		Amount:        m.Amount,
		VAT:           m.VAT,
		Total:         m.Total,
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID: d.InvoiceItemID,
		JobID:         d.JobID,
		ChargeTypeID:  d.ChargeTypeID,
		Description:   d.Description,
		Amount:        d.Amount,
		VAT:           d.VAT,
		Total:         d.Total,
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		TransType:     string(d.TransType),
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date,
		BankName:      strPtrOrNil(d.BankName),
		ChequeNo:      strPtrOrNil(d.ChequeNo),
		VoucherNo:     d.VoucherNo,
		PartyName:     d.PartyName,
		JobID:         d.JobID,
		ClientID:      d.ClientID,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		TransType:     domain.TransactionType(m.TransType),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		BankName:      strOrEmpty(m.BankName),
		ChequeNo:      strOrEmpty(m.ChequeNo),
		VoucherNo:     m.VoucherNo,
		PartyName:     m.PartyName,
		JobID:         m.JobID,
		ClientID:      m.ClientID,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:   m.PartyID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditID:   m.AuditID,
		UserName:  m.UserName,
		Action:    m.Action,
		CreatedAt: m.CreatedAt,
	}
}
