package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/gulfbridge/freight_ledger_app/internal/models"
	"github.com/gulfbridge/freight_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, trans_type, amount, description, date,
		bank_name, cheque_no, voucher_no, party_name, job_id, client_id`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransType,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.BankName,
		&m.ChequeNo,
		&m.VoucherNo,
		&m.PartyName,
		&m.JobID,
		&m.ClientID,
	)
	return m, err
}

// nextVoucherNo allocates the next voucher number for a transaction type.
// The counter row is locked for the rest of the surrounding database
// transaction, serializing allocation per type. The locked counter is checked
// against the newest stored voucher of the type so a counter that lags behind
// imported data catches up instead of re-issuing a taken number; the decision
// itself lives in domain.NextVoucherSeq.
func nextVoucherNo(ctx context.Context, tx pgx.Tx, transType domain.TransactionType) (string, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO voucher_counters (trans_type, last_seq) VALUES ($1, 0) ON CONFLICT (trans_type) DO NOTHING;`,
		string(transType))
	if err != nil {
		return "", fmt.Errorf("failed to ensure voucher counter for %s: %w", transType, err)
	}

	var lastSeq int64
	err = tx.QueryRow(ctx,
		`SELECT last_seq FROM voucher_counters WHERE trans_type = $1 FOR UPDATE;`,
		string(transType)).Scan(&lastSeq)
	if err != nil {
		return "", fmt.Errorf("failed to lock voucher counter for %s: %w", transType, err)
	}

	var newestVoucher string
	err = tx.QueryRow(ctx,
		`SELECT voucher_no FROM transactions WHERE trans_type = $1 ORDER BY transaction_id DESC LIMIT 1;`,
		string(transType)).Scan(&newestVoucher)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to read newest voucher for %s: %w", transType, err)
	}

	next := domain.NextVoucherSeq(lastSeq, newestVoucher)
	_, err = tx.Exec(ctx,
		`UPDATE voucher_counters SET last_seq = $2 WHERE trans_type = $1;`,
		string(transType), next)
	if err != nil {
		return "", fmt.Errorf("failed to advance voucher counter for %s: %w", transType, err)
	}
	return domain.FormatVoucherNo(domain.VoucherPrefix(transType), next), nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, m models.Transaction) (models.Transaction, error) {
	query := `
		INSERT INTO transactions (trans_type, amount, description, date, bank_name,
			cheque_no, voucher_no, party_name, job_id, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + transactionColumns + `;
	`
	return scanTransaction(tx.QueryRow(ctx, query,
		m.TransType, m.Amount, m.Description, m.Date, m.BankName,
		m.ChequeNo, m.VoucherNo, m.PartyName, m.JobID, m.ClientID))
}

func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	voucherNo, err := nextVoucherNo(ctx, tx, txn.TransType)
	if err != nil {
		return nil, err
	}
	txn.VoucherNo = voucherNo

	saved, err := insertTransaction(ctx, tx, mapping.ToModelTransaction(txn))
	if err != nil {
		// A duplicate voucher here means the counter serialization is broken;
		// surface it loudly instead of retrying.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("voucher %s already allocated: %w", voucherNo, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(saved)
	return &d, nil
}

// UpsertInvoiceEntry creates or refreshes the single INVOICE entry for
// txn.JobID. The existing entry keeps its voucher number and date; only the
// fresh-insert path consumes a new voucher. The partial unique index on
// (job_id) WHERE trans_type = 'INVOICE' backstops concurrent invoicing.
func (r *PgxTransactionRepository) UpsertInvoiceEntry(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if txn.JobID == nil {
		return nil, apperrors.NewValidationError("invoice entry requires a job reference")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE job_id = $1 AND trans_type = $2
		FOR UPDATE;
	`
	existing, err := scanTransaction(tx.QueryRow(ctx, query, *txn.JobID, string(domain.InvoiceDebit)))
	switch {
	case err == nil:
		updateQuery := `
			UPDATE transactions
			SET amount = $2, description = $3, party_name = $4, client_id = $5
			WHERE transaction_id = $1
			RETURNING ` + transactionColumns + `;
		`
		updated, err := scanTransaction(tx.QueryRow(ctx, updateQuery,
			existing.TransactionID, txn.Amount, txn.Description, txn.PartyName, txn.ClientID))
		if err != nil {
			return nil, fmt.Errorf("failed to refresh invoice entry for job %d: %w", *txn.JobID, err)
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		d := mapping.ToDomainTransaction(updated)
		return &d, nil

	case errors.Is(err, pgx.ErrNoRows):
		voucherNo, err := nextVoucherNo(ctx, tx, domain.InvoiceDebit)
		if err != nil {
			return nil, err
		}
		txn.VoucherNo = voucherNo

		saved, err := insertTransaction(ctx, tx, mapping.ToModelTransaction(txn))
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("concurrent invoice entry for job %d: %w", *txn.JobID, apperrors.ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to insert invoice entry for job %d: %w", *txn.JobID, err)
		}
		if err := r.Commit(ctx, tx); err != nil {
			return nil, err
		}
		d := mapping.ToDomainTransaction(saved)
		return &d, nil

	default:
		return nil, fmt.Errorf("failed to find invoice entry for job %d: %w", *txn.JobID, err)
	}
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindInvoiceEntryByJobID(ctx context.Context, jobID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE job_id = $1 AND trans_type = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, jobID, string(domain.InvoiceDebit)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice entry for job %d: %w", jobID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, transaction_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListTransactionsForClient(ctx context.Context, clientID int64, from, to *time.Time) ([]domain.Transaction, error) {
	// The OR on the joined job's client catches entries attributed only
	// through job-level linkage.
	query := `
		SELECT t.transaction_id, t.trans_type, t.amount, t.description, t.date,
			t.bank_name, t.cheque_no, t.voucher_no, t.party_name, t.job_id, t.client_id
		FROM transactions t
		LEFT JOIN jobs j ON j.job_id = t.job_id
		WHERE (t.client_id = $1 OR j.client_id = $1)
		  AND ($2::date IS NULL OR t.date >= $2)
		  AND ($3::date IS NULL OR t.date <= $3)
		ORDER BY t.date, t.transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for client %d: %w", clientID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) AccountTotals(ctx context.Context) (received, paid decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN trans_type IN ('CR', 'BR') THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN trans_type IN ('CP', 'BP') THEN amount ELSE 0 END), 0)
		FROM transactions;
	`
	if err = r.Pool.QueryRow(ctx, query).Scan(&received, &paid); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to aggregate account totals: %w", err)
	}
	return received, paid, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
