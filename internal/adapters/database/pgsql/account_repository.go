package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	portsrepo "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
)

// PgxAccountRepository implements the account repository facade using pgxpool.
type PgxAccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new PgxAccountRepository.
func NewAccountRepository(db *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, user_id, name, currency_code, initial_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		account.AccountID, account.UserID, account.Name, account.CurrencyCode,
		account.InitialBalance, account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting account: %w", err)
	}
	return nil
}

// FindAccountByID retrieves an account by its id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, name, currency_code, initial_balance, created_at
		FROM accounts
		WHERE account_id = $1
	`
	account := &domain.Account{}
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&account.AccountID, &account.UserID, &account.Name, &account.CurrencyCode,
		&account.InitialBalance, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding account: %w", err)
	}
	return account, nil
}

// ListAccounts retrieves all accounts owned by a user, newest first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, user_id, name, currency_code, initial_balance, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.AccountID, &account.UserID, &account.Name, &account.CurrencyCode,
			&account.InitialBalance, &account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}

// UpdateInitialBalance rewrites the stored initial balance for an account.
func (r *PgxAccountRepository) UpdateInitialBalance(ctx context.Context, accountID string, initialBalance decimal.Decimal) error {
	query := `
		UPDATE accounts SET initial_balance = $2 WHERE account_id = $1
	`
	tag, err := r.db.Exec(ctx, query, accountID, initialBalance)
	if err != nil {
		return fmt.Errorf("error updating account initial balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
