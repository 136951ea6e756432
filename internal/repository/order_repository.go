package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

// ErrDuplicateID surfaces a primary-key collision on insert so the caller
// can regenerate the order id and retry.
var ErrDuplicateID = errors.New("duplicate order id")

const orderColumns = `id, items, total_amount, status, customer_name, customer_phone, estimated_time, created_at, updated_at`

// OrderRepository is the single authoritative store for orders. Columns are
// snake_case at the storage boundary; the in-memory model stays camelCase.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Insert(ctx context.Context, order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO orders (id, items, total_amount, status, customer_name, customer_phone, estimated_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, items, order.TotalAmount, string(order.Status),
		order.CustomerName, order.CustomerPhone, order.EstimatedTime,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", ErrDuplicateID, order.ID)
		}
		return fmt.Errorf("%w: insert order: %v", domain.ErrTransport, err)
	}
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

// List returns every order unmasked, newest first. Masking is the caller's
// responsibility; this path sits behind the authorization gate.
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", domain.ErrTransport, err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", domain.ErrTransport, err)
	}
	return orders, nil
}

// UpdateStatus performs the conditional write that serializes concurrent
// transitions: the row only changes when its stored status still equals the
// status the legality check ran against. Status and updated_at move in one
// statement, so no reader sees one without the other.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, at time.Time) (domain.Order, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE orders SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING `+orderColumns,
		id, string(from), string(to), at,
	)
	order, err := scanOrder(row)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, err
	}

	// Zero rows: either the order is gone or a concurrent writer moved it
	// off `from` first. Reread to tell the two apart.
	current, getErr := r.Get(ctx, id)
	if getErr != nil {
		return domain.Order{}, getErr
	}
	return domain.Order{}, fmt.Errorf("%w: status is now %s", domain.ErrConflict, current.Status)
}

// scanOrder is the explicit row-to-model mapping. It fails closed: a row
// whose items payload or status does not deserialize cleanly is an error,
// never a silently coerced order.
func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order  domain.Order
		items  []byte
		status string
	)
	err := row.Scan(
		&order.ID, &items, &order.TotalAmount, &status,
		&order.CustomerName, &order.CustomerPhone, &order.EstimatedTime,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("%w: scan order: %v", domain.ErrTransport, err)
	}

	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s: stored status %q: %w", order.ID, status, err)
	}
	order.Status = parsed

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return domain.Order{}, fmt.Errorf("order %s: malformed items payload: %w", order.ID, err)
	}
	return order, nil
}
