package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bersihin/laundry-pos/internal/domain/order"
)

var _ order.Store = (*Store)(nil)

// Store persists the order collection in the orders table. The position
// column preserves the canonical (creation) order of the in-memory
// collection across restarts.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const loadOrdersSQL = `SELECT id, customer_name, customer_phone, items, weight,
	service_type, item_details, fragrance, notes,
	total_price, paid_amount, payment_status, status, production_status,
	created_at, estimated_date, pickup_time
FROM orders ORDER BY position`

// LoadOrders reads the full snapshot in canonical order. An empty table
// yields (nil, nil) so the repository falls back to its seed data.
func (s *Store) LoadOrders(ctx context.Context) ([]order.Order, error) {
	rows, err := s.pool.Query(ctx, loadOrdersSQL)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerPhone, &o.Items, &o.Weight,
			&o.ServiceType, &o.ItemDetails, &o.Fragrance, &o.Notes,
			&o.TotalPrice, &o.PaidAmount, &o.PaymentStatus, &o.Status, &o.ProductionStatus,
			&o.CreatedAt, &o.EstimatedDate, &o.PickupTime,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan order")
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read orders")
	}

	return orders, nil
}

const insertOrderSQL = `INSERT INTO orders (id, position, customer_name, customer_phone,
	items, weight, service_type, item_details, fragrance, notes,
	total_price, paid_amount, payment_status, status, production_status,
	created_at, estimated_date, pickup_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

// SaveOrders replaces the stored snapshot with the given collection in one
// transaction, so a failed save never leaves a half-written snapshot behind.
func (s *Store) SaveOrders(ctx context.Context, orders []order.Order) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM orders`); err != nil {
		return errors.Wrap(err, "clear orders")
	}

	for i, o := range orders {
		_, err := tx.Exec(ctx, insertOrderSQL,
			o.ID, i, o.CustomerName, o.CustomerPhone,
			o.Items, o.Weight, o.ServiceType, o.ItemDetails, o.Fragrance, o.Notes,
			o.TotalPrice, o.PaidAmount, string(o.PaymentStatus), string(o.Status), string(o.ProductionStatus),
			o.CreatedAt, o.EstimatedDate, o.PickupTime,
		)
		if err != nil {
			return errors.Wrapf(err, "insert order %q", o.ID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}
