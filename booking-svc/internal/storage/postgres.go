package storage

import (
	"database/sql"
	"fmt"

	"tablebook/booking-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const bookingColumns = `id, customer_id, COALESCE(customer_name, ''), COALESCE(customer_phone, ''), restaurant_id,
		table_id, guests, booking_date, booking_time, single_chairs, double_chairs, high_chairs,
		COALESCE(manual_chair_request, ''), COALESCE(special_requests, ''), status, payment_status,
		COALESCE(payment_method, ''), total_amount, created_at`

func scanBooking(scanner interface{ Scan(dest ...any) error }) (domain.Booking, error) {
	var b domain.Booking
	err := scanner.Scan(&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.RestaurantID,
		&b.TableID, &b.Guests, &b.Date, &b.Time, &b.Chairs.Single, &b.Chairs.Double, &b.Chairs.High,
		&b.ManualChairRequest, &b.SpecialRequests, &b.Status, &b.PaymentStatus,
		&b.PaymentMethod, &b.TotalAmount, &b.CreatedAt)
	return b, err
}

func (r *PostgresRepository) GetTable(restaurantID, tableID string) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, seating_type, capacity, price
		FROM restaurant_tables
		WHERE restaurant_id = $1 AND id = $2`, restaurantID, tableID).
		Scan(&t.ID, &t.RestaurantID, &t.Type, &t.Capacity, &t.Price)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) CreateBooking(b *domain.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO bookings (id, customer_id, customer_name, customer_phone, restaurant_id, table_id, guests,
			booking_date, booking_time, single_chairs, double_chairs, high_chairs, manual_chair_request,
			special_requests, status, payment_status, payment_method, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`, b.ID, b.CustomerID, b.CustomerName, b.CustomerPhone, b.RestaurantID, b.TableID, b.Guests,
		b.Date, b.Time, b.Chairs.Single, b.Chairs.Double, b.Chairs.High, b.ManualChairRequest,
		b.SpecialRequests, b.Status, b.PaymentStatus, b.PaymentMethod, b.TotalAmount, b.CreatedAt); err != nil {
		return err
	}

	for _, item := range b.PreOrders {
		if _, err := tx.Exec(`
			INSERT INTO booking_pre_orders (booking_id, item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, b.ID, item.ItemID, item.Name, item.Price, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetBooking(id string) (*domain.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT item_id, name, price, quantity
		FROM booking_pre_orders
		WHERE booking_id = $1
		ORDER BY name`, id)
	if err != nil {
		return &b, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.PreOrder
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			continue
		}
		b.PreOrders = append(b.PreOrders, item)
	}
	return &b, rows.Err()
}

func (r *PostgresRepository) listBookings(query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PostgresRepository) ListByCustomer(customerID string) ([]domain.Booking, error) {
	return r.listBookings(`SELECT `+bookingColumns+`
		FROM bookings
		WHERE customer_id = $1
		ORDER BY booking_date DESC, booking_time`, customerID)
}

func (r *PostgresRepository) ListByRestaurant(restaurantID, date string) ([]domain.Booking, error) {
	if date == "" {
		return r.listBookings(`SELECT `+bookingColumns+`
			FROM bookings
			WHERE restaurant_id = $1
			ORDER BY booking_date DESC, booking_time`, restaurantID)
	}
	return r.listBookings(`SELECT `+bookingColumns+`
		FROM bookings
		WHERE restaurant_id = $1 AND booking_date = $2
		ORDER BY booking_time`, restaurantID, date)
}

func (r *PostgresRepository) UpdateStatus(id string, from, to domain.BookingStatus) error {
	result, err := r.DB.Exec(`UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) SaveQRCode(id string, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE bookings SET qr_code = $1 WHERE id = $2`, qr, id)
	return err
}

func (r *PostgresRepository) GetQRCode(id string) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM bookings WHERE id = $1", id).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		"ALTER TABLE IF EXISTS bookings ADD COLUMN IF NOT EXISTS qr_code BYTEA",
		"ALTER TABLE IF EXISTS bookings ADD COLUMN IF NOT EXISTS manual_chair_request TEXT",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
