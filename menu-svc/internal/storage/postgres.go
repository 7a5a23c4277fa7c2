package storage

import (
	"database/sql"

	"tablebook/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const itemColumns = `id, restaurant_id, name, COALESCE(description, ''), price, category, COALESCE(image_url, ''),
		available, popular, rating, preparation_time, created_at`

func scanItem(scanner interface{ Scan(dest ...any) error }) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := scanner.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.ImageURL, &item.Available, &item.Popular, &item.Rating, &item.PreparationTime, &item.CreatedAt)
	return item, err
}

func (r *PostgresRepository) ListItems(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(restaurantID string, itemID int) (*domain.MenuItem, error) {
	item, err := scanItem(r.DB.QueryRow(`SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, price, category, image_url, available,
			popular, rating, preparation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available,
		item.Popular, item.Rating, item.PreparationTime).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateItem(item *domain.MenuItem) error {
	_, err := r.DB.Exec(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, image_url=$5, available=$6, preparation_time=$7
		WHERE id=$8 AND restaurant_id=$9`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available, item.PreparationTime,
		item.ID, item.RestaurantID)
	return err
}

func (r *PostgresRepository) DeleteItem(restaurantID string, itemID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetAvailability(restaurantID string, itemID int, available bool) error {
	_, err := r.DB.Exec("UPDATE menu_items SET available = $1 WHERE id = $2 AND restaurant_id = $3",
		available, itemID, restaurantID)
	return err
}
