package storage

import (
	"database/sql"

	"tablebook/discovery-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = `id, name, COALESCE(image_url, ''), cuisine, price_range, popular, rating,
		total_reviews, latitude, longitude, COALESCE(address, ''), COALESCE(operating_hours, ''), facilities`

func scanRestaurant(scanner interface{ Scan(dest ...any) error }) (domain.Restaurant, error) {
	var rest domain.Restaurant
	var facilities pq.StringArray
	err := scanner.Scan(&rest.ID, &rest.Name, &rest.ImageURL, &rest.Cuisine, &rest.PriceRange, &rest.Popular,
		&rest.Rating, &rest.TotalReviews, &rest.Coordinates.Latitude, &rest.Coordinates.Longitude,
		&rest.Address, &rest.OperatingHours, &facilities)
	rest.Facilities = []string(facilities)
	return rest, err
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	index := map[string]int{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		index[rest.ID] = len(restaurants)
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tables, err := r.listTables(nil)
	if err != nil {
		return nil, err
	}
	for restaurantID, ts := range tables {
		if i, ok := index[restaurantID]; ok {
			restaurants[i].Tables = ts
		}
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRow(`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	tables, err := r.listTables(&id)
	if err != nil {
		return nil, err
	}
	rest.Tables = tables[id]

	if rest.Menu, err = r.listMenu(id); err != nil {
		return nil, err
	}
	if rest.Reviews, err = r.listReviews(id); err != nil {
		return nil, err
	}
	return &rest, nil
}

// listTables groups tables by restaurant id. A nil restaurantID loads every table.
func (r *PostgresRepository) listTables(restaurantID *string) (map[string][]domain.Table, error) {
	query := `
		SELECT restaurant_id, id, seating_type, capacity, available, COALESCE(booked_until, ''), price
		FROM restaurant_tables`
	var args []any
	if restaurantID != nil {
		query += ` WHERE restaurant_id = $1`
		args = append(args, *restaurantID)
	}
	query += ` ORDER BY restaurant_id, id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := map[string][]domain.Table{}
	for rows.Next() {
		var owner string
		var t domain.Table
		if err := rows.Scan(&owner, &t.ID, &t.Type, &t.Capacity, &t.Available, &t.BookedUntil, &t.Price); err != nil {
			continue
		}
		tables[owner] = append(tables[owner], t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) listMenu(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT name, price, category
		FROM menu_items
		WHERE restaurant_id = $1 AND available = true
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Category); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) listReviews(restaurantID string) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT rating, COALESCE(comment, ''), author
		FROM restaurant_reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.Rating, &rev.Comment, &rev.Author); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
