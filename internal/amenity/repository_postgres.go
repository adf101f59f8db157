package amenity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recordColumns = `
	place_id,
	created_at,
	refill_yes, refill_no, refill_idk,
	bread_yes, bread_no, bread_idk,
	pay_yes, pay_no, pay_idk,
	attendant_yes, attendant_no, attendant_idk,
	score
`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	if err := row.Scan(
		&rec.PlaceID,
		&rec.CreatedAt,
		&rec.Refill.Yes, &rec.Refill.No, &rec.Refill.Idk,
		&rec.Bread.Yes, &rec.Bread.No, &rec.Bread.Idk,
		&rec.Pay.Yes, &rec.Pay.No, &rec.Pay.Idk,
		&rec.Attendant.Yes, &rec.Attendant.No, &rec.Attendant.Idk,
		&rec.Score,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

// --------------------------------------------------
// Fetch one record (absence is NOT an error)
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, placeID string) (*Record, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM restaurants
		WHERE place_id = $1
	`, placeID)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// --------------------------------------------------
// Fetch a batch of records for search results
// --------------------------------------------------
func (r *PostgresRepository) GetMany(ctx context.Context, placeIDs []string) ([]*Record, error) {
	if len(placeIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM restaurants
		WHERE place_id = ANY($1)
	`, placeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// --------------------------------------------------
// Create or replace the record for a place
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, rec *Record) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurants (
			place_id,
			refill_yes, refill_no, refill_idk,
			bread_yes, bread_no, bread_idk,
			pay_yes, pay_no, pay_idk,
			attendant_yes, attendant_no, attendant_idk,
			score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (place_id)
		DO UPDATE SET
			refill_yes = EXCLUDED.refill_yes,
			refill_no = EXCLUDED.refill_no,
			refill_idk = EXCLUDED.refill_idk,
			bread_yes = EXCLUDED.bread_yes,
			bread_no = EXCLUDED.bread_no,
			bread_idk = EXCLUDED.bread_idk,
			pay_yes = EXCLUDED.pay_yes,
			pay_no = EXCLUDED.pay_no,
			pay_idk = EXCLUDED.pay_idk,
			attendant_yes = EXCLUDED.attendant_yes,
			attendant_no = EXCLUDED.attendant_no,
			attendant_idk = EXCLUDED.attendant_idk,
			score = EXCLUDED.score
	`,
		rec.PlaceID,
		rec.Refill.Yes, rec.Refill.No, rec.Refill.Idk,
		rec.Bread.Yes, rec.Bread.No, rec.Bread.Idk,
		rec.Pay.Yes, rec.Pay.No, rec.Pay.Idk,
		rec.Attendant.Yes, rec.Attendant.No, rec.Attendant.Idk,
		rec.Score,
	)

	return err
}
