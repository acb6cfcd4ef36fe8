package registrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/localaddons/addons/internal/common"
	"github.com/localaddons/addons/internal/dbx"
)

// mysqlDuplicateEntry is the MySQL error number for a unique-key violation.
const mysqlDuplicateEntry = 1062

type MySQLRepository struct {
	db dbx.DBTX
}

func NewMySQLRepository(db dbx.DBTX) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, reg *Registration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO registrations (name, email, mobile, course, year, workshop_slug)
		VALUES (?, ?, ?, ?, ?, ?)
	`, reg.Name, reg.Email, reg.Mobile, reg.Course, reg.Year, reg.WorkshopSlug)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return 0, common.ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("failed to insert registration: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read registration id: %w", err)
	}
	return id, nil
}

func (r *MySQLRepository) ExistsForWorkshop(ctx context.Context, email, workshopSlug string) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM registrations WHERE email = ? AND workshop_slug = ?`,
		email, workshopSlug,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return true, nil
}

func (r *MySQLRepository) List(ctx context.Context) ([]Registration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, mobile, course, year, workshop_slug, created_at
		FROM registrations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var result []Registration
	for rows.Next() {
		var reg Registration
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Mobile,
			&reg.Course, &reg.Year, &reg.WorkshopSlug, &reg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		result = append(result, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate registration rows: %w", err)
	}
	return result, nil
}
