package sqlite

import (
	"context"
	"database/sql"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/store"
)

const colorColumns = `id, created_at, updated_at, name, hex, rgb, hsl, cmyk, company, code, created_by`

func scanColor(row scanner) (*domain.Color, error) {
	var (
		c         domain.Color
		createdAt string
		updatedAt string
		name      sql.NullString
		company   sql.NullString
		code      sql.NullString
		createdBy sql.NullString
	)
	err := row.Scan(&c.ID, &createdAt, &updatedAt, &name, &c.Hex, &c.RGB, &c.HSL, &c.CMYK, &company, &code, &createdBy)
	if err != nil {
		return nil, err
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	c.Name = name.String
	c.Company = company.String
	c.Code = code.String
	c.CreatedBy = createdBy.String
	return &c, nil
}

// CreateColor inserts a swatch. Empty name, company and code are stored as NULL.
func (s *Store) CreateColor(ctx context.Context, c *domain.Color) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO colors (`+colorColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		nullString(c.Name), c.Hex, c.RGB, c.HSL, c.CMYK,
		nullString(c.Company), nullString(c.Code), nullString(c.CreatedBy),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// GetColor loads one swatch.
func (s *Store) GetColor(ctx context.Context, id string) (*domain.Color, error) {
	c, err := scanColor(s.db.QueryRowContext(ctx, `SELECT `+colorColumns+` FROM colors WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// GetColorsByIDs returns the swatches that exist among ids, in the order
// the ids were given.
func (s *Store) GetColorsByIDs(ctx context.Context, ids []string) ([]*domain.Color, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	in, args := inClause(ids)
	found, err := s.queryColors(ctx, `SELECT `+colorColumns+` FROM colors WHERE id IN (`+in+`)`, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Color, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	out := make([]*domain.Color, 0, len(found))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
			delete(byID, id)
		}
	}
	return out, nil
}

// ListColors returns every swatch, newest first.
func (s *Store) ListColors(ctx context.Context) ([]*domain.Color, error) {
	return s.queryColors(ctx, `SELECT `+colorColumns+` FROM colors ORDER BY created_at DESC, id`)
}

// UpdateColor rewrites a swatch's values.
func (s *Store) UpdateColor(ctx context.Context, c *domain.Color) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE colors SET updated_at = ?, name = ?, hex = ?, rgb = ?, hsl = ?, cmyk = ?, company = ?, code = ?
		WHERE id = ?`,
		formatTime(c.UpdatedAt), nullString(c.Name), c.Hex, c.RGB, c.HSL, c.CMYK,
		nullString(c.Company), nullString(c.Code), c.ID,
	)
	return expectOne(res, err)
}

// DeleteColor removes a swatch and its palette memberships.
func (s *Store) DeleteColor(ctx context.Context, id string) error {
	return expectOne(s.db.ExecContext(ctx, `DELETE FROM colors WHERE id = ?`, id))
}

// ListPaletteIDsForColor returns the palettes that include a swatch.
func (s *Store) ListPaletteIDsForColor(ctx context.Context, colorID string) ([]string, error) {
	return s.queryIDs(ctx, `SELECT palette_id FROM palette_colors WHERE color_id = ? ORDER BY palette_id`, colorID)
}

func (s *Store) queryColors(ctx context.Context, query string, args ...any) ([]*domain.Color, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Color
	for rows.Next() {
		c, err := scanColor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
