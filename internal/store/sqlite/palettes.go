package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/colorpal/colorpal-server/internal/color"
	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/store"
)

const paletteColumns = `id, created_at, updated_at, name, scheme_type, access, user_id`

func scanPalette(row scanner) (*domain.Palette, error) {
	var (
		p         domain.Palette
		createdAt string
		updatedAt string
		scheme    string
		access    string
	)
	err := row.Scan(&p.ID, &createdAt, &updatedAt, &p.Name, &scheme, &access, &p.UserID)
	if err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	p.SchemeType = color.Scheme(scheme)
	p.Access = domain.Access(access)
	return &p, nil
}

// CreatePalette inserts a palette and its ordered colour list atomically.
func (s *Store) CreatePalette(ctx context.Context, p *domain.Palette) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO palettes (`+paletteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
		p.Name, string(p.SchemeType), string(p.Access), p.UserID,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	if err := writePaletteColors(ctx, tx, p.ID, p.ColorIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// GetPalette loads a palette with its colour ids and colours in order.
func (s *Store) GetPalette(ctx context.Context, id string) (*domain.Palette, error) {
	p, err := scanPalette(s.db.QueryRowContext(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.loadPaletteColors(ctx, []*domain.Palette{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPalettesByIDs returns the palettes that exist among ids, most recently
// updated first.
func (s *Store) GetPalettesByIDs(ctx context.Context, ids []string) ([]*domain.Palette, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	in, args := inClause(ids)
	return s.queryPalettes(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE id IN (`+in+`) ORDER BY updated_at DESC, id`, args...)
}

// ListPalettesByUser returns a user's palettes, most recently updated first.
func (s *Store) ListPalettesByUser(ctx context.Context, userID string) ([]*domain.Palette, error) {
	return s.queryPalettes(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE user_id = ? ORDER BY updated_at DESC, id`, userID)
}

// ListPalettes returns every palette. Used to rebuild the search index.
func (s *Store) ListPalettes(ctx context.Context) ([]*domain.Palette, error) {
	return s.queryPalettes(ctx, `SELECT `+paletteColumns+` FROM palettes ORDER BY created_at`)
}

// UpdatePalette rewrites name, scheme, access and the colour list.
func (s *Store) UpdatePalette(ctx context.Context, p *domain.Palette) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE palettes SET updated_at = ?, name = ?, scheme_type = ?, access = ? WHERE id = ?`,
		formatTime(p.UpdatedAt), p.Name, string(p.SchemeType), string(p.Access), p.ID,
	)
	if err := expectOne(res, err); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM palette_colors WHERE palette_id = ?`, p.ID); err != nil {
		return err
	}
	if err := writePaletteColors(ctx, tx, p.ID, p.ColorIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// DeletePalette removes a palette. Its colours are kept.
func (s *Store) DeletePalette(ctx context.Context, id string) error {
	return expectOne(s.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id))
}

func writePaletteColors(ctx context.Context, tx *sql.Tx, paletteID string, colorIDs []string) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO palette_colors (palette_id, color_id, position) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, colorID := range colorIDs {
		if _, err := stmt.ExecContext(ctx, paletteID, colorID, i); err != nil {
			if isUniqueViolation(err) {
				return store.ErrAlreadyExists
			}
			return fmt.Errorf("add color %s: %w", colorID, err)
		}
	}
	return nil
}

func (s *Store) queryPalettes(ctx context.Context, query string, args ...any) ([]*domain.Palette, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var out []*domain.Palette
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if err := s.loadPaletteColors(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// loadPaletteColors fills ColorIDs and Colors for each palette with one query.
func (s *Store) loadPaletteColors(ctx context.Context, palettes []*domain.Palette) error {
	if len(palettes) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Palette, len(palettes))
	ids := make([]string, len(palettes))
	for i, p := range palettes {
		p.ColorIDs = []string{}
		p.Colors = []*domain.Color{}
		byID[p.ID] = p
		ids[i] = p.ID
	}

	in, args := inClause(ids)
	rows, err := s.db.QueryContext(ctx, `
		SELECT pc.palette_id, c.id, c.created_at, c.updated_at, c.name, c.hex, c.rgb, c.hsl, c.cmyk, c.company, c.code, c.created_by
		FROM palette_colors pc JOIN colors c ON c.id = pc.color_id
		WHERE pc.palette_id IN (`+in+`)
		ORDER BY pc.palette_id, pc.position`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var paletteID string
		c, err := scanColor(prefixed{rows, &paletteID})
		if err != nil {
			return err
		}
		p := byID[paletteID]
		p.ColorIDs = append(p.ColorIDs, c.ID)
		p.Colors = append(p.Colors, c)
	}
	return rows.Err()
}

// prefixed reads the first column into head and the rest into dest.
type prefixed struct {
	rows *sql.Rows
	head *string
}

func (p prefixed) Scan(dest ...any) error {
	return p.rows.Scan(append([]any{p.head}, dest...)...)
}
