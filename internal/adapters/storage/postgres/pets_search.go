package postgres

import (
	"context"
	"fmt"
	"strings"

	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchWhere traduce el filtro a un WHERE con placeholders posicionales.
// Los filtros ausentes no agregan condición.
func searchWhere(f pets.SearchFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Name != "" {
		conds = append(conds, "p.name ILIKE "+next(containsPattern(f.Name)))
	}
	if f.Type != "" {
		conds = append(conds, "p.type = "+next(string(f.Type)))
	}
	if f.City != "" {
		conds = append(conds, "a.city ILIKE "+next(containsPattern(f.City)))
	}
	if f.HasDateRange() {
		from := next(*f.DisappearedFrom)
		to := next(*f.DisappearedTo)
		conds = append(conds, fmt.Sprintf("p.disappeared_at BETWEEN %s AND %s", from, to))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "\n\tWHERE " + strings.Join(conds, " AND "), args
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *PetsRepo) Search(ctx context.Context, q pets.SearchQuery) ([]pets.Pet, int, error) {
	where, args := searchWhere(q.Filter)
	from := fmt.Sprintf(petFrom, "pets")

	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Query("pet", err)
	}
	if total == 0 {
		return []pets.Pet{}, 0, nil
	}

	n := len(args)
	pageArgs := append(args, q.Page.Size, q.Page.Offset())
	rows, err := r.q.QueryContext(ctx, petSelect+from+where+fmt.Sprintf(`
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $%d OFFSET $%d`, n+1, n+2), pageArgs...)
	if err != nil {
		return nil, 0, apperr.Query("pet", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0, q.Page.Size)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, apperr.Query("pet", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Query("pet", err)
	}
	return out, total, nil
}
