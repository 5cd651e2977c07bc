package postgres

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

func paged(b sq.SelectBuilder, page model.Page) sq.SelectBuilder {
	if page.Limit > 0 {
		b = b.Limit(uint64(page.Limit))
	}
	if page.Offset > 0 {
		b = b.Offset(uint64(page.Offset))
	}
	return b
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
