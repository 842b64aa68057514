package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/ports/output"
)

const loadTranslations = `
SELECT key, value
FROM translations
WHERE domain = $1 AND locale = $2
ORDER BY position, id`

var _ output.TranslationSource = (*TranslationRepository)(nil)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type TranslationRepository struct {
	q Querier
}

func NewTranslationRepository(q Querier) *TranslationRepository {
	return &TranslationRepository{q: q}
}

func (r *TranslationRepository) Load(ctx context.Context, domainName, locale string) (*entities.Map, error) {
	rows, err := r.q.Query(ctx, loadTranslations, domainName, locale)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[Row])
	if err != nil {
		return nil, fmt.Errorf("scan translations: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s.%s", domain.ErrSourceNotFound, domainName, locale)
	}
	return BuildTree(items)
}
