package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain"
	"github.com/samuelvi/spreadsheet-translator-exporter-php/internal/domain/entities"
)

type fakeRows struct {
	rows []Row
	pos  int
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	return []pgconn.FieldDescription{{Name: "key"}, {Name: "value"}}
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	*dest[0].(*string) = row.Key
	*dest[1].(**string) = row.Value
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	row := r.rows[r.pos-1]
	return []any{row.Key, row.Value}, nil
}

type fakeQuerier struct {
	rows []Row
	err  error
	args []any
}

func (q *fakeQuerier) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	q.args = args
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{rows: q.rows}, nil
}

func TestTranslationRepository_Load(t *testing.T) {
	q := &fakeQuerier{rows: []Row{
		{Key: "title", Value: ptr("Title")},
		{Key: "form.submit", Value: ptr("Send")},
	}}

	tree, err := NewTranslationRepository(q).Load(context.Background(), "messages", "en")
	require.NoError(t, err)
	assert.Equal(t, []any{"messages", "en"}, q.args)

	form, ok := tree.Get(entities.StringKey("form"))
	require.True(t, ok)
	v, _ := form.(*entities.Map).Get(entities.StringKey("submit"))
	assert.Equal(t, entities.String("Send"), v)
}

func TestTranslationRepository_Errors(t *testing.T) {
	_, err := NewTranslationRepository(&fakeQuerier{}).Load(context.Background(), "messages", "de")
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)

	boom := errors.New("connection refused")
	_, err = NewTranslationRepository(&fakeQuerier{err: boom}).Load(context.Background(), "messages", "de")
	assert.ErrorIs(t, err, boom)

	conflict := &fakeQuerier{rows: []Row{{Key: "a", Value: ptr("x")}, {Key: "a.b", Value: ptr("y")}}}
	_, err = NewTranslationRepository(conflict).Load(context.Background(), "messages", "de")
	assert.ErrorIs(t, err, domain.ErrKeyConflict)
}
