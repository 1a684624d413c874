package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
)

// Table describes where an entity lives. Columns lists the domain columns;
// id, created_at and updated_at are implied.
type Table struct {
	Name    string
	Columns []string
}

func (t Table) selectColumns() []string {
	cols := make([]string, 0, len(t.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, t.Columns...)
	return append(cols, "created_at", "updated_at")
}

// DocumentRepository persists one entity type keyed by its store-assigned id.
// Absent records are reported as nil with a nil error.
type DocumentRepository[T any, PT models.Record[T]] struct {
	db      *sqlx.DB
	table   Table
	builder squirrel.StatementBuilderType
}

// NewDocumentRepository constructs a repository for table on db, picking the
// placeholder style of the underlying driver.
func NewDocumentRepository[T any, PT models.Record[T]](db *sqlx.DB, table Table) *DocumentRepository[T, PT] {
	format := squirrel.PlaceholderFormat(squirrel.Question)
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		format = squirrel.Dollar
	}
	return &DocumentRepository[T, PT]{
		db:      db,
		table:   table,
		builder: squirrel.StatementBuilder.PlaceholderFormat(format),
	}
}

// Table returns the table description backing the repository.
func (r *DocumentRepository[T, PT]) Table() Table {
	return r.table
}

// Create assigns a fresh id and timestamps to record and inserts it.
func (r *DocumentRepository[T, PT]) Create(ctx context.Context, record PT) error {
	meta := record.Meta()
	meta.ID = uuid.NewString()
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	values, err := r.values(record)
	if err != nil {
		return err
	}
	args := make([]interface{}, 0, len(values)+3)
	args = append(args, meta.ID)
	args = append(args, values...)
	args = append(args, meta.CreatedAt, meta.UpdatedAt)

	query, qargs, err := r.builder.Insert(r.table.Name).
		Columns(r.table.selectColumns()...).
		Values(args...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", r.table.Name, err)
	}
	if _, err := r.db.ExecContext(ctx, query, qargs...); err != nil {
		return storeError("create", r.table.Name, err)
	}
	return nil
}

// FindAll returns every record in insertion order.
func (r *DocumentRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	query, args, err := r.builder.Select(r.table.selectColumns()...).
		From(r.table.Name).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", r.table.Name, err)
	}

	items := make([]T, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, storeError("list", r.table.Name, err)
	}
	return items, nil
}

// FindByID returns the record with id, or nil when there is none.
func (r *DocumentRepository[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := r.builder.Select(r.table.selectColumns()...).
		From(r.table.Name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", r.table.Name, err)
	}

	var item T
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("find", r.table.Name, err)
	}
	return &item, nil
}

// UpdateByID replaces every domain field of the record with id and returns
// the stored state, or nil when there is no such record.
func (r *DocumentRepository[T, PT]) UpdateByID(ctx context.Context, id string, record PT) (PT, error) {
	if !validID(id) {
		return nil, nil
	}
	values, err := r.values(record)
	if err != nil {
		return nil, err
	}

	set := make(map[string]interface{}, len(values)+1)
	for i, col := range r.table.Columns {
		set[col] = values[i]
	}
	set["updated_at"] = time.Now().UTC()

	query, args, err := r.builder.Update(r.table.Name).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(r.table.selectColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", r.table.Name, err)
	}

	var item T
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("update", r.table.Name, err)
	}
	return &item, nil
}

// DeleteByID removes the record with id and returns it, or nil when absent.
func (r *DocumentRepository[T, PT]) DeleteByID(ctx context.Context, id string) (PT, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := r.builder.Delete(r.table.Name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(r.table.selectColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete %s: %w", r.table.Name, err)
	}

	var item T
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("delete", r.table.Name, err)
	}
	return &item, nil
}

// values reads the domain columns of record in table order via the db tags.
func (r *DocumentRepository[T, PT]) values(record PT) ([]interface{}, error) {
	fields := r.db.Mapper.FieldMap(reflect.ValueOf(record))
	out := make([]interface{}, len(r.table.Columns))
	for i, col := range r.table.Columns {
		field, ok := fields[col]
		if !ok {
			return nil, fmt.Errorf("%s: no field mapped to column %q", r.table.Name, col)
		}
		out[i] = field.Interface()
	}
	return out, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
