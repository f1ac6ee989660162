package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/fwojciec/docboost"
)

// Compile-time interface verification.
var _ docboost.SchemaInspector = (*SchemaInspector)(nil)

// SchemaInspector implements docboost.SchemaInspector for SQLite databases.
// Connections are opened read-only for the duration of a single call.
type SchemaInspector struct {
	connections map[string]string
}

// NewSchemaInspector creates a SchemaInspector for the given connection
// name to database path mapping.
func NewSchemaInspector(connections map[string]string) *SchemaInspector {
	return &SchemaInspector{connections: connections}
}

// readOnlyURI returns a read-only SQLite URI for path with reserved
// characters escaped.
func readOnlyURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: "mode=ro", OmitHost: true}
	return u.String()
}

// DescribeSchema describes one table, or all user tables when table is empty.
func (s *SchemaInspector) DescribeSchema(ctx context.Context, connection, table string) (*docboost.DatabaseSchema, error) {
	if connection == "" {
		connection = docboost.DefaultConnection
	}
	path, ok := s.connections[connection]
	if !ok {
		return nil, docboost.Errorf(docboost.ENOTFOUND, "connection %q is not configured", connection)
	}

	conn, err := sql.Open("sqlite3", readOnlyURI(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open connection %q: %w", connection, err)
	}
	defer conn.Close()

	tables, err := listTables(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables of %q: %w", connection, err)
	}

	if table != "" {
		if !slices.Contains(tables, table) {
			return nil, docboost.Errorf(docboost.ENOTFOUND, "table %q not found", table)
		}
		tables = []string{table}
	}

	schema := &docboost.DatabaseSchema{
		Connection: connection,
		Tables:     make(map[string]*docboost.TableSchema, len(tables)),
	}
	for _, name := range tables {
		ts, err := describeTable(ctx, conn, name)
		if err != nil {
			return nil, fmt.Errorf("failed to describe table %q: %w", name, err)
		}
		schema.Tables[name] = ts
	}

	return schema, nil
}

func listTables(ctx context.Context, conn *sql.DB) ([]string, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func describeTable(ctx context.Context, conn *sql.DB, table string) (*docboost.TableSchema, error) {
	ts := &docboost.TableSchema{
		Columns:     map[string]docboost.Column{},
		PrimaryKey:  []string{},
		Indexes:     map[string]docboost.Index{},
		Constraints: map[string]docboost.Constraint{},
	}

	if err := readColumns(ctx, conn, table, ts); err != nil {
		return nil, err
	}
	if err := readIndexes(ctx, conn, table, ts); err != nil {
		return nil, err
	}
	if err := readForeignKeys(ctx, conn, table, ts); err != nil {
		return nil, err
	}

	if len(ts.PrimaryKey) > 0 {
		ts.Constraints[docboost.ConstraintPrimary] = docboost.Constraint{
			Type:    docboost.ConstraintPrimary,
			Columns: ts.PrimaryKey,
		}
	}

	return ts, nil
}

var typeLengthRe = regexp.MustCompile(`^\s*([^(]+?)\s*\(\s*(\d+)`)

func readColumns(ctx context.Context, conn *sql.DB, table string, ts *docboost.TableSchema) error {
	rows, err := conn.QueryContext(ctx, `
		SELECT name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?)
		ORDER BY cid
	`, table)
	if err != nil {
		return err
	}
	defer rows.Close()

	pk := map[int]string{}
	for rows.Next() {
		var (
			name, declType string
			notNull, pkPos int
			dflt           sql.NullString
		)
		if err := rows.Scan(&name, &declType, &notNull, &dflt, &pkPos); err != nil {
			return err
		}

		col := docboost.Column{
			Type: strings.ToLower(strings.TrimSpace(declType)),
			Null: notNull == 0 && pkPos == 0,
		}
		if m := typeLengthRe.FindStringSubmatch(declType); m != nil {
			col.Type = strings.ToLower(m[1])
			if n, err := strconv.Atoi(m[2]); err == nil {
				col.Length = &n
			}
		}
		if dflt.Valid {
			col.Default = &dflt.String
		}
		if pkPos > 0 {
			pk[pkPos] = name
		}
		ts.Columns[name] = col
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := 1; i <= len(pk); i++ {
		ts.PrimaryKey = append(ts.PrimaryKey, pk[i])
	}

	// A single INTEGER primary key aliases the rowid and auto-increments.
	if len(ts.PrimaryKey) == 1 {
		name := ts.PrimaryKey[0]
		if col := ts.Columns[name]; col.Type == "integer" {
			col.AutoIncrement = true
			ts.Columns[name] = col
		}
	}

	return nil
}

func readIndexes(ctx context.Context, conn *sql.DB, table string, ts *docboost.TableSchema) error {
	rows, err := conn.QueryContext(ctx, `
		SELECT name, "unique", origin
		FROM pragma_index_list(?)
		ORDER BY name
	`, table)
	if err != nil {
		return err
	}

	type index struct {
		name   string
		unique bool
		origin string
	}
	var indexes []index
	for rows.Next() {
		var idx index
		if err := rows.Scan(&idx.name, &idx.unique, &idx.origin); err != nil {
			rows.Close()
			return err
		}
		indexes = append(indexes, idx)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, idx := range indexes {
		// Primary keys are reported from the column list.
		if idx.origin == "pk" {
			continue
		}

		columns, err := indexColumns(ctx, conn, idx.name)
		if err != nil {
			return err
		}

		if idx.unique {
			ts.Constraints[idx.name] = docboost.Constraint{
				Type:    docboost.ConstraintUnique,
				Columns: columns,
			}
			continue
		}
		ts.Indexes[idx.name] = docboost.Index{
			Type:    docboost.IndexTypeIndex,
			Columns: columns,
		}
	}

	return nil
}

func indexColumns(ctx context.Context, conn *sql.DB, index string) ([]string, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT name FROM pragma_index_info(?) ORDER BY seqno
	`, index)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		// Expression indexes have no column name.
		if name.Valid {
			columns = append(columns, name.String)
		}
	}
	return columns, rows.Err()
}

func readForeignKeys(ctx context.Context, conn *sql.DB, table string, ts *docboost.TableSchema) error {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, "table", "from", "to"
		FROM pragma_foreign_key_list(?)
		ORDER BY id, seq
	`, table)
	if err != nil {
		return err
	}
	defer rows.Close()

	type foreignKey struct {
		table string
		from  []string
		to    []string
	}
	keys := map[int]*foreignKey{}
	var order []int
	for rows.Next() {
		var (
			id       int
			refTable string
			from     string
			to       sql.NullString
		)
		if err := rows.Scan(&id, &refTable, &from, &to); err != nil {
			return err
		}
		fk, ok := keys[id]
		if !ok {
			fk = &foreignKey{table: refTable}
			keys[id] = fk
			order = append(order, id)
		}
		fk.from = append(fk.from, from)
		// A NULL target refers to the parent's primary key.
		if to.Valid {
			fk.to = append(fk.to, to.String)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range order {
		fk := keys[id]
		name := fmt.Sprintf("%s_%s_fk", table, strings.Join(fk.from, "_"))
		ts.Constraints[name] = docboost.Constraint{
			Type:       docboost.ConstraintForeign,
			Columns:    fk.from,
			References: append([]string{fk.table}, fk.to...),
		}
	}

	return nil
}
