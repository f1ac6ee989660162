package docboost

import "context"

// DefaultConnection is the connection name used when none is given.
const DefaultConnection = "default"

// DatabaseSchema describes the tables of a database connection.
type DatabaseSchema struct {
	Connection string                  `json:"connection"`
	Tables     map[string]*TableSchema `json:"tables"`
}

// TableSchema describes a single table.
type TableSchema struct {
	Columns     map[string]Column     `json:"columns"`
	PrimaryKey  []string              `json:"primaryKey"`
	Indexes     map[string]Index      `json:"indexes"`
	Constraints map[string]Constraint `json:"constraints"`
}

// Column describes a table column.
type Column struct {
	Type          string  `json:"type"`
	Length        *int    `json:"length"`
	Null          bool    `json:"null"`
	Default       *string `json:"default"`
	AutoIncrement bool    `json:"autoIncrement,omitempty"`
}

// Index describes a table index.
type Index struct {
	Type    string   `json:"type"`
	Columns []string `json:"columns"`
}

// Constraint describes a primary, unique or foreign key constraint.
// References holds the referenced table followed by its columns.
type Constraint struct {
	Type       string   `json:"type"`
	Columns    []string `json:"columns"`
	References []string `json:"references,omitempty"`
}

// Constraint and index types.
const (
	ConstraintPrimary = "primary"
	ConstraintUnique  = "unique"
	ConstraintForeign = "foreign"
	IndexTypeIndex    = "index"
)

// SchemaInspector introspects database schemas.
type SchemaInspector interface {
	// DescribeSchema describes a single table, or every table when table is
	// empty, of the named connection.
	// Returns ENOTFOUND if the connection or the table does not exist.
	DescribeSchema(ctx context.Context, connection, table string) (*DatabaseSchema, error)
}
