package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/docboost"
)

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	schema, err := deps.Schema.DescribeSchema(deps.Ctx, c.Connection, c.Table)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docboost.ErrorMessage(err))
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "    ")
		return enc.Encode(schema)
	}

	names := make([]string, 0, len(schema.Tables))
	for name := range schema.Tables {
		names = append(names, name)
	}
	slices.Sort(names)

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printTable(deps.Stdout, name, schema.Tables[name])
	}
	return nil
}

func printTable(w io.Writer, name string, t *docboost.TableSchema) {
	fmt.Fprintf(w, "Table: %s\n", name)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  COLUMN\tTYPE\tNULL\tDEFAULT\tKEY")
	for _, col := range sortedKeys(t.Columns) {
		c := t.Columns[col]
		typ := c.Type
		if c.Length != nil {
			typ = fmt.Sprintf("%s(%d)", typ, *c.Length)
		}
		def := ""
		if c.Default != nil {
			def = *c.Default
		}
		key := ""
		if slices.Contains(t.PrimaryKey, col) {
			key = "PK"
			if c.AutoIncrement {
				key += " auto"
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", col, typ, yesNo(c.Null), def, key)
	}
	_ = tw.Flush()

	for _, idx := range sortedKeys(t.Indexes) {
		fmt.Fprintf(w, "  index %s (%s)\n", idx, strings.Join(t.Indexes[idx].Columns, ", "))
	}
	for _, con := range sortedKeys(t.Constraints) {
		c := t.Constraints[con]
		if c.Type == docboost.ConstraintPrimary {
			continue
		}
		line := fmt.Sprintf("  %s %s (%s)", c.Type, con, strings.Join(c.Columns, ", "))
		if len(c.References) > 1 {
			line += fmt.Sprintf(" -> %s(%s)", c.References[0], strings.Join(c.References[1:], ", "))
		}
		fmt.Fprintln(w, line)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
