package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed mysql.sql
var mysqlSchema string

//go:embed sqlite.sql
var sqliteSchema string

// Schema returns the authoritative DDL for the given driver.
func Schema(driver string) (string, error) {
	switch driver {
	case DriverMySQL, "":
		return mysqlSchema, nil
	case DriverSQLite:
		return sqliteSchema, nil
	default:
		return "", fmt.Errorf("no schema for driver %q", driver)
	}
}

// ApplySchema creates every table and index that does not exist yet.  The
// statements are executed one at a time so MySQL does not need
// multiStatements enabled on the DSN.
func ApplySchema(ctx context.Context, db *sql.DB, driver string) (int, error) {
	ddl, err := Schema(driver)
	if err != nil {
		return 0, err
	}
	stmts := splitStatements(ddl)
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return i, fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return len(stmts), nil
}

// splitStatements splits a DDL script on semicolons and drops comment-only
// lines.  The schema files contain no semicolons inside string literals.
func splitStatements(ddl string) []string {
	var out []string
	for _, part := range strings.Split(ddl, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) > 0 {
			out = append(out, strings.TrimSpace(strings.Join(lines, "\n")))
		}
	}
	return out
}
