package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// validTableRegex restricts table names to alphanumerics and underscores.
var validTableRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// InvalidTableError is returned when a table name contains invalid characters.
type InvalidTableError struct {
	Name string
}

func (e *InvalidTableError) Error() string {
	return "invalid table name: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}

// quoteIdentifier quotes a MySQL identifier with backticks, doubling any
// embedded backticks.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// SelectQuery returns the statement that reads the launch columns from table.
func SelectQuery(table string) (string, error) {
	if !validTableRegex.MatchString(table) {
		return "", &InvalidTableError{Name: table}
	}

	cols := make([]string, 0, len(requiredColumns))
	for _, c := range requiredColumns {
		cols = append(cols, quoteIdentifier(c))
	}

	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(cols, ", "),
		quoteIdentifier(table),
		quoteIdentifier(ColumnFlightNumber),
	), nil
}

// LoadSQL reads launch records from a MySQL table whose columns carry the
// same names as the CSV header.
func LoadSQL(ctx context.Context, db *sql.DB, table string) (*Dataset, error) {
	query, err := SelectQuery(table)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var records []LaunchRecord
	for rows.Next() {
		var rec LaunchRecord
		var booster sql.NullString
		if err := rows.Scan(&rec.FlightNumber, &rec.LaunchSite, &rec.PayloadMassKg, &booster, &rec.Success); err != nil {
			return nil, fmt.Errorf("failed to scan %s row %d: %w", table, len(records)+1, err)
		}
		rec.BoosterCategory = booster.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}

	return New(records)
}
