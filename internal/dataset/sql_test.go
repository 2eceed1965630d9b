package dataset

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sqlColumns = []string{ColumnFlightNumber, ColumnLaunchSite, ColumnPayloadMass, ColumnBoosterCategory, ColumnClass}

func TestSelectQuery(t *testing.T) {
	query, err := SelectQuery("spacex_launches")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT `Flight Number`, `Launch Site`, `Payload Mass (kg)`, `Booster Version Category`, `class` "+
			"FROM `spacex_launches` ORDER BY `Flight Number`",
		query)
}

func TestSelectQueryRejectsInvalidTable(t *testing.T) {
	for _, name := range []string{"", "launches; DROP TABLE users", "spacex.launches", "la`unches"} {
		_, err := SelectQuery(name)

		var tableErr *InvalidTableError
		assert.ErrorAs(t, err, &tableErr, "table %q", name)
	}
}

func TestLoadSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(sqlColumns).
		AddRow(1, "CCAFS LC-40", 0.0, "v1.0", 0).
		AddRow(13, "KSC LC-39A", 2490.0, "FT", 1).
		AddRow(18, "VAFB SLC-4E", 9600.0, nil, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM `spacex_launches` ORDER BY `Flight Number`")).WillReturnRows(rows)

	d, err := LoadSQL(context.Background(), db, "spacex_launches")
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}, d.Sites())
	assert.Equal(t, float64(9600), d.MaxPayload())
	// NULL booster categories load as empty strings
	assert.Equal(t, "", d.Records()[2].BoosterCategory)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSQLQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("table doesn't exist"))

	_, err = LoadSQL(context.Background(), db, "spacex_launches")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query spacex_launches")
}

func TestLoadSQLEmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(sqlColumns))

	_, err = LoadSQL(context.Background(), db, "spacex_launches")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadSQLScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(sqlColumns).AddRow("not-a-number", "A", 1.0, "FT", 1)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err = LoadSQL(context.Background(), db, "spacex_launches")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestLoadSQLRowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(sqlColumns).
		AddRow(1, "A", 1.0, "FT", 1).
		RowError(0, errors.New("connection lost"))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err = LoadSQL(context.Background(), db, "spacex_launches")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}
