package dashboard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dbsmedya/launchdash/internal/dataset"
	"github.com/dbsmedya/launchdash/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixtureDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.LoadCSV(filepath.Join("..", "dataset", "testdata", "spacex_launch_dash.csv"))
	require.NoError(t, err)
	return d
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(fixtureDataset(t), logger.NewNop())
	require.NoError(t, err)
	return app
}
