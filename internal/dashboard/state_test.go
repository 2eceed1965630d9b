package dashboard

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/launchdash/internal/charts"
)

func TestParseState(t *testing.T) {
	layout := BuildLayout(fixtureDataset(t))

	tests := []struct {
		name  string
		query string
		want  ControlState
	}{
		{
			name:  "no parameters keeps defaults",
			query: "",
			want:  ControlState{Site: "ALL", Payload: charts.Range{Lo: 0, Hi: 9600}},
		},
		{
			name:  "site only",
			query: "site=KSC+LC-39A",
			want:  ControlState{Site: "KSC LC-39A", Payload: charts.Range{Lo: 0, Hi: 9600}},
		},
		{
			name:  "empty site is kept",
			query: "site=",
			want:  ControlState{Site: "", Payload: charts.Range{Lo: 0, Hi: 9600}},
		},
		{
			name:  "full range",
			query: "site=ALL&lo=2000&hi=5000.5",
			want:  ControlState{Site: "ALL", Payload: charts.Range{Lo: 2000, Hi: 5000.5}},
		},
		{
			name:  "reversed bounds are passed through",
			query: "lo=8000&hi=1000",
			want:  ControlState{Site: "ALL", Payload: charts.Range{Lo: 8000, Hi: 1000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseState(q, layout)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStateRejectsBadNumbers(t *testing.T) {
	layout := BuildLayout(fixtureDataset(t))

	for _, query := range []string{"lo=abc", "hi=1e", "lo=NaN", "hi=Inf", "hi=-Inf"} {
		t.Run(query, func(t *testing.T) {
			q, err := url.ParseQuery(query)
			require.NoError(t, err)

			_, err = ParseState(q, layout)

			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, []string{"lo", "hi"}, perr.Param)
		})
	}
}

func TestControlStateQueryRoundTrip(t *testing.T) {
	layout := BuildLayout(fixtureDataset(t))
	state := ControlState{Site: "CCAFS SLC-40", Payload: charts.Range{Lo: 1000, Hi: 7500.25}}

	got, err := ParseState(state.Query(), layout)

	require.NoError(t, err)
	assert.Equal(t, state, got)
}
