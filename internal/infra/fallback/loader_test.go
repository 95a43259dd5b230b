package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
)

func TestParse(t *testing.T) {
	want := []dashboard.Insight{
		{FocusArea: "Mobilidade", City: "Curitiba", Insight: "BRT lanes."},
		{FocusArea: "Energia", City: "Recife", Insight: "Solar roofs."},
	}

	tests := []struct {
		name    string
		content string
		want    []dashboard.Insight
		wantErr string
	}{
		{
			name:    "json array",
			content: `[{"focus_area":"Mobilidade","city":"Curitiba","insight":"BRT lanes."},{"focus_area":"Energia","city":"Recife","insight":"Solar roofs."}]`,
			want:    want,
		},
		{
			name: "yaml list",
			content: `
- focus_area: Mobilidade
  city: Curitiba
  insight: BRT lanes.
- focus_area: Energia
  city: Recife
  insight: Solar roofs.
`,
			want: want,
		},
		{
			name: "wrapped yaml",
			content: `
insights:
  - focus_area: Mobilidade
    city: Curitiba
    insight: BRT lanes.
  - focus_area: Energia
    city: Recife
    insight: Solar roofs.
`,
			want: want,
		},
		{name: "empty file", content: "  \n", want: nil},
		{name: "scalar", content: "just text", wantErr: "must hold a list"},
		{name: "broken", content: "[{", wantErr: "parse fallback file"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse([]byte(tt.content))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	insights, err := Load("")
	require.NoError(t, err)
	require.Nil(t, insights)

	path := filepath.Join(t.TempDir(), "fallback.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"focus_area":"Água","city":"Fortaleza","insight":"Desalination pilot."}]`), 0o600))

	insights, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, []dashboard.Insight{{FocusArea: "Água", City: "Fortaleza", Insight: "Desalination pilot."}}, insights)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read fallback file")
}
