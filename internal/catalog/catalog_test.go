package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Domain
		wantErr  bool
	}{
		{name: "beard", input: "beard", expected: Beard},
		{name: "lipstick mixed case", input: " Lipstick ", expected: Lipstick},
		{name: "unknown", input: "hair", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDomain(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestCatalogSizes(t *testing.T) {
	require.Len(t, BeardStyles(), 6)
	require.Len(t, BeardColors(), 6)
	require.Len(t, LipstickColors(), 6)
}

func TestCanonical(t *testing.T) {
	styles := BeardStyles()

	tests := []struct {
		name     string
		value    string
		expected string
		ok       bool
	}{
		{name: "exact", value: "Bouc", expected: "Bouc", ok: true},
		{name: "case and spaces", value: "  barbe de 3 jours ", expected: "Barbe de 3 Jours", ok: true},
		{name: "accented", value: "BARBE COMPLÈTE", expected: "Barbe Complète", ok: true},
		{name: "unknown", value: "Mohawk", ok: false},
		{name: "empty", value: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := styles.Canonical(tt.value)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	styles := BeardStyles()
	styles[0].Name = "changed"

	require.Equal(t, "Barbe Complète", BeardStyles()[0].Name)

	groups := BeardProducts()
	groups[0].Products[0].Name = "changed"
	require.Equal(t, "L'Oréal Paris Barbe Longue", BeardProducts()[0].Products[0].Name)
}

func TestLipstickMetadataIsHexColor(t *testing.T) {
	for _, e := range LipstickColors() {
		require.Regexp(t, `^#[0-9A-F]{6}$`, e.Metadata, e.Name)
		require.NotEmpty(t, LipstickHint(e.Name), e.Name)
	}
}

func TestFor(t *testing.T) {
	beard := For(Beard)
	require.Equal(t, Beard, beard.Domain)
	require.Len(t, beard.Styles, 6)
	require.Len(t, beard.Products, 3)

	lipstick := For(Lipstick)
	require.Empty(t, lipstick.Styles)
	require.Empty(t, lipstick.Products)
	require.Equal(t, LipstickColors(), lipstick.Colors)
}
