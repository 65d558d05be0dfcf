package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounties(t *testing.T) {
	names := Counties()
	assert.Len(t, names, 13)
	assert.Contains(t, names, "Vestland")
	assert.Contains(t, names, "Oslo")
}

func TestMunicipalities(t *testing.T) {
	muns := Municipalities("Vestland")
	assert.Contains(t, muns, Municipality{Name: "Bergen", Number: "4601"})

	assert.Empty(t, Municipalities("Atlantis"))
}

func TestMunicipalities_ReturnsCopy(t *testing.T) {
	muns := Municipalities("Oslo")
	muns[0].Name = "Changed"
	assert.Equal(t, "Oslo", Municipalities("Oslo")[0].Name)
}

func TestCountyOf(t *testing.T) {
	county, ok := CountyOf("Bergen")
	assert.True(t, ok)
	assert.Equal(t, "Vestland", county)

	_, ok = CountyOf("Nowhere")
	assert.False(t, ok)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("Oslo", "Oslo"))
	assert.False(t, IsKnown("Oslo", "Bergen"))
	assert.False(t, IsKnown("oslo", "oslo"))
}

func TestPostalCoordinate(t *testing.T) {
	c, ok := PostalCoordinate("5000")
	assert.True(t, ok)
	assert.InDelta(t, 60.3913, c.Lat, 0.0001)

	_, ok = PostalCoordinate("9999")
	assert.False(t, ok)
}

func TestDefaultPostalCodes_AreWellFormed(t *testing.T) {
	assert.NotEmpty(t, DefaultPostalCodes)
	seen := make(map[string]bool)
	for _, row := range DefaultPostalCodes {
		assert.Len(t, row.PostalCode, 4, row.PostalCode)
		assert.NotEmpty(t, row.PostPlace)
		assert.NotEmpty(t, row.Municipality)
		assert.NotEmpty(t, row.County)
		seen[row.PostalCode] = true
	}
	assert.True(t, seen["5003"])
}
