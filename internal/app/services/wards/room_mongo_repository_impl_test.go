package wards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPatternEscapesMetacharacters(t *testing.T) {
	pattern := searchPattern("Salim (bed 3)")

	assert.Equal(t, `Salim \(bed 3\)`, pattern["$regex"])
	assert.Equal(t, "i", pattern["$options"])
}

func TestSearchPatternPlainQueryUnchanged(t *testing.T) {
	pattern := searchPattern("agus")

	assert.Equal(t, "agus", pattern["$regex"])
}
