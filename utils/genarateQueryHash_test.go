package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQueryHash_Deterministic(t *testing.T) {
	filters := map[string]string{"search": "sana", "status": "approved"}

	first := GenerateQueryHash("applications", filters)
	second := GenerateQueryHash("applications", filters)

	assert.Equal(t, first, second)
}

func TestGenerateQueryHash_KeyOrderIndependent(t *testing.T) {
	a := GenerateQueryHash("applications", map[string]string{"search": "sana", "status": "approved"})
	b := GenerateQueryHash("applications", map[string]string{"status": "approved", "search": "sana"})

	assert.Equal(t, a, b)
}

func TestGenerateQueryHash_PrefixedByResourceType(t *testing.T) {
	key := GenerateQueryHash("buyers", map[string]string{"search": "ahmed"})
	assert.True(t, strings.HasPrefix(key, "buyers:"))
}

func TestGenerateQueryHash_DifferentFiltersDiffer(t *testing.T) {
	a := GenerateQueryHash("applications", map[string]string{"search": "sana"})
	b := GenerateQueryHash("applications", map[string]string{"search": "ali"})

	assert.NotEqual(t, a, b)
}
