package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	type sample struct {
		A int
		B string
	}

	intPtr := Ptr(42)
	require.NotNil(t, intPtr)
	assert.Equal(t, 42, *intPtr)

	strPtr := Ptr("hello")
	require.NotNil(t, strPtr)
	assert.Equal(t, "hello", *strPtr)

	structPtr := Ptr(sample{A: 1, B: "test"})
	require.NotNil(t, structPtr)
	assert.Equal(t, sample{A: 1, B: "test"}, *structPtr)
}
