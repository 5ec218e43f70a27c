package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	n := Ptr(0.7)
	assert.NotNil(t, n)
	assert.InDelta(t, 0.7, *n, 1e-9)

	s := Ptr("json_object")
	assert.Equal(t, "json_object", *s)

	// each call returns a distinct pointer
	assert.NotSame(t, Ptr(1), Ptr(1))
}
