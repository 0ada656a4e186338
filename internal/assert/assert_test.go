package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	require.PanicsWithValue(t, "expected x to be not nil", func() { NotNil(nil, "x") })
	require.Panics(t, func() { NotNil(nilPtr, "ptr") })
	require.Panics(t, func() { NotNil(nilMap, "map") })

	n := 1
	require.NotPanics(t, func() { NotNil(&n, "ptr") })
	require.NotPanics(t, func() { NotNil(struct{}{}, "struct") })
}

func TestNotEmptyStr(t *testing.T) {
	require.PanicsWithValue(t, "expected name to be non-empty", func() { NotEmptyStr("", "name") })
	require.NotPanics(t, func() { NotEmptyStr("a", "name") })
}
