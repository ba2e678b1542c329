package libmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	e, ok := Lookup("os.osc")
	require.True(t, ok)
	require.Equal(t, "osc", e.Op)
	require.Equal(t, 1, e.Arity)

	e, ok = Lookup("ba.take")
	require.True(t, ok)
	require.True(t, e.Variadic)

	e, ok = Lookup("ba.db2linear")
	require.True(t, ok)
	require.Equal(t, "db", e.Unit)

	e, ok = Lookup("*")
	require.True(t, ok)
	require.Equal(t, "mul", e.Op)

	_, ok = Lookup("xx.unknown")
	require.False(t, ok)
}

func TestUIPredicates(t *testing.T) {
	require.True(t, IsUIElement("hslider"))
	require.True(t, IsUIElement("button"))
	require.False(t, IsUIElement("hgroup"))

	require.True(t, IsUIGroup("tgroup"))
	require.False(t, IsUIGroup("hslider"))
}
