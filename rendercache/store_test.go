package rendercache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_IsDeterministicContentHash(t *testing.T) {
	a := Key("# Hello")
	b := Key("# Hello")
	c := Key("# Hello!")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 64)
	require.Regexp(t, "^[0-9a-f]+$", a)
}
