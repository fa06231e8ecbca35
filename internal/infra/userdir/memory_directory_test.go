package userdir

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllUserIDsReturnsCopy(t *testing.T) {
	dir := NewMemoryDirectory(1, 2)
	dir.Add(3)

	ids, err := dir.AllUserIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)

	ids[0] = 99
	again, err := dir.AllUserIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, again)
}
