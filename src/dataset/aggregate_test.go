package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSum(t *testing.T) {
	keys := []string{"A", "B", "A", "B", "C"}
	raw := []string{"10", "1", "5.5", "2", "x"}

	groups := GroupSum(keys, raw)
	require.Len(t, groups, 3)

	assert.Equal(t, Group{Key: "A", Value: 15.5, Valid: true, Count: 2}, groups[0])
	assert.Equal(t, Group{Key: "B", Value: 3, Valid: true, Count: 2}, groups[1])
	// Every value in C failed coercion, so the sum is null, not zero.
	assert.Equal(t, "C", groups[2].Key)
	assert.False(t, groups[2].Valid)
	assert.Equal(t, 1, groups[2].Count)
}

func TestGroupSumEmptyCellsAreNull(t *testing.T) {
	groups := GroupSum([]string{"A", "A"}, []string{"", ""})
	require.Len(t, groups, 1)
	assert.False(t, groups[0].Valid)
	assert.Equal(t, 2, groups[0].Count)
}

func TestGroupSumThousandsSeparators(t *testing.T) {
	groups := GroupSum([]string{"A"}, []string{"1,200"})
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Valid)
	assert.Equal(t, 1200.0, groups[0].Value)
}

func TestGroupCount(t *testing.T) {
	groups := GroupCount([]string{"x", "y", "x", "", "x"})
	require.Len(t, groups, 3)
	assert.Equal(t, Group{Key: "x", Value: 3, Valid: true, Count: 3}, groups[0])
	assert.Equal(t, Group{Key: "y", Value: 1, Valid: true, Count: 1}, groups[1])
	assert.Equal(t, Group{Key: "", Value: 1, Valid: true, Count: 1}, groups[2])
}

func TestMaxMinGroup(t *testing.T) {
	groups := []Group{
		{Key: "low", Value: -4, Valid: true},
		{Key: "null", Valid: false},
		{Key: "high", Value: 9, Valid: true},
	}

	g, err := MaxGroup(groups)
	require.NoError(t, err)
	assert.Equal(t, "high", g.Key)

	g, err = MinGroup(groups)
	require.NoError(t, err)
	assert.Equal(t, "low", g.Key)
}

func TestMaxGroupNoData(t *testing.T) {
	_, err := MaxGroup(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = MinGroup([]Group{{Key: "a", Valid: false}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTopN(t *testing.T) {
	groups := []Group{
		{Key: "b", Value: 2, Valid: true},
		{Key: "null", Valid: false},
		{Key: "a", Value: 2, Valid: true},
		{Key: "c", Value: 7, Valid: true},
		{Key: "d", Value: 1, Valid: true},
	}

	top := TopN(groups, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "c", top[0].Key)
	// Equal values fall back to key order.
	assert.Equal(t, "a", top[1].Key)
	assert.Equal(t, "b", top[2].Key)
}

func TestTopNFewerThanN(t *testing.T) {
	top := TopN([]Group{{Key: "a", Value: 1, Valid: true}}, 30)
	assert.Len(t, top, 1)
	assert.Empty(t, TopN(nil, 30))
}

func TestColumnMaxMin(t *testing.T) {
	values := []float64{3, -1, 12.5}

	v, err := ColumnMax(values)
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = ColumnMin(values)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	_, err = ColumnMax(nil)
	assert.ErrorIs(t, err, ErrNoNumeric)
	_, err = ColumnMin(nil)
	assert.ErrorIs(t, err, ErrNoNumeric)
}
