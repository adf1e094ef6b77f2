package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfreq-go/internal/errs"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		minFreq int
		want    map[string]int
	}{
		{"threshold drops rare", []string{"猫", "狗", "猫", "鸟", "猫"}, 2, map[string]int{"猫": 3}},
		{"min one keeps all", []string{"猫", "狗", "猫"}, 1, map[string]int{"猫": 2, "狗": 1}},
		{"everything below threshold", []string{"猫", "狗"}, 5, map[string]int{}},
		{"empty input", nil, 1, map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Aggregate(tt.tokens, tt.minFreq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, table.Counts())
			assert.Equal(t, len(tt.want), table.Len())
			assert.Equal(t, len(tt.want) == 0, table.Empty())
		})
	}
}

func TestAggregate_InvalidMinFreq(t *testing.T) {
	for _, minFreq := range []int{0, -1} {
		table, err := Aggregate([]string{"猫"}, minFreq)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Nil(t, table)
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	table, err := Aggregate([]string{"狗", "猫", "鸟", "猫", "狗"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"狗", "猫"}, table.Order())
	assert.Equal(t, 2, table.Count("狗"))
	assert.Equal(t, 0, table.Count("鸟"))
}

func TestAggregate_CountsIsCopy(t *testing.T) {
	table, err := Aggregate([]string{"猫"}, 1)
	require.NoError(t, err)
	table.Counts()["猫"] = 99
	assert.Equal(t, 1, table.Count("猫"))
}

func TestRank(t *testing.T) {
	table, err := Aggregate([]string{"数据", "分析", "技术", "分析", "数据", "分析", "网页"}, 1)
	require.NoError(t, err)

	got := Rank(table, 3)
	want := Series{{"分析", 3}, {"数据", 2}, {"技术", 1}}
	assert.Equal(t, want, got)
}

func TestRank_TiesByFirstSeen(t *testing.T) {
	table, err := Aggregate([]string{"乙", "甲", "丙", "甲", "乙", "丙"}, 1)
	require.NoError(t, err)

	got := Rank(table, 0)
	assert.Equal(t, []string{"乙", "甲", "丙"}, got.Labels())
}

func TestRank_Deterministic(t *testing.T) {
	tokens := make([]string, 0, 400)
	for i := 0; i < 100; i++ {
		tokens = append(tokens, string(rune('一'+i%37)), string(rune('一'+i%23)))
	}
	table, err := Aggregate(tokens, 1)
	require.NoError(t, err)

	first := Rank(table, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(table, 20))
	}
	assert.Len(t, first, 20)
}

func TestRank_Empty(t *testing.T) {
	table, err := Aggregate(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, Rank(table, DefaultTopN))
	assert.Empty(t, Rank(nil, DefaultTopN))
}

func TestRank_TopNLargerThanTable(t *testing.T) {
	table, err := Aggregate([]string{"猫", "狗"}, 1)
	require.NoError(t, err)
	assert.Len(t, Rank(table, 20), 2)
}

func TestSeries_Helpers(t *testing.T) {
	s := Series{{"猫", 3}, {"狗", 2}}
	assert.Equal(t, []string{"猫", "狗"}, s.Labels())
	assert.Equal(t, []int{3, 2}, s.Values())
	assert.Equal(t, 3, s.Max())
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 0, Series{}.Max())
}
