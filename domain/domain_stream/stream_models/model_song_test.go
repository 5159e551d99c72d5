package stream_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCanonicalMergesSiblingSeries(t *testing.T) {
	primary := &Song{
		SpotifyID:    "v1",
		ISRC:         "USUM71234567",
		TotalStreams: 100,
		DailyStreams: DailySeries{"01-06-2025": 10},
	}
	sibling := Song{
		SpotifyID:    "v2",
		ISRC:         "USUM71234567",
		TotalStreams: 150,
		DailyStreams: DailySeries{"02-06-2025": 20},
	}

	view := ResolveCanonical(primary, []Song{sibling})
	require.NotNil(t, view)

	// 累计量最高的版本作为规范版本
	assert.Equal(t, "v2", view.SpotifyID)
	assert.Equal(t, int64(150), view.TotalStreams)
	// 各版本日序列并入视图
	assert.Equal(t, DailySeries{"01-06-2025": 10, "02-06-2025": 20}, view.DailyStreams)

	// 入参不被改动
	assert.Equal(t, DailySeries{"01-06-2025": 10}, primary.DailyStreams)
	assert.Equal(t, DailySeries{"02-06-2025": 20}, sibling.DailyStreams)
}

func TestResolveCanonicalPrimaryWinsOnDateConflict(t *testing.T) {
	primary := &Song{
		SpotifyID:    "v1",
		TotalStreams: 500,
		DailyStreams: DailySeries{"01-06-2025": 111},
	}
	siblings := []Song{
		{SpotifyID: "v2", TotalStreams: 50, DailyStreams: DailySeries{"01-06-2025": 222, "02-06-2025": 2}},
		{SpotifyID: "v3", TotalStreams: 60, DailyStreams: DailySeries{"02-06-2025": 3}},
	}

	view := ResolveCanonical(primary, siblings)
	require.NotNil(t, view)
	assert.Equal(t, "v1", view.SpotifyID)
	// 同日冲突时查询主体的观测值优先；姊妹之间按插入序后者胜出
	assert.Equal(t, int64(111), view.DailyStreams["01-06-2025"])
	assert.Equal(t, int64(3), view.DailyStreams["02-06-2025"])
}

func TestResolveCanonicalNoSiblings(t *testing.T) {
	primary := &Song{SpotifyID: "solo", TotalStreams: 7, DailyStreams: DailySeries{"01-06-2025": 1}}

	view := ResolveCanonical(primary, nil)
	require.NotNil(t, view)
	assert.Equal(t, "solo", view.SpotifyID)
	assert.Equal(t, primary.DailyStreams, view.DailyStreams)

	assert.Nil(t, ResolveCanonical(nil, nil))
}
