package freqlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopWords(t *testing.T) {
	sw := StopWords()
	assert.Len(t, sw, 28)
	for _, w := range []string{"의", "하다", "되다", "으로", "께서"} {
		assert.True(t, IsStopWord(w), w)
	}
	assert.False(t, IsStopWord("사과"))
}

func TestFilter(t *testing.T) {
	words := []string{"사과", "의", "바나나", "것", "하다", "나", "사과", "에서", "포도"}

	assert.Equal(t, []string{"사과", "바나나", "사과", "포도"}, Filter(words, 2))
	assert.Equal(t, []string{"사과", "바나나", "나", "사과", "포도"}, Filter(words, 1))
	assert.Equal(t, []string{"바나나"}, Filter(words, 3))
	assert.Empty(t, Filter([]string{"의", "가", "이", "은"}, 1))
	assert.Empty(t, Filter(nil, 2))
}

func TestFilterIdempotent(t *testing.T) {
	lists := [][]string{
		{"사과", "의", "바나나", "것", "하다", "나"},
		{"으로", "에게", "컴퓨터", "프로그램", "가"},
		{},
	}
	for _, words := range lists {
		for minLen := 1; minLen <= 5; minLen++ {
			once := Filter(words, minLen)
			assert.Equal(t, once, Filter(once, minLen))
		}
	}
}

func TestCountSums(t *testing.T) {
	words := []string{"사과", "바나나", "사과", "포도", "사과", "바나나"}
	table := Count(words)

	sum := 0
	for _, e := range table.Ranked() {
		assert.GreaterOrEqual(t, e.Count, 1)
		sum += e.Count
	}
	assert.Equal(t, len(words), sum)
	assert.Equal(t, len(words), table.Total())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 3, table.Freq("사과"))
	assert.Equal(t, 0, table.Freq("수박"))
}

func TestRankedStableTies(t *testing.T) {
	words := []string{"포도", "사과", "바나나", "사과", "수박", "바나나", "포도", "딸기"}
	ranked := Count(words).Ranked()

	require.Len(t, ranked, 5)
	want := []string{"포도", "사과", "바나나", "수박", "딸기"}
	for i, e := range ranked {
		assert.Equal(t, want[i], e.Word)
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, 2, ranked[0].Count)
	assert.Equal(t, 1, ranked[4].Count)
}

func TestTop(t *testing.T) {
	table := Count([]string{"사과", "사과", "사과", "바나나", "포도", "포도"})

	top := table.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, Entry{Rank: 1, Word: "사과", Count: 3}, top[0])
	assert.Equal(t, Entry{Rank: 2, Word: "포도", Count: 2}, top[1])
	assert.Len(t, table.Top(50), 3)
	assert.Len(t, table.Top(-1), 3)
}

func TestFromEntries(t *testing.T) {
	orig := Count([]string{"사과", "바나나", "사과"})
	rebuilt := FromEntries(orig.Ranked())

	assert.Equal(t, orig.Map(), rebuilt.Map())
	assert.Equal(t, orig.Ranked(), rebuilt.Ranked())
}

func TestMapIsCopy(t *testing.T) {
	table := Count([]string{"사과"})
	m := table.Map()
	m["사과"] = 10
	assert.Equal(t, 1, table.Freq("사과"))
}
