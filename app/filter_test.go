package app

import (
	"AlgoDiary/dao"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProblems() []dao.Problem {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	return []dao.Problem{
		{
			LeetcodeNumber: 1,
			Title:          "Two Sum",
			Difficulty:     "Easy",
			IsCompleted:    true,
			Patterns:       `[{"id":1,"name":"Hash Map","description":""}]`,
			CreatedAt:      base,
		},
		{
			LeetcodeNumber: 42,
			Title:          "Trapping Rain Water",
			Difficulty:     "Hard",
			IsStarred:      true,
			Patterns:       `[{"id":2,"name":"Two Pointers","description":""}]`,
			CreatedAt:      base.Add(time.Hour),
		},
		{
			LeetcodeNumber: 3,
			Title:          "Longest Substring Without Repeating Characters",
			Difficulty:     "Medium",
			Patterns:       `[{"id":3,"name":"Sliding Window","description":""}]`,
			CreatedAt:      base.Add(2 * time.Hour),
		},
	}
}

func numbersOf(ps []dao.Problem) []int64 {
	ret := make([]int64, 0, len(ps))
	for _, p := range ps {
		ret = append(ret, p.LeetcodeNumber)
	}
	return ret
}

func TestFilterProblems(t *testing.T) {
	ps := sampleProblems()
	tests := []struct {
		name   string
		filter problemFilter
		want   []int64
	}{
		{"no filter", problemFilter{Difficulty: "all"}, []int64{1, 42, 3}},
		{"difficulty", problemFilter{Difficulty: "Hard"}, []int64{42}},
		{"starred", problemFilter{Difficulty: "all", Starred: true}, []int64{42}},
		{"completed", problemFilter{Difficulty: "all", Completed: true}, []int64{1}},
		{"search title", problemFilter{Difficulty: "all", Search: "rain"}, []int64{42}},
		{"search pattern name", problemFilter{Difficulty: "all", Search: "sliding"}, []int64{3}},
		{"search case insensitive", problemFilter{Difficulty: "all", Search: "TWO SUM"}, []int64{1}},
		{"combined", problemFilter{Difficulty: "Hard", Search: "two"}, []int64{42}}, //difficulty与pattern名搜索同时生效
		{"no hit", problemFilter{Difficulty: "Easy", Starred: true}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterProblems(ps, &tt.filter)
			assert.Equal(t, tt.want, numbersOf(got))
		})
	}
}

func TestSortProblems(t *testing.T) {
	ps := sampleProblems()
	sortProblems(ps, SORT_LATEST)
	require.Equal(t, []int64{3, 42, 1}, numbersOf(ps))

	sortProblems(ps, SORT_OLDEST)
	require.Equal(t, []int64{1, 42, 3}, numbersOf(ps))

	sortProblems(ps, SORT_TITLE)
	require.Equal(t, []int64{3, 42, 1}, numbersOf(ps))

	//未知值回落到latest
	sortProblems(ps, "whatever")
	require.Equal(t, []int64{3, 42, 1}, numbersOf(ps))
}
