package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProblemRef(t *testing.T) {
	refs := make([]ProblemRef, 0)
	ref := ProblemRef{LeetcodeNumber: 42, Title: "Two Sum"}

	refs, added := AddProblemRef(refs, ref)
	require.True(t, added)
	require.Len(t, refs, 1)

	//重复追加是无操作
	refs, added = AddProblemRef(refs, ref)
	assert.False(t, added)
	assert.Len(t, refs, 1)

	//同编号不同标题也算已存在
	refs, added = AddProblemRef(refs, ProblemRef{LeetcodeNumber: 42, Title: "renamed"})
	assert.False(t, added)
	assert.Len(t, refs, 1)
	assert.Equal(t, "Two Sum", refs[0].Title)
}

func TestRemoveProblemRef(t *testing.T) {
	refs := []ProblemRef{
		{LeetcodeNumber: 1, Title: "Two Sum"},
		{LeetcodeNumber: 42, Title: "Trapping Rain Water"},
	}

	refs, removed := RemoveProblemRef(refs, 42)
	require.True(t, removed)
	require.Len(t, refs, 1)
	assert.Equal(t, int64(1), refs[0].LeetcodeNumber)

	//再删一次是无操作,列表长度不会变负
	refs, removed = RemoveProblemRef(refs, 42)
	assert.False(t, removed)
	assert.Len(t, refs, 1)

	refs, removed = RemoveProblemRef(refs, 1)
	require.True(t, removed)
	assert.Len(t, refs, 0)

	refs, removed = RemoveProblemRef(refs, 1)
	assert.False(t, removed)
	assert.Len(t, refs, 0)
}

func TestRemoveTagRef(t *testing.T) {
	refs := []TagRef{
		{ID: 1, Name: "Hash Map"},
		{ID: 2, Name: "Two Pointers"},
	}
	refs, removed := RemoveTagRef(refs, 1)
	require.True(t, removed)
	require.Len(t, refs, 1)
	assert.Equal(t, "Two Pointers", refs[0].Name)

	refs, removed = RemoveTagRef(refs, 99)
	assert.False(t, removed)
	assert.Len(t, refs, 1)
}

func TestDiffTagRefs(t *testing.T) {
	a := TagRef{ID: 1, Name: "Hash Map"}
	b := TagRef{ID: 2, Name: "Sliding Window"}
	c := TagRef{ID: 3, Name: "Two Pointers"}

	tests := []struct {
		name        string
		old         []TagRef
		new         []TagRef
		wantRemoved []int64
		wantAdded   []int64
	}{
		{"unchanged", []TagRef{a, b}, []TagRef{a, b}, []int64{}, []int64{}},
		{"swap one", []TagRef{a, b}, []TagRef{b, c}, []int64{1}, []int64{3}},
		{"all removed", []TagRef{a, b}, []TagRef{}, []int64{1, 2}, []int64{}},
		{"all added", []TagRef{}, []TagRef{a, c}, []int64{}, []int64{1, 3}},
		{"both empty", []TagRef{}, []TagRef{}, []int64{}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed, added := DiffTagRefs(tt.old, tt.new)
			assert.Equal(t, tt.wantRemoved, idsOf(removed))
			assert.Equal(t, tt.wantAdded, idsOf(added))
		})
	}
}

//比对按id不按名字: 改名不会触发摘除+重挂
func TestDiffTagRefsMatchesByID(t *testing.T) {
	old := []TagRef{{ID: 1, Name: "Hash Map"}}
	renamed := []TagRef{{ID: 1, Name: "Hashing"}}
	removed, added := DiffTagRefs(old, renamed)
	assert.Empty(t, removed)
	assert.Empty(t, added)
}

func TestParseDumpRefs(t *testing.T) {
	//坏json和空串都当成空列表,不报错
	assert.Empty(t, ParseTagRefs(""))
	assert.Empty(t, ParseTagRefs("not json"))
	assert.Empty(t, ParseProblemRefs("null"))

	refs := ParseTagRefs(`[{"id":7,"name":"BFS","description":"层序"}]`)
	require.Len(t, refs, 1)
	assert.Equal(t, int64(7), refs[0].ID)

	//空列表落库成[]而不是null
	assert.Equal(t, "[]", DumpTagRefs(nil))
	assert.Equal(t, "[]", DumpProblemRefs(nil))
}

func idsOf(refs []TagRef) []int64 {
	ids := make([]int64, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}
