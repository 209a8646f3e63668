package model

import (
	"encoding/json"
)

//引用关系的纯内存维护,数据库里以json字符串存储,落库由dao层负责

//题目对标签的正向引用,冗余name和description方便列表渲染
type TagRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

//标签对题目的反向引用
type ProblemRef struct {
	LeetcodeNumber int64  `json:"leetcode_number"`
	Title          string `json:"title"`
}

func ParseTagRefs(js string) []TagRef {
	var refs []TagRef
	json.Unmarshal([]byte(js), &refs)
	if refs == nil {
		return make([]TagRef, 0)
	}
	return refs
}

func DumpTagRefs(refs []TagRef) string {
	if refs == nil {
		refs = make([]TagRef, 0)
	}
	js, _ := json.Marshal(refs)
	return string(js)
}

func ParseProblemRefs(js string) []ProblemRef {
	var refs []ProblemRef
	json.Unmarshal([]byte(js), &refs)
	if refs == nil {
		return make([]ProblemRef, 0)
	}
	return refs
}

func DumpProblemRefs(refs []ProblemRef) string {
	if refs == nil {
		refs = make([]ProblemRef, 0)
	}
	js, _ := json.Marshal(refs)
	return string(js)
}

func HasTagRef(refs []TagRef, id int64) bool {
	for _, r := range refs {
		if r.ID == id {
			return true
		}
	}
	return false
}

//已存在同编号引用时不变,第二个返回值表示是否追加
func AddProblemRef(refs []ProblemRef, ref ProblemRef) ([]ProblemRef, bool) {
	for _, r := range refs {
		if r.LeetcodeNumber == ref.LeetcodeNumber {
			return refs, false
		}
	}
	return append(refs, ref), true
}

//不存在时不变,第二个返回值表示是否删除
func RemoveProblemRef(refs []ProblemRef, number int64) ([]ProblemRef, bool) {
	ret := make([]ProblemRef, 0, len(refs))
	removed := false
	for _, r := range refs {
		if r.LeetcodeNumber == number {
			removed = true
			continue
		}
		ret = append(ret, r)
	}
	return ret, removed
}

//从正向引用列表中去掉某个标签
func RemoveTagRef(refs []TagRef, id int64) ([]TagRef, bool) {
	ret := make([]TagRef, 0, len(refs))
	removed := false
	for _, r := range refs {
		if r.ID == id {
			removed = true
			continue
		}
		ret = append(ret, r)
	}
	return ret, removed
}

//按id求差集,old有new没有的要解除,new有old没有的要挂上,两边都有的不动
func DiffTagRefs(oldRefs, newRefs []TagRef) (removed []TagRef, added []TagRef) {
	removed = make([]TagRef, 0)
	added = make([]TagRef, 0)
	for _, r := range oldRefs {
		if !HasTagRef(newRefs, r.ID) {
			removed = append(removed, r)
		}
	}
	for _, r := range newRefs {
		if !HasTagRef(oldRefs, r.ID) {
			added = append(added, r)
		}
	}
	return
}
