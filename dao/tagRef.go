package dao

import (
	"AlgoDiary/common"
	"AlgoDiary/model"
	sync2 "sync"
	"time"
)

//引用维护: problem.patterns/tricks 与 pattern/trick.problems+usage_count 的双向一致性.
//usage_count恒等于problems列表长度,两者在同一条UPDATE里落库,中间不会被撕裂

var (
	tag_update_mutex sync2.Mutex
)

//PatternDao和TrickDao都实现这个接口,引用维护统一处理
type TagData interface {
	SingleData
	RefreshOrder()  //usage变化后刷新排序zset
	RefCol() string //problem表里对应的正向引用列名
}

func tagDaoOf(col string, id int64) TagData {
	if col == PATTERN_REF_COL {
		return &PatternDao{ID: id}
	}
	return &TrickDao{ID: id}
}

//挂上一个题目引用,幂等. 标签不存在时静默忽略,题目写入不因此失败
func Attach(td TagData, ref model.ProblemRef) {
	if td.GetID() == 0 || !Exists(td) {
		return
	}
	tag_update_mutex.Lock()
	defer tag_update_mutex.Unlock()
	refs := model.ParseProblemRefs(OneCol(td, "problems").ToString())
	refs, added := model.AddProblemRef(refs, ref)
	if !added {
		return
	}
	UpdateCols(td, common.H{
		"problems":    model.DumpProblemRefs(refs),
		"usage_count": uint(len(refs)),
	})
	td.RefreshOrder()
}

//解除一个题目引用,幂等. 确实删掉了才会变usage,不会出现负数
func Detach(td TagData, number int64) {
	if td.GetID() == 0 || !Exists(td) {
		return
	}
	tag_update_mutex.Lock()
	defer tag_update_mutex.Unlock()
	refs := model.ParseProblemRefs(OneCol(td, "problems").ToString())
	refs, removed := model.RemoveProblemRef(refs, number)
	if !removed {
		return
	}
	UpdateCols(td, common.H{
		"problems":    model.DumpProblemRefs(refs),
		"usage_count": uint(len(refs)),
	})
	td.RefreshOrder()
}

//创建题目后,把它列出的所有标签都挂上
func SyncOnCreate(p *model.Problem) {
	ref := model.ProblemRef{LeetcodeNumber: p.LeetcodeNumber, Title: p.Title}
	for _, r := range model.ParseTagRefs(p.Patterns) {
		Attach(&PatternDao{ID: r.ID}, ref)
	}
	for _, r := range model.ParseTagRefs(p.Tricks) {
		Attach(&TrickDao{ID: r.ID}, ref)
	}
}

//删除题目前,把它列出的所有标签都解除
func SyncOnDelete(p *model.Problem) {
	for _, r := range model.ParseTagRefs(p.Patterns) {
		Detach(&PatternDao{ID: r.ID}, p.LeetcodeNumber)
	}
	for _, r := range model.ParseTagRefs(p.Tricks) {
		Detach(&TrickDao{ID: r.ID}, p.LeetcodeNumber)
	}
}

//更新时的差量同步,新旧引用按id比对. 挂上时带的是更新后的标题
func syncTagRefs(col string, oldJs, newJs string, ref model.ProblemRef) {
	removed, added := model.DiffTagRefs(model.ParseTagRefs(oldJs), model.ParseTagRefs(newJs))
	for _, r := range removed {
		Detach(tagDaoOf(col, r.ID), ref.LeetcodeNumber)
	}
	for _, r := range added {
		Attach(tagDaoOf(col, r.ID), ref)
	}
}

//删除标签时反向级联: 从每个引用它的题目里摘掉正向引用
func detachTagFromProblems(td TagData, col string) {
	id := td.GetID()
	refs := model.ParseProblemRefs(OneCol(td, "problems").ToString())
	for _, r := range refs {
		pd := &ProblemDao{Number: r.LeetcodeNumber}
		if pd.GetID() == 0 {
			continue
		}
		tagRefs := model.ParseTagRefs(OneCol(pd, col).ToString())
		tagRefs, removed := model.RemoveTagRef(tagRefs, id)
		if !removed {
			continue
		}
		UpdateCols(pd, common.H{col: model.DumpTagRefs(tagRefs), "updated_at": time.Now()})
	}
}
