package app

import (
	"AlgoDiary/common"
	"AlgoDiary/dao"
	"AlgoDiary/model"
	"encoding/json"
	"github.com/gin-gonic/gin"
)

//json值之间的互转
func remarshal(v interface{}, dst interface{}) error {
	bt, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(bt, dst)
}

//把传入的pattern引用解析成规范引用: 带id的以库里快照为准,不带id的按名字查找或创建
func resolvePatternRefs(items []tagRefValidtor) ([]model.TagRef, string) {
	refs := make([]model.TagRef, 0, len(items))
	for _, item := range items {
		ref := model.TagRef{ID: item.ID, Name: item.Name, Description: item.Description}
		if item.ID == 0 {
			p, err := dao.FindOrCreatePattern(item.Name, item.Description)
			if err != nil {
				return nil, err.Error()
			}
			ref = model.TagRef{ID: p.ID, Name: p.Name, Description: p.Description}
		} else {
			qd := &dao.PatternDao{ID: item.ID}
			if dao.Exists(qd) {
				cols := dao.Cols(qd, "name", "description")
				ref.Name, ref.Description = cols[0].ToString(), cols[1].ToString()
			}
		}
		if !model.HasTagRef(refs, ref.ID) {
			refs = append(refs, ref)
		}
	}
	return refs, ""
}

func resolveTrickRefs(items []tagRefValidtor) ([]model.TagRef, string) {
	refs := make([]model.TagRef, 0, len(items))
	for _, item := range items {
		ref := model.TagRef{ID: item.ID, Name: item.Name, Description: item.Description}
		if item.ID == 0 {
			t, err := dao.FindOrCreateTrick(item.Name, item.Description)
			if err != nil {
				return nil, err.Error()
			}
			ref = model.TagRef{ID: t.ID, Name: t.Name, Description: t.Description}
		} else {
			td := &dao.TrickDao{ID: item.ID}
			if dao.Exists(td) {
				cols := dao.Cols(td, "name", "description")
				ref.Name, ref.Description = cols[0].ToString(), cols[1].ToString()
			}
		}
		if !model.HasTagRef(refs, ref.ID) {
			refs = append(refs, ref)
		}
	}
	return refs, ""
}

func dumpExamples(examples []exampleValidtor) string {
	if examples == nil {
		examples = make([]exampleValidtor, 0)
	}
	js, _ := json.Marshal(examples)
	return string(js)
}

func newProblem(c *gin.Context) {
	form := new(problemValidtor)
	if err := c.ShouldBindJSON(form); err != nil {
		setError(c, 403, "参数错误")
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	patterns, errInfo := resolvePatternRefs(form.Patterns)
	if errInfo != "" {
		setError(c, 500, errInfo)
		return
	}
	tricks, errInfo := resolveTrickRefs(form.Tricks)
	if errInfo != "" {
		setError(c, 500, errInfo)
		return
	}
	pd := &dao.ProblemDao{
		Problem: &dao.Problem{
			LeetcodeNumber: form.LeetcodeNumber,
			Title:          form.Title,
			Url:            form.Url,
			Content:        form.Content,
			Constraints:    form.Constraints,
			Examples:       dumpExamples(form.Examples),
			Difficulty:     form.Difficulty,
			Notes:          form.Notes,
			Patterns:       model.DumpTagRefs(patterns),
			Tricks:         model.DumpTagRefs(tricks),
		},
	}
	if err := pd.Created(); err != nil {
		if err == dao.ErrDuplicate {
			setError(c, 403, "该编号的题目已存在")
		} else {
			setError(c, 500, err.Error())
		}
		return
	}
	c.Set("leetcode_number", pd.Problem.LeetcodeNumber)
	c.Set("created_at", pd.Problem.CreatedAt.Format(common.TIME_FORMAT))
}

func getProblem(c *gin.Context) {
	number := common.StrToInt64(c.DefaultQuery("number", "0"))
	if number == 0 {
		setError(c, 403, "参数错误")
		return
	}
	pd := &dao.ProblemDao{Number: number}
	if err := dao.GetSelfAll(pd); err != nil {
		setError(c, 403, "找不到题目")
		return
	}
	p := pd.Problem
	c.Set("problem", common.H{
		"leetcode_number": p.LeetcodeNumber,
		"title":           p.Title,
		"url":             p.Url,
		"content":         p.Content,
		"constraints":     p.Constraints,
		"examples":        p.Examples,
		"difficulty":      p.Difficulty,
		"notes":           p.Notes,
		"is_starred":      p.IsStarred,
		"is_completed":    p.IsCompleted,
		"patterns":        p.Patterns,
		"tricks":          p.Tricks,
		"created_at":      p.CreatedAt.Format(common.TIME_FORMAT),
		"updated_at":      p.UpdatedAt.Format(common.TIME_FORMAT),
	})
}

//列表页,无分页,条件全部AND组合
func getProblemList(c *gin.Context) {
	f := &problemFilter{
		Difficulty: c.DefaultQuery("difficulty", "all"),
		Search:     c.DefaultQuery("search", ""),
		Starred:    common.StrToBool(c.DefaultQuery("starred", "false")),
		Completed:  common.StrToBool(c.DefaultQuery("completed", "false")),
	}
	ps := filterProblems(dao.AllProblems(), f)
	sortProblems(ps, c.DefaultQuery("sort", SORT_LATEST))
	data := make([]common.H, len(ps))
	for i := range ps {
		p := &ps[i]
		data[i] = common.H{
			"leetcode_number": p.LeetcodeNumber,
			"title":           p.Title,
			"url":             p.Url,
			"difficulty":      p.Difficulty,
			"is_starred":      p.IsStarred,
			"is_completed":    p.IsCompleted,
			"patterns":        p.Patterns,
			"tricks":          p.Tricks,
			"created_at":      p.CreatedAt.Format(common.TIME_FORMAT),
		}
	}
	c.Set("data", data)
	c.Set("total", len(data))
}

//把更新json整理成UpdateCols需要的map,非法字段直接报错
func buildProblemUpdate(mp common.H) (common.H, string) {
	upd := make(common.H)
	for k, v := range mp {
		switch k {
		case "title", "url", "content", "notes":
			s, ok := v.(string)
			if !ok {
				return nil, "字段类型错误: " + k
			}
			upd[k] = s
		case "difficulty":
			s, ok := v.(string)
			if !ok || !model.IsDifficulty(s) {
				return nil, "Difficulty 必须是 Easy/Medium/Hard 之一"
			}
			upd[k] = s
		case "is_starred", "is_completed":
			b, ok := v.(bool)
			if !ok {
				return nil, "字段类型错误: " + k
			}
			upd[k] = b
		case "constraints":
			var cs []string
			if err := remarshal(v, &cs); err != nil {
				return nil, "字段类型错误: constraints"
			}
			upd[k] = cs
		case "examples":
			var es []exampleValidtor
			if err := remarshal(v, &es); err != nil {
				return nil, "字段类型错误: examples"
			}
			for _, e := range es {
				if e.Input == "" || e.Output == "" {
					return nil, "示例的input/output不能为空"
				}
			}
			upd[k] = dumpExamples(es)
		case "patterns", "tricks":
			var items []tagRefValidtor
			if err := remarshal(v, &items); err != nil {
				return nil, "字段类型错误: " + k
			}
			for _, item := range items {
				if item.ID == 0 && item.Name == "" {
					return nil, "标签名不能为空"
				}
			}
			var refs []model.TagRef
			var errInfo string
			if k == "patterns" {
				refs, errInfo = resolvePatternRefs(items)
			} else {
				refs, errInfo = resolveTrickRefs(items)
			}
			if errInfo != "" {
				return nil, errInfo
			}
			upd[k] = model.DumpTagRefs(refs)
		case "leetcode_number":
			return nil, "编号不可修改"
		default:
			return nil, "不支持修改的字段: " + k
		}
	}
	if len(upd) == 0 {
		return nil, "没有要修改的内容"
	}
	return upd, ""
}

func updateProblem(c *gin.Context) {
	js := c.DefaultPostForm("json", "")
	number := common.StrToInt64(c.DefaultPostForm("number", "0"))
	if js == "" || number == 0 {
		setError(c, 403, "参数错误")
		return
	}
	mp := make(common.H)
	if err := json.Unmarshal([]byte(js), &mp); err != nil {
		setError(c, 403, "参数错误")
		return
	}
	upd, errInfo := buildProblemUpdate(mp)
	if errInfo != "" {
		setError(c, 403, errInfo)
		return
	}
	pd := &dao.ProblemDao{Number: number}
	if err := pd.Update(upd); err != nil {
		if err == dao.ErrNotFound {
			setError(c, 403, "找不到题目")
		} else {
			setError(c, 500, err.Error())
		}
		return
	}
	c.Set("result", "ok")
}

func delProblem(c *gin.Context) {
	number := common.StrToInt64(c.DefaultQuery("number", "0"))
	if number == 0 {
		setError(c, 403, "参数错误")
		return
	}
	pd := &dao.ProblemDao{Number: number}
	deleted, err := pd.Delete()
	if err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("deleted", deleted) //不存在时false,不算错误
}
