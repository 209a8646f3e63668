package app

import (
	"AlgoDiary/common"
	"AlgoDiary/dao"
	"AlgoDiary/model"
	"github.com/gin-gonic/gin"
)

func patternToH(p *dao.Pattern) common.H {
	return common.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"usage_count": p.UsageCount,
		"created_at":  p.CreatedAt.Format(common.TIME_FORMAT),
	}
}

func trickToH(t *dao.Trick) common.H {
	return common.H{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"usage_count": t.UsageCount,
		"created_at":  t.CreatedAt.Format(common.TIME_FORMAT),
	}
}

//查找或创建,同名已存在时原样返回
func newPattern(c *gin.Context) {
	form := new(tagValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	p, err := dao.FindOrCreatePattern(form.Name, form.Description)
	if err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("pattern", patternToH(p))
}

func newTrick(c *gin.Context) {
	form := new(tagValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	t, err := dao.FindOrCreateTrick(form.Name, form.Description)
	if err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("trick", trickToH(t))
}

//全量列出,按usage降序
func getPatterns(c *gin.Context) {
	ps := dao.GetPatterns()
	data := make([]common.H, len(ps))
	for i := range ps {
		data[i] = patternToH(&ps[i])
	}
	c.Set("data", data)
}

func getTricks(c *gin.Context) {
	ts := dao.GetTricks()
	data := make([]common.H, len(ts))
	for i := range ts {
		data[i] = trickToH(&ts[i])
	}
	c.Set("data", data)
}

//名字子串搜索,空查询等于全量
func searchPatterns(c *gin.Context) {
	ps := dao.SearchPatterns(c.DefaultQuery("q", ""))
	data := make([]common.H, len(ps))
	for i := range ps {
		data[i] = patternToH(&ps[i])
	}
	c.Set("data", data)
}

func searchTricks(c *gin.Context) {
	ts := dao.SearchTricks(c.DefaultQuery("q", ""))
	data := make([]common.H, len(ts))
	for i := range ts {
		data[i] = trickToH(&ts[i])
	}
	c.Set("data", data)
}

//只改name/description,引用列表和usage不在这里动
func updatePattern(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	if id == 0 {
		setError(c, 403, "参数错误")
		return
	}
	form := new(tagValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	qd := &dao.PatternDao{ID: id}
	if err := qd.Update(common.H{"name": form.Name, "description": form.Description}); err != nil {
		if err == dao.ErrNotFound {
			setError(c, 403, "找不到该标签")
		} else {
			setError(c, 500, err.Error())
		}
		return
	}
	c.Set("result", "ok")
}

func updateTrick(c *gin.Context) {
	id := common.StrToInt64(c.DefaultPostForm("id", "0"))
	if id == 0 {
		setError(c, 403, "参数错误")
		return
	}
	form := new(tagValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	td := &dao.TrickDao{ID: id}
	if err := td.Update(common.H{"name": form.Name, "description": form.Description}); err != nil {
		if err == dao.ErrNotFound {
			setError(c, 403, "找不到该标签")
		} else {
			setError(c, 500, err.Error())
		}
		return
	}
	c.Set("result", "ok")
}

//某个标签关联的所有题目引用
func getPatternProblems(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	qd := &dao.PatternDao{ID: id}
	if id == 0 || !dao.Exists(qd) {
		setError(c, 403, "找不到该标签")
		return
	}
	c.Set("data", model.ParseProblemRefs(dao.OneCol(qd, "problems").ToString()))
}

func getTrickProblems(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	td := &dao.TrickDao{ID: id}
	if id == 0 || !dao.Exists(td) {
		setError(c, 403, "找不到该标签")
		return
	}
	c.Set("data", model.ParseProblemRefs(dao.OneCol(td, "problems").ToString()))
}

//删除标签,引用它的题目会被级联摘除
func delPattern(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	if id == 0 {
		setError(c, 403, "参数错误")
		return
	}
	qd := &dao.PatternDao{ID: id}
	deleted, err := qd.Delete()
	if err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("deleted", deleted)
}

func delTrick(c *gin.Context) {
	id := common.StrToInt64(c.DefaultQuery("id", "0"))
	if id == 0 {
		setError(c, 403, "参数错误")
		return
	}
	td := &dao.TrickDao{ID: id}
	deleted, err := td.Delete()
	if err != nil {
		setError(c, 500, err.Error())
		return
	}
	c.Set("deleted", deleted)
}
