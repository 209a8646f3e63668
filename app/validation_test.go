package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProblemForm() *problemValidtor {
	return &problemValidtor{
		LeetcodeNumber: 42,
		Title:          "Trapping Rain Water",
		Url:            "https://leetcode.com/problems/trapping-rain-water/",
		Difficulty:     "Hard",
		Constraints:    []string{"1 <= n <= 2 * 10^4"},
		Examples:       []exampleValidtor{{Input: "[0,1,0,2]", Output: "6"}},
		Patterns:       []tagRefValidtor{{Name: "Two Pointers"}},
	}
}

func TestProblemValidtor(t *testing.T) {
	ok, msg := validProblemForm().isOk()
	assert.True(t, ok, msg)

	form := validProblemForm()
	form.Title = ""
	ok, msg = form.isOk()
	assert.False(t, ok)
	assert.NotEmpty(t, msg)

	form = validProblemForm()
	form.LeetcodeNumber = 0
	ok, _ = form.isOk()
	assert.False(t, ok)

	form = validProblemForm()
	form.Difficulty = "Impossible"
	ok, msg = form.isOk()
	assert.False(t, ok)
	assert.Contains(t, msg, "Easy/Medium/Hard")

	//示例缺input/output时dive校验要拦下来
	form = validProblemForm()
	form.Examples = []exampleValidtor{{Input: "", Output: "6"}}
	ok, _ = form.isOk()
	assert.False(t, ok)

	//引用的标签没有名字也要拦下来
	form = validProblemForm()
	form.Patterns = []tagRefValidtor{{Name: ""}}
	ok, _ = form.isOk()
	assert.False(t, ok)
}

func TestTagValidtor(t *testing.T) {
	ok, msg := (&tagValidtor{Name: "Sliding Window", Description: "双指针维护窗口"}).isOk()
	assert.True(t, ok, msg)

	ok, _ = (&tagValidtor{Name: ""}).isOk()
	assert.False(t, ok)

	ok, _ = (&tagValidtor{Name: "   "}).isOk()
	assert.False(t, ok)
}

func TestBuildProblemUpdate(t *testing.T) {
	//编号不可修改
	_, errInfo := buildProblemUpdate(map[string]interface{}{"leetcode_number": float64(7)})
	assert.Equal(t, "编号不可修改", errInfo)

	//未知字段直接报错,不落库
	_, errInfo = buildProblemUpdate(map[string]interface{}{"whatever": "x"})
	assert.Contains(t, errInfo, "不支持修改的字段")

	_, errInfo = buildProblemUpdate(map[string]interface{}{"difficulty": "Impossible"})
	assert.Contains(t, errInfo, "Easy/Medium/Hard")

	_, errInfo = buildProblemUpdate(map[string]interface{}{"is_starred": "yes"})
	assert.Contains(t, errInfo, "字段类型错误")

	_, errInfo = buildProblemUpdate(map[string]interface{}{
		"examples": []interface{}{map[string]interface{}{"input": "", "output": "6"}},
	})
	assert.Contains(t, errInfo, "不能为空")

	_, errInfo = buildProblemUpdate(map[string]interface{}{})
	assert.Equal(t, "没有要修改的内容", errInfo)

	upd, errInfo := buildProblemUpdate(map[string]interface{}{
		"title":       "Two Sum II",
		"is_starred":  true,
		"difficulty":  "Medium",
		"constraints": []interface{}{"2 <= n <= 1000"},
	})
	assert.Equal(t, "", errInfo)
	assert.Equal(t, "Two Sum II", upd["title"])
	assert.Equal(t, true, upd["is_starred"])
	assert.Equal(t, "Medium", upd["difficulty"])
	assert.Equal(t, []string{"2 <= n <= 1000"}, upd["constraints"])
}
