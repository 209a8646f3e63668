package app

import (
	"AlgoDiary/dao"
	"AlgoDiary/model"
	"sort"
	"strings"
)

//getProblemList的过滤与排序,全是组合条件(AND)

const (
	SORT_LATEST = "latest"
	SORT_OLDEST = "oldest"
	SORT_TITLE  = "a-z"
)

type problemFilter struct {
	Difficulty string //空或all表示不限
	Search     string //标题或所挂pattern名字的子串,大小写不敏感
	Starred    bool
	Completed  bool
}

func matchProblem(p *dao.Problem, f *problemFilter) bool {
	if f.Difficulty != "" && f.Difficulty != "all" && p.Difficulty != f.Difficulty {
		return false
	}
	if f.Starred && !p.IsStarred {
		return false
	}
	if f.Completed && !p.IsCompleted {
		return false
	}
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		if strings.Contains(strings.ToLower(p.Title), query) {
			return true
		}
		for _, r := range model.ParseTagRefs(p.Patterns) {
			if strings.Contains(strings.ToLower(r.Name), query) {
				return true
			}
		}
		return false
	}
	return true
}

func filterProblems(ps []dao.Problem, f *problemFilter) []dao.Problem {
	ret := make([]dao.Problem, 0, len(ps))
	for i := range ps {
		if matchProblem(&ps[i], f) {
			ret = append(ret, ps[i])
		}
	}
	return ret
}

//同一时刻只有一种排序,默认latest
func sortProblems(ps []dao.Problem, order string) {
	switch order {
	case SORT_OLDEST:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].CreatedAt.Before(ps[j].CreatedAt)
		})
	case SORT_TITLE:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Title < ps[j].Title
		})
	default:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[j].CreatedAt.Before(ps[i].CreatedAt)
		})
	}
}
