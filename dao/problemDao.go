package dao

import (
	"AlgoDiary/common"
	"AlgoDiary/model"
	"github.com/go-redis/redis/v8"
	"strconv"
	"time"
)

const (
	PROBLEM_REDIS_EXPIRE = 0
	PROBLEM_HASH_KEY     = "problem_hash(number:id)"
	PROBLEM_ZSET_KEY     = "problem_zset" //id作为分数,即创建顺序
)

type (
	Problem = model.Problem
)

type ProblemDao struct {
	ID      int64
	Number  int64 //leetcode编号,作为对外主键
	Problem *Problem
}

func problemInitRedis() {
	problems := make([]Problem, 0)
	engine.Find(&problems)
	for _, item := range problems {
		pd := &ProblemDao{Problem: &item}
		PutToRedis(pd)
	}
}

func (pd *ProblemDao) GetTableName() string {
	return "problem"
}
func (pd *ProblemDao) GetRedisExpire() time.Duration {
	return PROBLEM_REDIS_EXPIRE
}
func (pd *ProblemDao) GetSelf() interface{} {
	if pd.Problem == nil {
		pd.Problem = &Problem{}
	}
	return pd.Problem
}
func (pd *ProblemDao) GetID() int64 {
	if pd.ID == 0 {
		if pd.Problem != nil && pd.Problem.ID != 0 {
			pd.ID = pd.Problem.ID
		} else {
			number := pd.Number
			if number == 0 && pd.Problem != nil {
				number = pd.Problem.LeetcodeNumber
			}
			if number != 0 {
				field := strconv.FormatInt(number, 10)
				if rdb.HExists(ctx, PROBLEM_HASH_KEY, field).Val() {
					pd.ID = common.StrToInt64(rdb.HGet(ctx, PROBLEM_HASH_KEY, field).Val())
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from problem where leetcode_number = ?", number).Get(&x.data); err == nil && ok {
						pd.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return pd.ID
}
func (pd *ProblemDao) GetRedisKey() string {
	return pd.GetTableName() + "_" + strconv.FormatInt(pd.GetID(), 10)
}

func (pd *ProblemDao) GetNumber() int64 {
	if pd.Number == 0 {
		if pd.Problem != nil && pd.Problem.LeetcodeNumber != 0 {
			pd.Number = pd.Problem.LeetcodeNumber
		} else if pd.ID != 0 || (pd.Problem != nil && pd.Problem.ID != 0) {
			pd.Number = OneCol(pd, "leetcode_number").ToInt64()
		}
	}
	return pd.Number
}

func (pd *ProblemDao) BeforePutToRedis() error {
	rdb.HSet(ctx, PROBLEM_HASH_KEY, strconv.FormatInt(pd.GetNumber(), 10), pd.GetID())
	rdb.ZAdd(ctx, PROBLEM_ZSET_KEY, &redis.Z{
		Score:  float64(pd.GetID()),
		Member: pd.GetNumber(),
	})
	return nil
}
func (pd *ProblemDao) BeforeDelete() error {
	number := strconv.FormatInt(pd.GetNumber(), 10)
	rdb.HDel(ctx, PROBLEM_HASH_KEY, number)
	rdb.ZRem(ctx, PROBLEM_ZSET_KEY, number)
	return nil
}

//创建,编号已存在时返回ErrDuplicate且不写入;成功后把引用到的标签都挂上
func (pd *ProblemDao) Created() error {
	if (&ProblemDao{Number: pd.Problem.LeetcodeNumber}).GetID() != 0 {
		return ErrDuplicate
	}
	pd.Problem.UpdatedAt = time.Now()
	if err := Create(pd); err != nil {
		return err
	}
	SyncOnCreate(pd.Problem)
	return nil
}

//部分字段合并更新,编号本身不可变. patterns/tricks传入时按id差量同步引用
func (pd *ProblemDao) Update(mp common.H) error {
	if !Exists(pd) {
		return ErrNotFound
	}
	title := ""
	if t, ok := mp["title"].(string); ok {
		title = t
	} else {
		title = OneCol(pd, "title").ToString()
	}
	ref := model.ProblemRef{LeetcodeNumber: pd.GetNumber(), Title: title}
	if js, ok := mp["patterns"].(string); ok {
		syncTagRefs(PATTERN_REF_COL, OneCol(pd, "patterns").ToString(), js, ref)
	}
	if js, ok := mp["tricks"].(string); ok {
		syncTagRefs(TRICK_REF_COL, OneCol(pd, "tricks").ToString(), js, ref)
	}
	mp["updated_at"] = time.Now()
	return UpdateCols(pd, mp)
}

//删除,不存在时返回false而不是错误. 先解除所有标签引用再删记录
func (pd *ProblemDao) Delete() (bool, error) {
	if pd.GetID() == 0 {
		return false, nil
	}
	if err := GetSelfAll(pd); err != nil {
		return false, err
	}
	SyncOnDelete(pd.Problem)
	if err := Delete(pd); err != nil {
		return true, err
	}
	return true, nil
}

func ProblemCount() int64 {
	return rdb.ZCount(ctx, PROBLEM_ZSET_KEY, "-inf", "+inf").Val()
}

//全量扫描,过滤排序由调用方完成
func AllProblems() []Problem {
	numbers := rdb.ZRange(ctx, PROBLEM_ZSET_KEY, 0, -1).Val()
	ret := make([]Problem, 0, len(numbers))
	for _, number := range numbers {
		pd := &ProblemDao{Number: common.StrToInt64(number)}
		if GetSelfAll(pd) == nil {
			ret = append(ret, *pd.Problem)
		}
	}
	return ret
}
