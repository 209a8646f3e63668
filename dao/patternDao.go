package dao

import (
	"AlgoDiary/common"
	"AlgoDiary/model"
	"github.com/go-redis/redis/v8"
	"strconv"
	"strings"
	"time"
)

const (
	PATTERN_REDIS_EXPIRE = 0
	PATTERN_HASH_KEY     = "pattern_hash(name:id)"
	PATTERN_ZSET_KEY     = "pattern_zset" //负usage_count作为分数,引用多的靠前
	PATTERN_REF_COL      = "patterns"     //problem表里的正向引用列
)

type Pattern = model.Pattern

type PatternDao struct {
	ID      int64
	Name    string
	Pattern *Pattern
}

func patternInitRedis() {
	patterns := make([]Pattern, 0)
	engine.Find(&patterns)
	for _, item := range patterns {
		qd := &PatternDao{Pattern: &item}
		PutToRedis(qd)
	}
}

func (qd *PatternDao) GetTableName() string {
	return "pattern"
}
func (qd *PatternDao) GetRedisExpire() time.Duration {
	return PATTERN_REDIS_EXPIRE
}
func (qd *PatternDao) GetSelf() interface{} {
	if qd.Pattern == nil {
		qd.Pattern = &Pattern{}
	}
	return qd.Pattern
}
func (qd *PatternDao) GetName() string {
	if qd.Name == "" {
		if qd.Pattern != nil && qd.Pattern.Name != "" {
			qd.Name = qd.Pattern.Name
		} else {
			qd.Name = OneCol(qd, "name").ToString()
		}
	}
	return qd.Name
}
func (qd *PatternDao) GetID() int64 {
	if qd.ID == 0 {
		if qd.Pattern != nil && qd.Pattern.ID != 0 {
			qd.ID = qd.Pattern.ID
		} else {
			name := qd.Name
			if name == "" && qd.Pattern != nil {
				name = qd.Pattern.Name
			}
			if name != "" {
				if rdb.HExists(ctx, PATTERN_HASH_KEY, name).Val() {
					qd.ID = common.StrToInt64(rdb.HGet(ctx, PATTERN_HASH_KEY, name).Val())
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from pattern where name = ?", name).Get(&x.data); err == nil && ok {
						qd.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return qd.ID
}
func (qd *PatternDao) GetRedisKey() string {
	return qd.GetTableName() + "_" + strconv.FormatInt(qd.GetID(), 10)
}

func (qd *PatternDao) BeforePutToRedis() error {
	rdb.HSet(ctx, PATTERN_HASH_KEY, qd.GetName(), qd.GetID())
	rdb.ZAdd(ctx, PATTERN_ZSET_KEY, &redis.Z{
		Score:  -float64(qd.Pattern.UsageCount),
		Member: qd.GetID(),
	})
	return nil
}
func (qd *PatternDao) BeforeDelete() error {
	rdb.HDel(ctx, PATTERN_HASH_KEY, qd.GetName())
	rdb.ZRem(ctx, PATTERN_ZSET_KEY, qd.GetID())
	return nil
}

//usage变化后刷新排序zset
func (qd *PatternDao) RefreshOrder() {
	rdb.ZAdd(ctx, PATTERN_ZSET_KEY, &redis.Z{
		Score:  -float64(OneCol(qd, "usage_count").ToUint()),
		Member: qd.GetID(),
	})
}
func (qd *PatternDao) RefCol() string {
	return PATTERN_REF_COL
}

//按名字查找或创建. 已存在时原样返回,不重置usage
func FindOrCreatePattern(name, description string) (*Pattern, error) {
	qd := &PatternDao{Name: name}
	if qd.GetID() != 0 {
		if err := GetSelfAll(qd); err != nil {
			return nil, err
		}
		return qd.Pattern, nil
	}
	qd.Pattern = &Pattern{
		Name:        name,
		Description: description,
		UsageCount:  0, //挂上第一个题目引用时才会变成1
		Problems:    "[]",
	}
	if err := Create(qd); err != nil {
		return nil, err
	}
	return qd.Pattern, nil
}

//全量列出,按usage_count降序
func GetPatterns() []Pattern {
	ids := rdb.ZRange(ctx, PATTERN_ZSET_KEY, 0, -1).Val()
	ret := make([]Pattern, 0, len(ids))
	for _, id := range ids {
		qd := &PatternDao{ID: common.StrToInt64(id)}
		if GetSelfAll(qd) == nil {
			ret = append(ret, *qd.Pattern)
		}
	}
	return ret
}

//名字的大小写不敏感子串匹配,一次全量扫描即可
func SearchPatterns(query string) []Pattern {
	query = strings.ToLower(query)
	mp := rdb.HGetAll(ctx, PATTERN_HASH_KEY).Val()
	ret := make([]Pattern, 0)
	for name, id := range mp {
		if !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		qd := &PatternDao{ID: common.StrToInt64(id)}
		if GetSelfAll(qd) == nil {
			ret = append(ret, *qd.Pattern)
		}
	}
	return ret
}

//只更新name/description,usage和引用列表不在这里动.
//题目侧冗余的名字快照会滞后,直到下一次写该题目时才刷新
func (qd *PatternDao) Update(mp common.H) error {
	if !Exists(qd) {
		return ErrNotFound
	}
	oldName := qd.GetName()
	if err := UpdateCols(qd, mp); err != nil {
		return err
	}
	if newName, ok := mp["name"].(string); ok && newName != oldName {
		rdb.HDel(ctx, PATTERN_HASH_KEY, oldName)
		qd.Name = newName
		rdb.HSet(ctx, PATTERN_HASH_KEY, newName, qd.GetID())
	}
	return nil
}

//删除标签,先把引用它的题目逐个摘干净再删行
func (qd *PatternDao) Delete() (bool, error) {
	if qd.GetID() == 0 || !Exists(qd) {
		return false, nil
	}
	detachTagFromProblems(qd, PATTERN_REF_COL)
	if err := Delete(qd); err != nil {
		return true, err
	}
	return true, nil
}
