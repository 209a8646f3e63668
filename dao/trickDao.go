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
	TRICK_REDIS_EXPIRE = 0
	TRICK_HASH_KEY     = "trick_hash(name:id)"
	TRICK_ZSET_KEY     = "trick_zset" //负usage_count作为分数
	TRICK_REF_COL      = "tricks"
)

type Trick = model.Trick

type TrickDao struct {
	ID    int64
	Name  string
	Trick *Trick
}

func trickInitRedis() {
	tricks := make([]Trick, 0)
	engine.Find(&tricks)
	for _, item := range tricks {
		td := &TrickDao{Trick: &item}
		PutToRedis(td)
	}
}

func (td *TrickDao) GetTableName() string {
	return "trick"
}
func (td *TrickDao) GetRedisExpire() time.Duration {
	return TRICK_REDIS_EXPIRE
}
func (td *TrickDao) GetSelf() interface{} {
	if td.Trick == nil {
		td.Trick = &Trick{}
	}
	return td.Trick
}
func (td *TrickDao) GetName() string {
	if td.Name == "" {
		if td.Trick != nil && td.Trick.Name != "" {
			td.Name = td.Trick.Name
		} else {
			td.Name = OneCol(td, "name").ToString()
		}
	}
	return td.Name
}
func (td *TrickDao) GetID() int64 {
	if td.ID == 0 {
		if td.Trick != nil && td.Trick.ID != 0 {
			td.ID = td.Trick.ID
		} else {
			name := td.Name
			if name == "" && td.Trick != nil {
				name = td.Trick.Name
			}
			if name != "" {
				if rdb.HExists(ctx, TRICK_HASH_KEY, name).Val() {
					td.ID = common.StrToInt64(rdb.HGet(ctx, TRICK_HASH_KEY, name).Val())
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from trick where name = ?", name).Get(&x.data); err == nil && ok {
						td.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return td.ID
}
func (td *TrickDao) GetRedisKey() string {
	return td.GetTableName() + "_" + strconv.FormatInt(td.GetID(), 10)
}

func (td *TrickDao) BeforePutToRedis() error {
	rdb.HSet(ctx, TRICK_HASH_KEY, td.GetName(), td.GetID())
	rdb.ZAdd(ctx, TRICK_ZSET_KEY, &redis.Z{
		Score:  -float64(td.Trick.UsageCount),
		Member: td.GetID(),
	})
	return nil
}
func (td *TrickDao) BeforeDelete() error {
	rdb.HDel(ctx, TRICK_HASH_KEY, td.GetName())
	rdb.ZRem(ctx, TRICK_ZSET_KEY, td.GetID())
	return nil
}

func (td *TrickDao) RefreshOrder() {
	rdb.ZAdd(ctx, TRICK_ZSET_KEY, &redis.Z{
		Score:  -float64(OneCol(td, "usage_count").ToUint()),
		Member: td.GetID(),
	})
}
func (td *TrickDao) RefCol() string {
	return TRICK_REF_COL
}

//按名字查找或创建. 已存在时原样返回,不重置usage
func FindOrCreateTrick(name, description string) (*Trick, error) {
	td := &TrickDao{Name: name}
	if td.GetID() != 0 {
		if err := GetSelfAll(td); err != nil {
			return nil, err
		}
		return td.Trick, nil
	}
	td.Trick = &Trick{
		Name:        name,
		Description: description,
		UsageCount:  0,
		Problems:    "[]",
	}
	if err := Create(td); err != nil {
		return nil, err
	}
	return td.Trick, nil
}

//全量列出,按usage_count降序
func GetTricks() []Trick {
	ids := rdb.ZRange(ctx, TRICK_ZSET_KEY, 0, -1).Val()
	ret := make([]Trick, 0, len(ids))
	for _, id := range ids {
		td := &TrickDao{ID: common.StrToInt64(id)}
		if GetSelfAll(td) == nil {
			ret = append(ret, *td.Trick)
		}
	}
	return ret
}

//名字的大小写不敏感子串匹配
func SearchTricks(query string) []Trick {
	query = strings.ToLower(query)
	mp := rdb.HGetAll(ctx, TRICK_HASH_KEY).Val()
	ret := make([]Trick, 0)
	for name, id := range mp {
		if !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		td := &TrickDao{ID: common.StrToInt64(id)}
		if GetSelfAll(td) == nil {
			ret = append(ret, *td.Trick)
		}
	}
	return ret
}

func (td *TrickDao) Update(mp common.H) error {
	if !Exists(td) {
		return ErrNotFound
	}
	oldName := td.GetName()
	if err := UpdateCols(td, mp); err != nil {
		return err
	}
	if newName, ok := mp["name"].(string); ok && newName != oldName {
		rdb.HDel(ctx, TRICK_HASH_KEY, oldName)
		td.Name = newName
		rdb.HSet(ctx, TRICK_HASH_KEY, newName, td.GetID())
	}
	return nil
}

func (td *TrickDao) Delete() (bool, error) {
	if td.GetID() == 0 || !Exists(td) {
		return false, nil
	}
	detachTagFromProblems(td, TRICK_REF_COL)
	if err := Delete(td); err != nil {
		return true, err
	}
	return true, nil
}
