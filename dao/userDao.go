package dao

import (
	"AlgoDiary/common"
	"AlgoDiary/model"
	"strconv"
	"time"
)

const (
	USER_REDIS_EXPIRE = 0 //用户在redis的超时时间,不过期
	USER_HASH_KEY     = "user_hash(name:id)"
)

type User = model.User

type UserDao struct {
	ID       int64
	Username string
	User     *User
}

func userInitRedis() {
	users := make([]User, 0)
	engine.Find(&users)
	for _, item := range users {
		ud := &UserDao{User: &item}
		PutToRedis(ud)
	}
}

func (ud *UserDao) GetRedisExpire() time.Duration {
	return USER_REDIS_EXPIRE
}
func (ud *UserDao) GetTableName() string {
	return "user"
}
func (ud *UserDao) GetSelf() interface{} {
	if ud.User == nil {
		ud.User = &User{}
	}
	return ud.User
}
func (ud *UserDao) GetName() string {
	if ud.Username == "" {
		if ud.User != nil && ud.User.Username != "" {
			ud.Username = ud.User.Username
		} else {
			ud.Username = OneCol(ud, "username").ToString()
		}
	}
	return ud.Username
}

func (ud *UserDao) GetRedisKey() string { //必须有id
	return ud.GetTableName() + "_" + strconv.FormatInt(ud.GetID(), 10)
}
func (ud *UserDao) GetID() int64 {
	if ud.ID == 0 {
		if ud.User != nil && ud.User.ID != 0 {
			ud.ID = ud.User.ID
		} else {
			name := ud.Username
			if name == "" && ud.User != nil {
				name = ud.User.Username
			}
			if name != "" {
				if rdb.HExists(ctx, USER_HASH_KEY, name).Val() {
					ud.ID = common.StrToInt64(rdb.HGet(ctx, USER_HASH_KEY, name).Val())
				} else {
					x := new(Col)
					if ok, err := engine.SQL("select id from user where username = ?", name).Get(&x.data); err == nil && ok {
						ud.ID = x.ToInt64()
					}
				}
			}
		}
	}
	return ud.ID
}

func (ud *UserDao) BeforePutToRedis() error {
	rdb.HSet(ctx, USER_HASH_KEY, ud.GetName(), ud.GetID())
	return nil
}

func (ud *UserDao) BeforeDelete() error {
	rdb.HDel(ctx, USER_HASH_KEY, ud.GetName())
	return nil
}

func (ud *UserDao) Create() error {
	return Create(ud)
}

func (ud *UserDao) Update(mp map[string]interface{}) error {
	if err := UpdateCols(ud, mp); err != nil {
		return err
	}
	if newName, ok := mp["username"]; ok {
		ud.Username = newName.(string)
		ud.BeforePutToRedis()
	}
	return nil
}
