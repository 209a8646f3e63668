package dao

import (
	"AlgoDiary/common"
	"AlgoDiary/model"
	"context"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"xorm.io/core"
)

type H = map[string]interface{}

var (
	engine *xorm.Engine    //数据库引擎(这里用的mysql)
	rdb    *redis.Client   //redis
	ctx    context.Context //默认值
)

//连接mysql数据库和redis
func connect(cfg H) error {
	var err error
	if mysql, ok := cfg["mysql"].(H); !ok {
		return errors.New("读取mysql配置失败")
	} else {
		dataSourceName := mysql["name"].(string) + ":" + mysql["password"].(string) + "@tcp(" + mysql["host"].(string) + ")/" + mysql["database"].(string) + "?charset=utf8"
		engine, err = xorm.NewEngine("mysql", dataSourceName)
		if err != nil {
			return err
		}
		err = engine.Ping()
		if err != nil {
			return err
		}
		engine.SetMapper(core.GonicMapper{})
	}

	if rds, ok := cfg["redis"].(H); !ok {
		return errors.New("读取redis配置失败")
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     rds["addr"].(string),
			Password: rds["password"].(string),
			DB:       0,
		})
		ctx = context.TODO()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return err
		}
	}
	return nil
}

// mysql表同步和redis初始化
func sync(cfg H) error {
	if err := engine.Sync2(new(model.User)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Problem)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Pattern)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.Trick)); err != nil {
		return err
	}

	userInitRedis()
	problemInitRedis()
	patternInitRedis()
	trickInitRedis()
	//占位用户,没有注册功能
	if defaultUser, ok := cfg["default_user"].(H); !ok {
		return errors.New("读取default_user配置失败")
	} else {
		ud := &UserDao{Username: defaultUser["name"].(string)}
		if ud.GetID() == 0 {
			ud.User = &User{
				Username: defaultUser["name"].(string),
				Password: common.GetMD5Password(defaultUser["password"].(string)),
				Avatar:   defaultUser["avatar"].(string),
			}
			if err := ud.Create(); err != nil {
				return err
			}
			fmt.Println("默认用户初始化创建完成!!!")
		}
	}
	return nil
}

func Init(cfg H) error {
	if err := connect(cfg); err != nil {
		return err
	}
	if err := sync(cfg); err != nil {
		return err
	}
	return nil
}
