package model

import (
	"time"
)

//单用户占位记录,启动时根据配置创建
type User struct {
	ID        int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt time.Time `json:"created_at" xorm:"created"`
	Username  string    `json:"username" xorm:"VARBINARY(64) unique index notnull"`
	Password  string    `json:"password" xorm:"VARBINARY(32) notnull"`
	Avatar    string    `json:"avatar"`
}
