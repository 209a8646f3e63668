package model

import (
	"time"
)

type Pattern struct {
	ID          int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt   time.Time `json:"created_at" xorm:"created"`
	Name        string    `json:"name" xorm:"varchar(64) unique index"`
	Description string    `json:"description" xorm:"text"`
	UsageCount  uint      `json:"usage_count" xorm:"default 0"`      //恒等于problems列表长度
	Problems    string    `json:"problems" xorm:"text default '[]'"` //json [{leetcode_number,title}]
}
