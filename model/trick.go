package model

import (
	"time"
)

//和Pattern结构一致,分表存储
type Trick struct {
	ID          int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt   time.Time `json:"created_at" xorm:"created"`
	Name        string    `json:"name" xorm:"varchar(64) unique index"`
	Description string    `json:"description" xorm:"text"`
	UsageCount  uint      `json:"usage_count" xorm:"default 0"`
	Problems    string    `json:"problems" xorm:"text default '[]'"`
}
