package model

import (
	"time"
)

const (
	DIFFICULTY_EASY   = "Easy"
	DIFFICULTY_MEDIUM = "Medium"
	DIFFICULTY_HARD   = "Hard"
)

type Problem struct {
	ID             int64     `json:"id" xorm:"pk autoincr"`
	CreatedAt      time.Time `json:"created_at" xorm:"created"`
	UpdatedAt      time.Time `json:"updated_at"`
	LeetcodeNumber int64     `json:"leetcode_number" xorm:"index unique"` //题目编号,创建后不可变
	Title          string    `json:"title" xorm:"varchar(128)"`
	Url            string    `json:"url" xorm:"varchar(255)"`
	Content        string    `json:"content" xorm:"text"`
	Constraints    []string  `json:"constraints"`
	Examples       string    `json:"examples" xorm:"text default '[]'"` //json [{input,output,explanation}]
	Difficulty     string    `json:"difficulty" xorm:"varchar(8) index"`
	Notes          string    `json:"notes" xorm:"text"`
	IsStarred      bool      `json:"is_starred" xorm:"default 0"`
	IsCompleted    bool      `json:"is_completed" xorm:"default 0"`
	Patterns       string    `json:"patterns" xorm:"text default '[]'"` //json [{id,name,description}]
	Tricks         string    `json:"tricks" xorm:"text default '[]'"`   //json 同上
}

func IsDifficulty(s string) bool {
	return s == DIFFICULTY_EASY || s == DIFFICULTY_MEDIUM || s == DIFFICULTY_HARD
}
