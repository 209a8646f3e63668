package dao

import (
	"AlgoDiary/common"
	"encoding/json"
	"reflect"
	"time"
)

//提取数据库的某一列, 提供方法转化为对应类型,不提供错误,自己注意. 另外redis获取的结果都是字符串,需要特判转化
type Col struct {
	data interface{}
}

func (c *Col) ToString() string {
	if s, ok := c.data.(string); ok {
		return s
	}
	return string(c.data.([]byte))
}
func (c *Col) ToInt64() int64 {
	if s, ok := c.data.(string); ok {
		return common.StrToInt64(s)
	}
	return c.data.(int64)
}
func (c *Col) ToInt() int {
	if s, ok := c.data.(string); ok {
		return common.StrToInt(s)
	}
	return int(c.ToInt64())
}
func (c *Col) ToBool() bool {
	if s, ok := c.data.(string); ok {
		return common.StrToBool(s)
	}
	if c.data.(int64) == 1 {
		return true
	}
	return false
}
func (c *Col) ToUint() uint {
	if s, ok := c.data.(string); ok {
		return common.StrToUint(s)
	}
	return uint(c.ToInt64())
}
func (c *Col) ToTime() time.Time {
	t := c.ToString()
	return common.StrToTime(t)
}

//数据库是json序列化的,所以需要反序列化
func (c *Col) GetByteSlice() []byte {
	if reflect.TypeOf(c.data).Kind() == reflect.String {
		return []byte(c.data.(string))
	}
	return c.data.([]byte)
}
func (c *Col) ToStringSlice() []string {
	var res []string
	json.Unmarshal(c.GetByteSlice(), &res)
	if res == nil {
		return make([]string, 0)
	}
	return res
}
