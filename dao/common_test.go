package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

//redis取出的都是字符串,数据库取出的是原生类型,两边都要能转
func TestColConversions(t *testing.T) {
	assert.Equal(t, "Hash Map", (&Col{data: "Hash Map"}).ToString())
	assert.Equal(t, "Hash Map", (&Col{data: []byte("Hash Map")}).ToString())

	assert.Equal(t, int64(42), (&Col{data: "42"}).ToInt64())
	assert.Equal(t, int64(42), (&Col{data: int64(42)}).ToInt64())
	assert.Equal(t, 42, (&Col{data: "42"}).ToInt())
	assert.Equal(t, uint(3), (&Col{data: "3"}).ToUint())
	assert.Equal(t, uint(3), (&Col{data: int64(3)}).ToUint())

	assert.True(t, (&Col{data: "1"}).ToBool())
	assert.True(t, (&Col{data: int64(1)}).ToBool())
	assert.False(t, (&Col{data: "0"}).ToBool())
	assert.False(t, (&Col{data: int64(0)}).ToBool())

	ts := (&Col{data: "2024-05-01 12:00:00"}).ToTime()
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local), ts)
}

func TestColToStringSlice(t *testing.T) {
	assert.Equal(t, []string{"1 <= n <= 100"}, (&Col{data: `["1 <= n <= 100"]`}).ToStringSlice())
	assert.Equal(t, []string{}, (&Col{data: "null"}).ToStringSlice())
	assert.Equal(t, []string{}, (&Col{data: []byte("[]")}).ToStringSlice())
}
