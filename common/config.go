package common

import (
	"errors"
)

type H = map[string]interface{}

var WebAddr string

func Init(cfg H) error {
	var ok bool
	WebAddr, ok = cfg["address"].(string)
	if !ok {
		return errors.New("监听地址加载错误")
	}
	return nil
}
