package app

import (
	"AlgoDiary/common"
	"AlgoDiary/dao"
	"github.com/gin-gonic/gin"
)

func ping(c *gin.Context) {
	c.Set("ping", "pong")
}

func autologin(c *gin.Context) {
	id := getUserID(c)
	if id != 0 {
		ud := &dao.UserDao{ID: id}
		c.Set("username", getUserName(c))
		c.Set("avatar", dao.OneCol(ud, "avatar").ToString())
		return
	}
	setError(c, 401, "未登录")
}

//登陆请求
func login(c *gin.Context) {
	if isLogin(c) {
		deleteSession(c)
	}
	form := new(loginValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	ud := &dao.UserDao{Username: form.Username}
	id := ud.GetID()
	if id <= 0 {
		setError(c, 403, "用户名不存在")
		return
	}
	if pwd := dao.OneCol(ud, "password").ToString(); pwd != common.GetMD5Password(form.Password) {
		setError(c, 403, "密码错误")
		return
	}
	if !dao.IsInRedis(ud) {
		dao.GetSelfAll(ud)
		dao.PutToRedis(ud)
	}
	setSession(c, ud.GetName(), ud.GetID())
	autologin(c)
}

func logout(c *gin.Context) {
	deleteSession(c)
	c.Set("msg", "退出成功")
}

func getUserInfo(c *gin.Context) {
	ud := &dao.UserDao{ID: getUserID(c)}
	cols := dao.Cols(ud, "username", "avatar", "created_at")
	c.Set("username", cols[0].ToString())
	c.Set("avatar", cols[1].ToString())
	c.Set("created_at", cols[2].ToString())
	c.Set("problem_count", dao.ProblemCount())
}
