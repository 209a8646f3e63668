package app

import (
	"AlgoDiary/common"
	"fmt"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

//路由
func InitRouters() {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte("secret")) //启用cookie和session
	store.Options(sessions.Options{
		MaxAge: int(SESSION_EXPIRE),
	})

	r.Use(jsonResponse)
	r.Use(sessions.Sessions("ginSession", store))

	g0 := r.Group("/api") // 无需任何条件的请求
	{
		g0.GET("ping", ping)
		g0.POST("login", login)
		g0.GET("autologin", autologin)
	}

	g1 := r.Group("/api") //需要登陆才能进行的请求
	g1.Use(AuthLogin)
	{
		g1.GET("logout", logout)
		g1.GET("getUserInfo", getUserInfo)

		//problem
		g1.POST("newProblem", newProblem)
		g1.GET("getProblem", getProblem)
		g1.GET("getProblemList", getProblemList)
		g1.POST("updateProblem", updateProblem)
		g1.GET("delProblem", delProblem)

		//pattern
		g1.POST("newPattern", newPattern)
		g1.GET("getPatterns", getPatterns)
		g1.GET("searchPatterns", searchPatterns)
		g1.POST("updatePattern", updatePattern)
		g1.GET("getPatternProblems", getPatternProblems)
		g1.GET("delPattern", delPattern)

		//trick
		g1.POST("newTrick", newTrick)
		g1.GET("getTricks", getTricks)
		g1.GET("searchTricks", searchTricks)
		g1.POST("updateTrick", updateTrick)
		g1.GET("getTrickProblems", getTrickProblems)
		g1.GET("delTrick", delTrick)
	}
	if err := r.Run(common.WebAddr); err != nil {
		fmt.Println("路由初始化错误\n", err.Error())
	}
}
