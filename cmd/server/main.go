package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/taoyize/vue-flask-blog/config"
	"github.com/taoyize/vue-flask-blog/internal/database"
	"github.com/taoyize/vue-flask-blog/internal/route"
	"github.com/taoyize/vue-flask-blog/pkg/logger"
)

func main() {
	defer logger.Sync()

	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()

	// 3. 设置路由
	r := route.SetupRouter(database.GetDB())

	// 4. 启动服务
	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	logger.Info("服务启动", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("服务启动失败", zap.Error(err))
	}
}
