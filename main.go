// @title iStudy Lab 后端 API
// @version 1.0
// @description iStudy Lab 学习平台的学习进度与测验服务。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"fmt"
	"istudy_lab_backend/internal/app"
	"istudy_lab_backend/internal/config"
	"istudy_lab_backend/internal/model"
	"istudy_lab_backend/internal/util"
	"istudy_lab_backend/pkg/logger"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	issueToken := flag.Uint("issue-token", 0, "为指定用户ID签发JWT后退出（本地调试用）")
	issueRole := flag.String("issue-role", string(model.Student), "签发JWT时使用的角色: student/teacher/admin")
	flag.Parse()

	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *issueToken > 0 {
		token, err := util.GenerateJWT(uint(*issueToken), "", model.UserRole(*issueRole), cfg.JWT.Secret, cfg.JWT.ExpireTime)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
