package main

import (
	"flag"
	"fmt"

	"kursa-go/internal/config"
	"kursa-go/internal/infra/database"
	"kursa-go/internal/model"
	"kursa-go/internal/repository"
	"kursa-go/pkg/logger"
	"kursa-go/pkg/utils"

	"go.uber.org/zap"
)

// 编辑账号只能通过本工具创建，注册接口不开放编辑身份。
func main() {
	var (
		configPath = flag.String("config", "configs/config.yaml", "配置文件路径")
		username   = flag.String("username", "", "编辑用户名")
		email      = flag.String("email", "", "编辑邮箱")
		password   = flag.String("password", "", "编辑密码")
	)
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		fmt.Println("Usage: seed -username <name> -email <email> -password <password>")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, "stdout", ""); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Video{},
		&model.Material{},
		&model.Review{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(database.Get())

	if exists, err := userRepo.ExistsByUsername(*username); err != nil {
		logger.Fatal("Check username failed", zap.Error(err))
	} else if exists {
		logger.Fatal("Username already taken", zap.String("username", *username))
	}
	if exists, err := userRepo.ExistsByEmail(*email); err != nil {
		logger.Fatal("Check email failed", zap.Error(err))
	} else if exists {
		logger.Fatal("Email already registered", zap.String("email", *email))
	}

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		logger.Fatal("Hash password failed", zap.Error(err))
	}

	user := &model.User{
		Username: *username,
		Email:    *email,
		Password: hashed,
		IsEditor: true,
	}
	if err := userRepo.Create(user); err != nil {
		logger.Fatal("Create editor failed", zap.Error(err))
	}

	logger.Info("Editor account created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)
}
