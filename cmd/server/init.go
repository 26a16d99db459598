package main

import (
	"context"

	"shindora_cms/config"
	catalogmodels "shindora_cms/internal/api/catalog/models"
	sitemodels "shindora_cms/internal/api/site/models"
	"shindora_cms/internal/database"
	"shindora_cms/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Settings = "settings"
	global.MongoDB_ColNames.Pages = "pages"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, slug)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexModels := map[string]interface{}{
		global.MongoDB_ColNames.Videos:     catalogmodels.Video{},
		global.MongoDB_ColNames.Categories: catalogmodels.Category{},
		global.MongoDB_ColNames.Pages:      sitemodels.Page{},
	}
	for colName, model := range indexModels {
		if err := database.CreateIndexes(context.TODO(), db.Collection(colName), model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", colName, err)
		}
	}
	logrus.Info("Created collection indexes")
}
