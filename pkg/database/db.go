package database

import (
	"time"

	"Quill/config"
	"Quill/models"
	"Quill/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接，唯一键冲突会被翻译成 gorm.ErrDuplicatedKey
func NewDB(conf *config.Config) *gorm.DB {
	logLevel := logger.Warn
	if conf.Debug() {
		logLevel = logger.Info
	}
	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.L.Info("connect database success", zap.String("host", conf.MySQL.Host), zap.String("database", conf.MySQL.Database))
	return db
}

// Migrate 建表与索引，关系表的唯一索引由此创建
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.AllModels()...)
}
