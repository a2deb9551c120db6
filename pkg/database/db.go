package database

import (
	"Engage/config"
	"Engage/models"
	"Engage/pkg/log"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
// 整个进程共享一个连接池，每个请求通过 WithContext 借出/归还连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:  NewGormLogger(conf.MySQL.LogLevel, conf.MySQL.SlowThreshold),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get database connection", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.MySQL.MaxLifetime)

	log.L.Info("connect database success",
		zap.String("host", conf.MySQL.Host),
		zap.String("database", conf.MySQL.Database),
	)
	return db
}

// Migrate 建表/补索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// Ping 健康检查
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
