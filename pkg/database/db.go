package database

import (
	"PromptLib/config"
	"PromptLib/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接，dsn 为空或连接失败时返回 nil
func NewDB(conf *config.Config) *gorm.DB {
	if conf.Database == nil || conf.Database.Dsn == "" {
		log.L.Warn("database dsn is empty, storage disabled")
		return nil
	}

	dialector, err := Dialector(conf.Database)
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil
	}

	gormConf := &gorm.Config{}
	if conf.Database.Debug {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

func Dialector(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		return mysql.Open(conf.Dsn), nil
	case config.DriverPostgres, "":
		return postgres.Open(conf.Dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", conf.Driver)
	}
}
