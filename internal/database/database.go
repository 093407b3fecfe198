package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/taoyize/vue-flask-blog/config"
	"github.com/taoyize/vue-flask-blog/internal/model"
	"github.com/taoyize/vue-flask-blog/pkg/logger"
)

var DB *gorm.DB

// InitDatabase 按配置初始化数据库连接并迁移表结构
func InitDatabase() {
	databaseConf := config.Conf.Database

	gormConf := &gorm.Config{
		Logger: gormLogLevel(databaseConf.LogLevel),
		// 把驱动层的唯一约束冲突等错误翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch databaseConf.Driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(mysqlDSN(&databaseConf)), gormConf)
	default:
		db, err = gorm.Open(postgres.Open(postgresDSN(&databaseConf)), gormConf)
	}
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取数据库连接失败", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(databaseConf.MaxIdleConns)
	sqlDB.SetMaxOpenConns(databaseConf.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(databaseConf.MaxLifetime) * time.Second)

	// 初始化数据库表
	if err := model.InitTable(db); err != nil {
		logger.Fatal("数据库表迁移失败", zap.Error(err))
	}

	DB = db
	logger.Info("数据库连接成功", zap.String("driver", databaseConf.Driver))
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}

func postgresDSN(c *config.DatabaseConfig) string {
	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=Asia/Shanghai",
		c.Host, c.Username, c.Password, c.Database, c.Port, sslmode)
}

func mysqlDSN(c *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

func gormLogLevel(level string) gormLogger.Interface {
	switch level {
	case "silent":
		return gormLogger.Default.LogMode(gormLogger.Silent)
	case "error":
		return gormLogger.Default.LogMode(gormLogger.Error)
	case "warn":
		return gormLogger.Default.LogMode(gormLogger.Warn)
	default:
		return gormLogger.Default.LogMode(gormLogger.Info)
	}
}
