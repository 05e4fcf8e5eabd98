package database

import (
	"fmt"
	"log"
	"os"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是全局共享的数据库句柄。
// 不要直接赋值，统一通过 InitDB / EnsureDB 初始化。
var DB *gorm.DB

// initMu 保护DB的惰性初始化，保证并发调用不会打开重复连接。
var initMu sync.Mutex

// openDB 打开SQLite连接并开启外键约束。
func openDB(path string) (*gorm.DB, error) {
	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent, // 在生产环境中可以设为Silent
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true, // 使gorm.ErrDuplicatedKey在SQLite上可用
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}
	return db, nil
}

// EnsureDB 惰性初始化全局数据库句柄。
// 初始化失败时DB保持为nil，下一次调用会重新尝试，而不是永久卡在失败状态。
func EnsureDB(path string) error {
	initMu.Lock()
	defer initMu.Unlock()

	if DB != nil {
		return nil
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}

	// 只有完全构造成功后才发布句柄
	DB = db
	fmt.Println("数据库连接成功！")
	return nil
}

// InitDB 在应用启动路径上初始化数据库连接，失败直接panic退出。
func InitDB(path string) {
	if err := EnsureDB(path); err != nil {
		fmt.Println("连接数据库失败", err)
		panic(err)
	}
}
