// Package testutil 提供测试用的内存存储：sqlite顶替MySQL，miniredis顶替Redis。
package testutil

import (
	"path/filepath"
	"testing"

	"clubhouse/internal/model"
	"clubhouse/internal/repository/mysql"
	rediswrap "clubhouse/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB 建一个独立的sqlite库并建表，同时指到包级mysql.DB供服务层使用
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "clubhouse.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Member{}, &model.Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	old := mysql.DB
	mysql.DB = db
	t.Cleanup(func() { mysql.DB = old })
	return db
}

// SetupRedis 起miniredis并指到包级redis.Client；返回实例供操纵TTL
func SetupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	old := rediswrap.Client
	rediswrap.Client = client
	t.Cleanup(func() {
		_ = client.Close()
		rediswrap.Client = old
	})
	return mr
}
