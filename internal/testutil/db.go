// Package testutil 提供测试用的内存数据库和数据构造函数
package testutil

import (
	"testing"

	"holonet-go/internal/infra/database"
	"holonet-go/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB 创建已迁移的内存 SQLite 数据库
// 单连接，保证同一测试内所有查询看到同一个内存库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func Str(s string) *string { return &s }

func Int64(v int64) *int64 { return &v }

func CreateUser(t testing.TB, db *gorm.DB, id int64, email string) *model.User {
	t.Helper()
	u := &model.User{ID: id, Email: email, Password: "secret", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreatePlanet(t testing.TB, db *gorm.DB, id int64, name string) *model.Planet {
	t.Helper()
	p := &model.Planet{ID: id, Name: name, Climate: Str("arid"), Terrain: Str("desert")}
	require.NoError(t, db.Create(p).Error)
	return p
}

func CreateCharacter(t testing.TB, db *gorm.DB, id int64, name string) *model.Character {
	t.Helper()
	c := &model.Character{ID: id, Name: name, BirthYear: Str("19BBY"), Gender: Str("male")}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateVehicle(t testing.TB, db *gorm.DB, id int64, name string) *model.Vehicle {
	t.Helper()
	v := &model.Vehicle{ID: id, Name: name, Model: Str("T-65 X-wing starfighter"), Price: Int64(150000)}
	require.NoError(t, db.Create(v).Error)
	return v
}
