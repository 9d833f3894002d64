package model

import (
	"os"
	"strings"

	"standards-hub/backend/common"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() (err error) {
	var dbInstance *gorm.DB
	dsn := os.Getenv("SQL_DSN")

	if dsn != "" {
		common.SysLog("Using MySQL database")
		dbInstance, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	} else {
		common.SysLog("SQL_DSN not set, using SQLite as database: " + common.SQLitePath)
		dbInstance, err = gorm.Open(sqlite.Open(sqliteDSN(common.SQLitePath)), &gorm.Config{
			PrepareStmt: true,
		})
	}

	if err != nil {
		common.SysError("failed to connect database: " + err.Error())
		return err
	}

	DB = dbInstance

	err = DB.AutoMigrate(
		&Standard{},
		&File{},
	)
	if err != nil {
		common.SysError("failed to auto migrate database schema: " + err.Error())
		return err
	}

	if err = SeedDefaultStandards(); err != nil {
		common.SysError("failed to seed default standards: " + err.Error())
		return err
	}

	common.SysLog("Database initialized successfully.")
	return nil
}

// sqliteDSN appends a busy timeout so concurrent writers wait instead of failing
// with SQLITE_BUSY.
func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=3000"
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("Closing database connection.")
	return sqlDB.Close()
}
