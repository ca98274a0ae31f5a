package storage

import (
	"sync"
	"time"

	"codetutor/internal/config"
	"codetutor/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()

		gormDb, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			panic(err)
		}

		sqlDb, err := gormDb.DB()
		if err != nil {
			log.Error("Failed to get database handle", "error", err)
			panic(err)
		}

		sqlDb.SetMaxOpenConns(25)
		sqlDb.SetMaxIdleConns(10)
		sqlDb.SetConnMaxLifetime(30 * time.Minute)

		db = gormDb
	})

	return db
}
