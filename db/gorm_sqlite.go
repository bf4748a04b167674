package db

import (
	"log"
	"os"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"
)

func NewGormSQLite(dbName string) (*GORM, error) {
	g := new(GORM)

	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{Logger: gLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gLogger.Config{LogLevel: gLogger.Silent},
	)})
	if err != nil {
		return nil, syncerr.Storage("[NewGormSQLite] opening "+dbName, err)
	}

	g.SetDB(db)

	return g, nil
}
