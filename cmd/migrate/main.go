package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"sasku-server/internal/config"
	"sasku-server/pkg/db"
)

func main() {
	dbh := waitForDB()
	if err := db.Migrate(dbh, config.Instance().Store.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return dbh
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
