package db

import (
	"log"
	"os"
	"testing"
)

var testDao *DbDao

func TestMain(m *testing.M) {
	conn, err := GetDbConn("trinkets_test", "localhost", "5432", "postgres", "password")
	if err != nil {
		log.Printf("database not available, integration tests will be skipped: %v", err)
	} else {
		testDao = NewDbDao(conn)
		if err := testDao.InitMigrate(); err != nil {
			log.Printf("migration failed, integration tests will be skipped: %v", err)
			testDao = nil
		}
	}

	code := m.Run()

	if testDao != nil {
		if sqlDB, err := testDao.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	os.Exit(code)
}
