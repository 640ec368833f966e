package database

import (
	"strings"
	"testing"
)

func TestConnectSQLiteInMemory(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, DSN: "file:conn_test?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if one != 1 {
		t.Errorf("expected 1, got %d", one)
	}
}

func TestConnectUnknownDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle", DSN: "x"})
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN("db", "app", "secret", "inventario", "5432")
	for _, part := range []string{"host=db", "user=app", "password=secret", "dbname=inventario", "port=5432"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn %q missing %q", dsn, part)
		}
	}
}
