package sqlstore

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

var testStore *SQLStore

func SetupTestDB(t *testing.T) {
	var err error
	testStore, err = New(context.Background(), DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
}

func TeardownTestDB() {
	testStore.db.Close()
}

func TestNew_UnsupportedDriver(t *testing.T) {
	if _, err := New(context.Background(), "mysql", "whatever"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	if err := migrate(context.Background(), testStore.db, DriverSQLite); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
}

func TestRebind(t *testing.T) {
	pg := &SQLStore{driverName: DriverPostgres}
	lite := &SQLStore{driverName: DriverSQLite}

	q := "UPDATE users SET a = ?, b = ? WHERE username = ?"
	if got, want := pg.rebind(q), "UPDATE users SET a = $1, b = $2 WHERE username = $3"; got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
	if got := lite.rebind(q); got != q {
		t.Errorf("sqlite rebind changed the query: %q", got)
	}
}
