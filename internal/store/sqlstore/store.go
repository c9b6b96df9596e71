package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/models"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	"github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	pgUniqueViolation = "23505"
)

type SQLStore struct {
	db         *sql.DB
	driverName string
}

var _ store.Store = (*SQLStore)(nil)

func New(ctx context.Context, driverName, dataSourceName string) (*SQLStore, error) {
	if driverName != DriverSQLite && driverName != DriverPostgres {
		return nil, fmt.Errorf("unsupported driver %q", driverName)
	}

	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if driverName == DriverSQLite {
		// every new connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(ctx, db, driverName); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLStore{db: db, driverName: driverName}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Helper to handle placeholders
func (s *SQLStore) rebind(query string) string {
	if s.driverName == DriverPostgres {
		// Replace ? with $1, $2, etc.
		n := strings.Count(query, "?")
		for i := 1; i <= n; i++ {
			query = strings.Replace(query, "?", fmt.Sprintf("$%d", i), 1)
		}
	}
	return query
}

const userColumns = "id, username, password, email, phone, location, bio, post, gender, created_at, updated_at"

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var gender string
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Phone, &u.Location, &u.Bio, &u.Post, &gender, timestamp{&u.CreatedAt}, timestamp{&u.UpdatedAt})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	u.Gender = models.Gender(gender)
	return &u, nil
}

// CreateUser inserts the record and fills in its ID and timestamps.
func (s *SQLStore) CreateUser(ctx context.Context, user *models.User) error {
	query := s.rebind(`INSERT INTO users (username, password, email, phone, location, bio, post, gender)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`)

	err := s.db.QueryRowContext(ctx, query,
		user.Username, user.Password, user.Email, user.Phone, user.Location, user.Bio, user.Post, string(user.Gender),
	).Scan(&user.ID, timestamp{&user.CreatedAt}, timestamp{&user.UpdatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := s.rebind("SELECT " + userColumns + " FROM users WHERE username = ?")
	return scanUser(s.db.QueryRowContext(ctx, query, username))
}

// UpdateUserProfile overwrites every mutable column in one statement. The
// username is the key and is never written.
func (s *SQLStore) UpdateUserProfile(ctx context.Context, username string, f models.ProfileFields) (*models.User, error) {
	query := s.rebind(`UPDATE users
		SET email = ?, phone = ?, location = ?, bio = ?, post = ?, gender = ?, updated_at = CURRENT_TIMESTAMP
		WHERE username = ?
		RETURNING ` + userColumns)

	return scanUser(s.db.QueryRowContext(ctx, query,
		f.Email, f.Phone, f.Location, f.Bio, f.Post, string(f.Gender), username))
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
