package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Person{},
		&Event{},
		&Participant{},
	)
}

// DropTables removes every table owned by the service, dependants first.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&Participant{}, &Event{}, &Person{})
}

func pgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}

	return nil, false
}

func isUniqueViolation(err error) bool {
	_, ok := pgError(err, pgerrcode.UniqueViolation)
	return ok
}

func isCheckViolation(err error) bool {
	_, ok := pgError(err, pgerrcode.CheckViolation)
	return ok
}

func isForeignKeyViolation(err error) bool {
	_, ok := pgError(err, pgerrcode.ForeignKeyViolation)
	return ok
}
