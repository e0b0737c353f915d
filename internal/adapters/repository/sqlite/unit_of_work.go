package sqlite

import (
	"context"
	"database/sql"
	"vidshare/internal/core/port"
)

type sqliteUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqliteUnitOfWork{db: db}
}

func (u *sqliteUnitOfWork) VideoRepo() port.VideoRepository {
	if u.tx != nil {
		return NewVideoRepository(u.tx)
	}
	return NewVideoRepository(u.db)
}

func (u *sqliteUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&sqliteUnitOfWork{db: u.db, tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
