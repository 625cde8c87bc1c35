package mysql

import (
	"context"
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"loan-application-api/internal/domain/application"
)

// insert creates v and turns a failure into an *application.StatementError
// carrying the table, the rendered statement and the MySQL error number.
func insert(ctx context.Context, db *gorm.DB, table string, v any) error {
	res := db.WithContext(ctx).Create(v)
	if res.Error == nil {
		return nil
	}
	se := &application.StatementError{Table: table, Err: res.Error}
	if res.Statement != nil {
		se.SQL = res.Statement.SQL.String()
	}
	var me *mysqldrv.MySQLError
	if errors.As(res.Error, &me) {
		se.Code = me.Number
		se.SQLState = string(me.SQLState[:])
	}
	return se
}
