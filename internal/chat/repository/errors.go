package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"gotravel/internal/common"
)

const mysqlDuplicateEntry = 1062

// translateError maps driver errors onto the chat error taxonomy.
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, common.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, common.ErrRoomCreateConflict)
	case errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry:
		return fmt.Errorf("%s: %w", what, common.ErrRoomCreateConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return fmt.Errorf("%s: %w: %v", what, common.ErrStoreUnavailable, err)
}
