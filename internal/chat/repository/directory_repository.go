package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gotravel/internal/chat/models"
	"gotravel/internal/dbmysql"
)

type directoryRepo struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepo{db: db}
}

func (r *directoryRepo) GuideProfileByID(ctx context.Context, profileID string) (*models.GuideProfile, error) {
	var row dbmysql.GuideProfile
	if err := r.db.WithContext(ctx).Where("id = ?", profileID).Take(&row).Error; err != nil {
		return nil, translateError(err, "guide profile "+profileID)
	}
	return row.ToModel(), nil
}

func (r *directoryRepo) AccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	var row dbmysql.Account
	if err := r.db.WithContext(ctx).Where("id = ?", accountID).Take(&row).Error; err != nil {
		return nil, translateError(err, "account "+accountID)
	}
	return row.ToModel(), nil
}

func (r *directoryRepo) AccountsByIDs(ctx context.Context, accountIDs []string) ([]*models.Account, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	var rows []dbmysql.Account
	if err := r.db.WithContext(ctx).Where("id IN ?", accountIDs).Find(&rows).Error; err != nil {
		return nil, translateError(err, "accounts")
	}

	accounts := make([]*models.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].ToModel())
	}
	return accounts, nil
}

type blockRepo struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepo{db: db}
}

func (r *blockRepo) IsBlocked(ctx context.Context, a, b string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, "check block")
	}
	return count > 0, nil
}

func (r *blockRepo) Block(ctx context.Context, blockerID, blockedID string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbmysql.Block{BlockerID: blockerID, BlockedID: blockedID}).Error
	return translateError(err, "block")
}

func (r *blockRepo) Unblock(ctx context.Context, blockerID, blockedID string) error {
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&dbmysql.Block{}).Error
	return translateError(err, "unblock")
}
