package postgres

import (
	"context"
	"strings"

	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// kvStore implements kv.Store on the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// NewKVStore is the constructor for the postgres-backed key-value store.
func NewKVStore(db *gorm.DB) kv.Store {
	return &kvStore{db: db}
}

// Migrate creates the kv_entries table when it does not exist.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate kv_entries")
	}

	return nil
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntryModel
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to get %s", key)
	}

	return entry.Value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if err := upsertEntry(s.db.WithContext(ctx), key, value); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	return nil
}

func (s *kvStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntryModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to remove %s", key)
	}

	return nil
}

// Apply writes the batch inside one database transaction.
func (s *kvStore) Apply(ctx context.Context, mutations []kv.Mutation) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range mutations {
			if m.Delete {
				if err := tx.Where("key = ?", m.Key).Delete(&model.KVEntryModel{}).Error; err != nil {
					return err
				}

				continue
			}
			if err := upsertEntry(tx, m.Key, m.Value); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply batch")
	}

	return nil
}

func (s *kvStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&model.KVEntryModel{}).
		Where(`key LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}

	return keys, nil
}

func upsertEntry(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model.KVEntryModel{Key: key, Value: value}).Error
}
