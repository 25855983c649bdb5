package local

import (
	"context"
	"log/slog"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// inventoryRepository implements repository.InventoryRepository on "recyclingDevices".
type inventoryRepository struct {
	collection
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(store kv.Store, logger *slog.Logger) repository.InventoryRepository {
	return &inventoryRepository{collection{store: store, logger: logger}}
}

func (repo *inventoryRepository) loadAll(ctx context.Context) ([]*entity.InventoryDevice, error) {
	var records []model.InventoryDeviceRecord
	if err := repo.load(ctx, KeyDevices, &records); err != nil {
		return nil, err
	}

	devices := make([]*entity.InventoryDevice, 0, len(records))
	for i := range records {
		device, err := model.ToInventoryDeviceDomain(&records[i])
		if err != nil {
			repo.warnSkipped(ctx, KeyDevices, err)

			continue
		}
		devices = append(devices, device)
	}

	return devices, nil
}

func (repo *inventoryRepository) saveAll(ctx context.Context, devices []*entity.InventoryDevice) error {
	records := make([]model.InventoryDeviceRecord, 0, len(devices))
	for _, d := range devices {
		records = append(records, model.FromInventoryDeviceDomain(d))
	}

	return repo.save(ctx, KeyDevices, records)
}

// List returns every device in insertion order.
func (repo *inventoryRepository) List(ctx context.Context) ([]*entity.InventoryDevice, error) {
	return repo.loadAll(ctx)
}

// FindByID retrieves a device by id.
func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryDevice, error) {
	devices, err := repo.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range devices {
		if d.ID == id {
			return d, nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

// Create appends a device.
func (repo *inventoryRepository) Create(ctx context.Context, device *entity.InventoryDevice) error {
	devices, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	return repo.saveAll(ctx, append(devices, device))
}

// Update replaces the device with the same id.
func (repo *inventoryRepository) Update(ctx context.Context, device *entity.InventoryDevice) error {
	devices, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	for i, d := range devices {
		if d.ID == device.ID {
			devices[i] = device

			return repo.saveAll(ctx, devices)
		}
	}

	return repository.ErrDeviceNotFound
}

// MarkOrdered validates every id before changing any device.
func (repo *inventoryRepository) MarkOrdered(ctx context.Context, ids []uuid.UUID, info entity.OrderInfo) error {
	devices, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	index := make(map[uuid.UUID]*entity.InventoryDevice, len(devices))
	for _, d := range devices {
		index[d.ID] = d
	}

	for _, id := range ids {
		d, ok := index[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		if !d.IsAvailable() {
			return repository.ErrDeviceAlreadyOrdered
		}
	}

	for _, id := range ids {
		d := index[id]
		orderInfo := info
		d.Status = entity.DeviceOrdered
		d.OrderInfo = &orderInfo
	}

	return repo.saveAll(ctx, devices)
}

// CountByType counts devices per type.
func (repo *inventoryRepository) CountByType(ctx context.Context) (map[entity.DeviceType]int, error) {
	devices, err := repo.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.DeviceType]int)
	for _, d := range devices {
		counts[d.Type]++
	}

	return counts, nil
}
