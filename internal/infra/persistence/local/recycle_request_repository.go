package local

import (
	"context"
	"log/slog"
	"sort"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// userDataCollection reads and writes the per-user "userData_<email>" documents.
type userDataCollection struct {
	collection
}

func (c userDataCollection) loadUserData(ctx context.Context, email string) (*model.UserDataRecord, error) {
	data := &model.UserDataRecord{}
	if err := c.load(ctx, UserDataKey(email), data); err != nil {
		return nil, err
	}
	if data.RecycleRequests == nil {
		data.RecycleRequests = []model.RecycleRequestRecord{}
	}
	if data.Notifications == nil {
		data.Notifications = []model.NotificationRecord{}
	}

	return data, nil
}

func (c userDataCollection) saveUserData(ctx context.Context, email string, data *model.UserDataRecord) error {
	return c.save(ctx, UserDataKey(email), data)
}

// ownerEmails lists every registered email in ascending order.
func (c userDataCollection) ownerEmails(ctx context.Context) ([]string, error) {
	users := make(map[string]*model.UserRecord)
	if err := c.load(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	return emails, nil
}

// recycleRequestRepository implements repository.RecycleRequestRepository.
type recycleRequestRepository struct {
	userDataCollection
}

// NewRecycleRequestRepository is the constructor for recycleRequestRepository.
func NewRecycleRequestRepository(store kv.Store, logger *slog.Logger) repository.RecycleRequestRepository {
	return &recycleRequestRepository{userDataCollection{collection{store: store, logger: logger}}}
}

// Submit appends the request to its owner's collection.
func (repo *recycleRequestRepository) Submit(ctx context.Context, request *entity.RecycleRequest) error {
	data, err := repo.loadUserData(ctx, request.OwnerEmail)
	if err != nil {
		return err
	}

	data.RecycleRequests = append(data.RecycleRequests, model.FromRecycleRequestDomain(request))

	return repo.saveUserData(ctx, request.OwnerEmail, data)
}

// ListByOwner returns the owner's requests in insertion order.
func (repo *recycleRequestRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.RecycleRequest, error) {
	data, err := repo.loadUserData(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	return repo.toDomain(ctx, ownerEmail, data.RecycleRequests), nil
}

// ListAll aggregates the requests of every user, owners in email order.
func (repo *recycleRequestRepository) ListAll(ctx context.Context) ([]*entity.RecycleRequest, error) {
	emails, err := repo.ownerEmails(ctx)
	if err != nil {
		return nil, err
	}

	var all []*entity.RecycleRequest
	for _, email := range emails {
		requests, err := repo.ListByOwner(ctx, email)
		if err != nil {
			return nil, err
		}
		all = append(all, requests...)
	}

	return all, nil
}

// FindByID scans every owner's collection for the request.
func (repo *recycleRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecycleRequest, error) {
	all, err := repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, req := range all {
		if req.ID == id {
			return req, nil
		}
	}

	return nil, repository.ErrRequestNotFound
}

// Update replaces the stored request with the same id in the owner's collection.
func (repo *recycleRequestRepository) Update(ctx context.Context, request *entity.RecycleRequest) error {
	data, err := repo.loadUserData(ctx, request.OwnerEmail)
	if err != nil {
		return err
	}

	target := request.ID.String()
	for i := range data.RecycleRequests {
		if data.RecycleRequests[i].ID == target {
			data.RecycleRequests[i] = model.FromRecycleRequestDomain(request)

			return repo.saveUserData(ctx, request.OwnerEmail, data)
		}
	}

	return repository.ErrRequestNotFound
}

func (repo *recycleRequestRepository) toDomain(ctx context.Context, ownerEmail string, records []model.RecycleRequestRecord) []*entity.RecycleRequest {
	result := make([]*entity.RecycleRequest, 0, len(records))
	for i := range records {
		req, err := model.ToRecycleRequestDomain(ownerEmail, &records[i])
		if err != nil {
			repo.warnSkipped(ctx, UserDataKey(ownerEmail), err)

			continue
		}
		result = append(result, req)
	}

	return result
}

// notificationRepository implements repository.NotificationRepository.
type notificationRepository struct {
	userDataCollection
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store kv.Store, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{userDataCollection{collection{store: store, logger: logger}}}
}

// Append adds a notification to the user's list.
func (repo *notificationRepository) Append(ctx context.Context, ownerEmail string, notification *entity.Notification) error {
	data, err := repo.loadUserData(ctx, ownerEmail)
	if err != nil {
		return err
	}

	data.Notifications = append(data.Notifications, model.FromNotificationDomain(notification))

	return repo.saveUserData(ctx, ownerEmail, data)
}

// ListByOwner returns the user's notifications, oldest first.
func (repo *notificationRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.Notification, error) {
	data, err := repo.loadUserData(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Notification, 0, len(data.Notifications))
	for i := range data.Notifications {
		n, err := model.ToNotificationDomain(&data.Notifications[i])
		if err != nil {
			repo.warnSkipped(ctx, UserDataKey(ownerEmail), err)

			continue
		}
		result = append(result, n)
	}

	return result, nil
}

// MarkAllRead flags every unread notification as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, ownerEmail string) (int, error) {
	data, err := repo.loadUserData(ctx, ownerEmail)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range data.Notifications {
		if !data.Notifications[i].Read {
			data.Notifications[i].Read = true
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	if err := repo.saveUserData(ctx, ownerEmail, data); err != nil {
		return 0, err
	}

	return changed, nil
}
