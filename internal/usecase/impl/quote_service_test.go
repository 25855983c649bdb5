package impl

import (
	"context"
	"testing"
	"time"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitTestRequest(t *testing.T, fx *storeFixture, owner string) uuid.UUID {
	t.Helper()

	fx.loginAs(t, owner, entity.RoleCustomer)
	id, err := fx.quoteService().Submit(context.Background(), usecase.SubmitRequestInput{
		DeviceType:        "laptop",
		Brand:             "Lenovo",
		Model:             "T480",
		DeviceDescription: "Boots, keyboard missing two keys",
		Condition:         entity.ConditionFair,
		Images:            []string{"data:image/png;base64,AAA"},
	})
	require.NoError(t, err)

	return id
}

func TestQuoteService_Submit(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()

	id := submitTestRequest(t, fx, "cust@example.com")

	requests, err := fx.quoteService().ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, id, requests[0].ID)
	assert.Equal(t, entity.RequestPending, requests[0].Status)
	assert.Nil(t, requests[0].QuoteAmount)
	assert.Equal(t, "cust@example.com", requests[0].OwnerEmail)
	assert.Equal(t, testNow, requests[0].CreatedAt)
}

func TestQuoteService_Submit_Validation(t *testing.T) {
	valid := usecase.SubmitRequestInput{
		DeviceType:        "phone",
		DeviceDescription: "Cracked screen",
		Condition:         entity.ConditionPoor,
	}

	tests := []struct {
		name   string
		mutate func(in *usecase.SubmitRequestInput)
	}{
		{name: "blank type", mutate: func(in *usecase.SubmitRequestInput) { in.DeviceType = "  " }},
		{name: "blank description", mutate: func(in *usecase.SubmitRequestInput) { in.DeviceDescription = "" }},
		{name: "unknown condition", mutate: func(in *usecase.SubmitRequestInput) { in.Condition = "Mint" }},
		{name: "too many images", mutate: func(in *usecase.SubmitRequestInput) { in.Images = []string{"a", "b", "c", "d"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newStoreFixture(t)
			fx.loginAs(t, "cust@example.com", entity.RoleCustomer)
			input := valid
			tt.mutate(&input)

			_, err := fx.quoteService().Submit(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestQuoteService_Submit_DropsEmptyImages(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()
	fx.loginAs(t, "cust@example.com", entity.RoleCustomer)

	id, err := fx.quoteService().Submit(ctx, usecase.SubmitRequestInput{
		DeviceType:        "tablet",
		DeviceDescription: "Works",
		Condition:         entity.ConditionGood,
		Images:            []string{"", "a", "", "b", "c", ""},
	})
	require.NoError(t, err)

	request, err := fx.requestRepo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, request.SubmittedImages)
}

func TestQuoteService_Submit_RequiresCustomer(t *testing.T) {
	fx := newStoreFixture(t)
	fx.loginAs(t, "co@example.com", entity.RoleCompany)

	_, err := fx.quoteService().Submit(context.Background(), usecase.SubmitRequestInput{
		DeviceType: "phone", DeviceDescription: "x", Condition: entity.ConditionGood,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQuoteService_SetQuote(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()
	id := submitTestRequest(t, fx, "cust@example.com")
	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)

	_, err := fx.quoteService().SetQuote(ctx, id, decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	request, err := fx.quoteService().SetQuote(ctx, id, decimal.RequireFromString("80.25"))
	require.NoError(t, err)
	assert.Equal(t, entity.RequestQuoted, request.Status)
	assert.True(t, request.QuoteAmount.Equal(decimal.RequireFromString("80.25")))

	// Re-quoting a Quoted request replaces the amount.
	request, err = fx.quoteService().SetQuote(ctx, id, decimal.NewFromInt(90))
	require.NoError(t, err)
	assert.True(t, request.QuoteAmount.Equal(decimal.NewFromInt(90)))

	notifications, err := fx.notifyRepo.ListByOwner(ctx, "cust@example.com")
	require.NoError(t, err)
	assert.Len(t, notifications, 2)

	_, err = fx.quoteService().SetQuote(ctx, uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestQuoteService_SetStatus_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		prepare   []entity.RequestStatus // applied after an initial quote when quoted is true
		quoted    bool
		target    entity.RequestStatus
		wantError error
	}{
		{name: "pending to pending", target: entity.RequestPending, wantError: domainerrors.ErrInvalidTransition},
		{name: "pending to completed", target: entity.RequestCompleted, wantError: domainerrors.ErrInvalidTransition},
		{name: "pending to quoted without amount", target: entity.RequestQuoted, wantError: domainerrors.ErrValidationFailed},
		{name: "pending to rejected", target: entity.RequestRejected},
		{name: "quoted to pending", quoted: true, target: entity.RequestPending, wantError: domainerrors.ErrInvalidTransition},
		{name: "quoted to quoted", quoted: true, target: entity.RequestQuoted, wantError: domainerrors.ErrInvalidTransition},
		{name: "quoted to rejected", quoted: true, target: entity.RequestRejected},
		{name: "rejected to quoted", prepare: []entity.RequestStatus{entity.RequestRejected}, target: entity.RequestQuoted, wantError: domainerrors.ErrInvalidTransition},
		{name: "rejected to pending", prepare: []entity.RequestStatus{entity.RequestRejected}, target: entity.RequestPending, wantError: domainerrors.ErrInvalidTransition},
		{name: "completed to rejected", quoted: true, prepare: []entity.RequestStatus{entity.RequestCompleted}, target: entity.RequestRejected, wantError: domainerrors.ErrInvalidTransition},
		{name: "completed to pending", quoted: true, prepare: []entity.RequestStatus{entity.RequestCompleted}, target: entity.RequestPending, wantError: domainerrors.ErrInvalidTransition},
		{name: "unknown status", target: "Archived", wantError: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newStoreFixture(t)
			ctx := context.Background()
			id := submitTestRequest(t, fx, "cust@example.com")
			fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
			srv := fx.quoteService()

			if tt.quoted {
				_, err := srv.SetQuote(ctx, id, decimal.NewFromInt(100))
				require.NoError(t, err)
			}
			for _, status := range tt.prepare {
				_, err := srv.SetStatus(ctx, id, status)
				require.NoError(t, err)
			}
			before, err := fx.requestRepo.FindByID(ctx, id)
			require.NoError(t, err)

			request, err := srv.SetStatus(ctx, id, tt.target)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				after, findErr := fx.requestRepo.FindByID(ctx, id)
				require.NoError(t, findErr)
				assert.Equal(t, before.Status, after.Status)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, request.Status)
		})
	}
}

func TestQuoteService_SetQuote_TerminalFails(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()
	id := submitTestRequest(t, fx, "cust@example.com")
	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)

	_, err := fx.quoteService().SetStatus(ctx, id, entity.RequestRejected)
	require.NoError(t, err)

	_, err = fx.quoteService().SetQuote(ctx, id, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestQuoteService_Complete_CreatesDeviceAndAwardsPoints(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()
	id := submitTestRequest(t, fx, "cust@example.com")
	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
	srv := fx.quoteService()

	_, err := srv.SetQuote(ctx, id, decimal.RequireFromString("75.50"))
	require.NoError(t, err)
	request, err := srv.SetStatus(ctx, id, entity.RequestCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestCompleted, request.Status)

	devices, err := fx.inventoryRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	device := devices[0]
	assert.Equal(t, entity.DeviceLaptop, device.Type)
	assert.Equal(t, "Lenovo", device.Brand)
	assert.True(t, device.Value.Equal(decimal.RequireFromString("75.50")))
	assert.Equal(t, entity.DeviceAvailable, device.Status)
	require.NotNil(t, device.SourceRequestID)
	assert.Equal(t, id, *device.SourceRequestID)
	// floor(75.50 * 1.5) = 113
	assert.Equal(t, 113, device.PointsAwarded)

	owner, err := fx.userRepo.FindByEmail(ctx, "cust@example.com")
	require.NoError(t, err)
	assert.Equal(t, 113, owner.Profile.Points)

	notifications, err := fx.notifyRepo.ListByOwner(ctx, "cust@example.com")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, entity.NotificationRequestComplete, notifications[1].Type)
}

func TestQuoteService_ListAll_And_Recent(t *testing.T) {
	fx := newStoreFixture(t)
	ctx := context.Background()

	srv := fx.quoteService()
	var ids []uuid.UUID
	for i, owner := range []string{"b@example.com", "a@example.com", "b@example.com"} {
		srv.now = func() time.Time { return testNow.Add(time.Duration(i) * time.Hour) }
		fx.loginAs(t, owner, entity.RoleCustomer)
		id, err := srv.Submit(ctx, usecase.SubmitRequestInput{
			DeviceType: "phone", DeviceDescription: "x", Condition: entity.ConditionGood,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	_, err := srv.ListAll(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	fx.loginAs(t, "admin@example.com", entity.RoleAdmin)
	all, err := srv.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Owners in email order, each owner's requests in submission order.
	assert.Equal(t, []uuid.UUID{ids[1], ids[0], ids[2]}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	recent, err := srv.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[2], recent[0].ID)
	assert.Equal(t, ids[1], recent[1].ID)
}
