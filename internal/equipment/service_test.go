package equipment_test

import (
	"context"
	"testing"

	"schedule-service/internal/activity"
	"schedule-service/internal/apperr"
	"schedule-service/internal/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockActivityRepo struct {
	activity.Repository
	mock.Mock
}

func (m *mockActivityRepo) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockEquipmentRepo struct {
	equipment.Repository
	mock.Mock
}

func (m *mockEquipmentRepo) Create(ctx context.Context, item *equipment.Equipment) (*equipment.Equipment, error) {
	args := m.Called(ctx, item)
	item.ID = 1
	return item, args.Error(0)
}

func (m *mockEquipmentRepo) GetByID(ctx context.Context, id int) (*equipment.Equipment, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*equipment.Equipment)
	return item, args.Error(1)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, item *equipment.Equipment) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreateEquipment_ChecksActivity(t *testing.T) {
	ctx := context.Background()
	cost := 25.0

	t.Run("MissingActivity", func(t *testing.T) {
		activities := new(mockActivityRepo)
		items := new(mockEquipmentRepo)
		activities.On("Exists", ctx, 7).Return(false, nil)

		svc := equipment.NewService(items, activities, nil)
		_, err := svc.CreateEquipment(ctx, equipment.CreateEquipmentRequest{
			ActivityID:  7,
			Description: "Helmet",
			Cost:        &cost,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ExistingActivity", func(t *testing.T) {
		activities := new(mockActivityRepo)
		items := new(mockEquipmentRepo)
		activities.On("Exists", ctx, 3).Return(true, nil)
		items.On("Create", ctx, mock.AnythingOfType("*equipment.Equipment")).Return(nil)

		svc := equipment.NewService(items, activities, nil)
		created, err := svc.CreateEquipment(ctx, equipment.CreateEquipmentRequest{
			ActivityID:  3,
			Description: "Helmet",
			Cost:        &cost,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, 3, created.ActivityID)
		assert.Equal(t, 25.0, created.Cost)
		items.AssertExpectations(t)
	})
}

func TestUpdateEquipment_NotFound(t *testing.T) {
	ctx := context.Background()
	cost := 10.0

	activities := new(mockActivityRepo)
	items := new(mockEquipmentRepo)
	items.On("GetByID", ctx, 5).Return(nil, equipment.ErrEquipmentNotFound)

	svc := equipment.NewService(items, activities, nil)
	_, err := svc.UpdateEquipment(ctx, 5, equipment.UpdateEquipmentRequest{
		ActivityID:  1,
		Description: "Board",
		Cost:        &cost,
	})

	assert.ErrorIs(t, err, equipment.ErrEquipmentNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	activities.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdateEquipment_OverwritesFields(t *testing.T) {
	ctx := context.Background()
	cost := 15.5

	activities := new(mockActivityRepo)
	items := new(mockEquipmentRepo)
	stored := &equipment.Equipment{ID: 5, ActivityID: 1, Description: "Helmet", Cost: 10}
	items.On("GetByID", ctx, 5).Return(stored, nil).Once()
	activities.On("Exists", ctx, 2).Return(true, nil)
	items.On("Update", ctx, &equipment.Equipment{ID: 5, ActivityID: 2, Description: "Paddle", Cost: 15.5}).Return(nil)
	items.On("GetByID", ctx, 5).Return(&equipment.Equipment{ID: 5, ActivityID: 2, Description: "Paddle", Cost: 15.5}, nil).Once()

	svc := equipment.NewService(items, activities, nil)
	updated, err := svc.UpdateEquipment(ctx, 5, equipment.UpdateEquipmentRequest{
		ActivityID:  2,
		Description: "Paddle",
		Cost:        &cost,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.ActivityID)
	assert.Equal(t, "Paddle", updated.Description)
	assert.Equal(t, 15.5, updated.Cost)
	items.AssertExpectations(t)
}

func TestUpdateEquipment_MissingActivity(t *testing.T) {
	ctx := context.Background()
	cost := 15.5

	activities := new(mockActivityRepo)
	items := new(mockEquipmentRepo)
	items.On("GetByID", ctx, 5).Return(&equipment.Equipment{ID: 5, ActivityID: 1}, nil)
	activities.On("Exists", ctx, 9).Return(false, nil)

	svc := equipment.NewService(items, activities, nil)
	_, err := svc.UpdateEquipment(ctx, 5, equipment.UpdateEquipmentRequest{
		ActivityID:  9,
		Description: "Paddle",
		Cost:        &cost,
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing", func(t *testing.T) {
		items := new(mockEquipmentRepo)
		items.On("GetByID", ctx, 5).Return(&equipment.Equipment{ID: 5}, nil)
		items.On("Delete", ctx, 5).Return(nil)

		svc := equipment.NewService(items, new(mockActivityRepo), nil)

		require.NoError(t, svc.DeleteEquipment(ctx, 5))
		items.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		items := new(mockEquipmentRepo)
		items.On("GetByID", ctx, 5).Return(nil, equipment.ErrEquipmentNotFound)

		svc := equipment.NewService(items, new(mockActivityRepo), nil)

		assert.ErrorIs(t, svc.DeleteEquipment(ctx, 5), apperr.ErrNotFound)
		items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
