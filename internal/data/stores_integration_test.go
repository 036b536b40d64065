package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/testutil"
)

func TestStores_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := testutil.SetupTestDB(t)
	stores := NewStores(db, NewFixedTimeProvider(testutil.TestTime()))
	ctx := context.Background()

	require.NoError(t, stores.Centers.SaveAll(ctx, testutil.Centers(1, 3)))
	require.NoError(t, stores.Clients.SaveAll(ctx, []model.Client{testutil.NewClient(10, 4), testutil.NewClient(11, 5)}))

	centers, err := stores.Centers.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, model.IDs(centers))

	clients, err := stores.Clients.ListByGroup(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, model.IDs(clients))

	err = stores.Groups.Save(ctx, testutil.NewGroup(-1, 1))
	assert.True(t, apperrors.IsValidation(err), "check violation: %v", err)
}
