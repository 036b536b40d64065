package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openmf/fieldops/internal/domain/model"
	"github.com/openmf/fieldops/internal/mocks"
)

func officeOptions() *model.FullParameterListResponse {
	return &model.FullParameterListResponse{
		ColumnHeaders: []model.ColumnHeader{{ColumnName: "id"}, {ColumnName: "name"}},
		Data:          []model.DataRow{{Row: []any{float64(1), "Head Office"}}},
	}
}

func newCacheService(t *testing.T) (*ParameterCacheService, *mocks.MockReportGateway, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportGateway(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewParameterCacheService(ParameterCacheServiceOptions{Reports: reports, Cache: cache})
	return svc, reports, cache
}

func TestParameterCacheService_ParameterDetails(t *testing.T) {
	t.Parallel()

	const key = "report:param:loanOfficerIdSelectAll:R_officeId=1"
	params := map[string]string{"R_officeId": "1"}

	tests := []struct {
		name    string
		setup   func(*mocks.MockReportGateway, *mocks.MockCacheRepository)
		wantErr bool
	}{
		{
			name: "cache hit skips gateway",
			setup: func(_ *mocks.MockReportGateway, cache *mocks.MockCacheRepository) {
				raw, _ := json.Marshal(officeOptions())
				cache.EXPECT().Get(gomock.Any(), key).Return(raw, nil)
			},
		},
		{
			name: "cache miss fetches and stores",
			setup: func(reports *mocks.MockReportGateway, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
				reports.EXPECT().ParameterDetails(gomock.Any(), "loanOfficerIdSelectAll", params).Return(officeOptions(), nil)
				cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 15*time.Minute).Return(nil)
			},
		},
		{
			name: "cache read error falls through",
			setup: func(reports *mocks.MockReportGateway, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("redis down"))
				reports.EXPECT().ParameterDetails(gomock.Any(), "loanOfficerIdSelectAll", params).Return(officeOptions(), nil)
				cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 15*time.Minute).Return(errors.New("redis down"))
			},
		},
		{
			name: "gateway error is returned and nothing cached",
			setup: func(reports *mocks.MockReportGateway, cache *mocks.MockCacheRepository) {
				cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
				reports.EXPECT().ParameterDetails(gomock.Any(), "loanOfficerIdSelectAll", params).Return(nil, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, reports, cache := newCacheService(t)
			tt.setup(reports, cache)

			got, err := svc.ParameterDetails(context.Background(), "loanOfficerIdSelectAll", params)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Head Office", got.Data[0].Cell(1))
		})
	}
}

func TestParameterCacheService_RunReportBypassesCache(t *testing.T) {
	t.Parallel()
	svc, reports, _ := newCacheService(t)

	reports.EXPECT().RunReport(gomock.Any(), "Active Loans", map[string]string{"R_officeId": "1"}).Return(officeOptions(), nil)

	_, err := svc.RunReport(context.Background(), "Active Loans", map[string]string{"R_officeId": "1"})
	require.NoError(t, err)
}

func TestParameterCacheService_NilCache(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportGateway(ctrl)
	svc := NewParameterCacheService(ParameterCacheServiceOptions{Reports: reports})

	reports.EXPECT().FullParameterList(gomock.Any(), "'Active Loans'").Return(officeOptions(), nil).Times(2)

	for range 2 {
		_, err := svc.FullParameterList(context.Background(), "'Active Loans'")
		require.NoError(t, err)
	}
	assert.NoError(t, svc.Invalidate(context.Background(), "'Active Loans'"))
}

func TestParameterCacheService_Invalidate(t *testing.T) {
	t.Parallel()
	svc, _, cache := newCacheService(t)

	cache.EXPECT().Delete(gomock.Any(), "report:params:Active Loans").Return(true, nil)
	require.NoError(t, svc.Invalidate(context.Background(), "'Active Loans'"))
}

func TestNewParameterCacheService_PanicsWithoutGateway(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		NewParameterCacheService(ParameterCacheServiceOptions{})
	})
}

func TestParameterDetailsKey_SortsParams(t *testing.T) {
	t.Parallel()
	got := parameterDetailsKey("p", map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, "report:param:p:a=1:b=2", got)
}
