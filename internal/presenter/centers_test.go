package presenter_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openmf/fieldops/config"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
	"github.com/openmf/fieldops/internal/mocks"
	"github.com/openmf/fieldops/internal/presenter"
	"github.com/openmf/fieldops/internal/testutil"
)

type centerView struct {
	listView[model.Center]
	groups    []*model.CenterWithAssociations
	noMeeting []string
}

func (v *centerView) PresentCenterGroups(c *model.CenterWithAssociations) {
	v.groups = append(v.groups, c)
}

func (v *centerView) PresentNoMeeting(msg string) {
	v.noMeeting = append(v.noMeeting, msg)
}

func newCenterPresenter(t *testing.T, h *harness) (*presenter.CenterListPresenter, *mocks.MockCenterGateway, *mocks.MockCenterStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCenterGateway(ctrl)
	store := mocks.NewMockCenterStore(ctrl)
	p := presenter.NewCenterListPresenter(presenter.CenterListPresenterOptions{
		Centers: gw,
		Store:   store,
		Poster:  h,
	})
	return p, gw, store
}

func TestNewCenterListPresenterRequiresGateway(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		presenter.NewCenterListPresenter(presenter.CenterListPresenterOptions{Poster: newHarness(t)})
	})
}

func TestCenterListPresenterLoadsFromGatewayAndStore(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	p, gw, store := newCenterPresenter(t, h)
	v := &centerView{}
	require.NoError(t, p.AttachView(v))

	gw.EXPECT().
		ListCenters(gomock.Any(), model.PageRequest{Offset: 0, Limit: config.DefaultPageSize}).
		Return(testutil.PageOf(2, testutil.Centers(1, 2)...), nil)
	store.EXPECT().ListAll(gomock.Any()).Return(testutil.Centers(2, 2), nil)

	require.True(t, p.LoadFirstPage(t.Context()))
	h.settle(t, 1)
	require.True(t, p.LoadLocalSnapshot(t.Context()))
	h.settle(t, 2)

	assert.Equal(t, []int64{1, 2}, v.displayed())
	items := p.Items()
	assert.False(t, items[0].Synced)
	assert.True(t, items[1].Synced)
	assert.True(t, p.Exhausted())
}

func TestCenterListPresenterEmptyMessage(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	p, gw, _ := newCenterPresenter(t, h)
	v := &centerView{}
	require.NoError(t, p.AttachView(v))

	gw.EXPECT().ListCenters(gomock.Any(), gomock.Any()).Return(testutil.PageOf[model.Center](0), nil)
	require.True(t, p.LoadFirstPage(t.Context()))
	h.settle(t, 1)

	e, ok := v.last("empty")
	require.True(t, ok)
	assert.Equal(t, "No centers found", e.msg)
}

func TestCenterListPresenterLoadCenterGroupsAndMeeting(t *testing.T) {
	t.Parallel()

	withMeeting := &model.CenterWithAssociations{
		Center:                    testutil.NewCenter(7).Build(),
		GroupMembers:              []model.Group{testutil.NewGroup(70, 7), testutil.NewGroup(71, 7)},
		CollectionMeetingCalendar: &model.MeetingCalendar{ID: 12, Title: "Weekly"},
	}
	withoutMeeting := &model.CenterWithAssociations{
		Center:       testutil.NewCenter(7).Build(),
		GroupMembers: []model.Group{testutil.NewGroup(70, 7)},
	}

	tests := []struct {
		name          string
		center        *model.CenterWithAssociations
		err           error
		wantGroups    bool
		wantNoMeeting bool
		wantError     string
	}{
		{name: "meeting configured", center: withMeeting, wantGroups: true},
		{name: "no meeting", center: withoutMeeting, wantNoMeeting: true},
		{
			name: "not found",
			err: &apperrors.TransportError{
				Op: "center_associations", Status: http.StatusNotFound, Message: "Center does not exist",
			},
			wantError: "Center does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			p, gw, _ := newCenterPresenter(t, h)
			v := &centerView{}
			require.NoError(t, p.AttachView(v))

			gw.EXPECT().CenterWithAssociations(gomock.Any(), int64(7)).Return(tt.center, tt.err)
			require.True(t, p.LoadCenterGroupsAndMeeting(t.Context(), 7))
			h.settle(t, 1)

			assert.Equal(t, []string{"busy", "busy"}, v.kinds()[:2])
			if tt.wantGroups {
				require.Len(t, v.groups, 1)
				assert.Len(t, v.groups[0].GroupMembers, 2)
			} else {
				assert.Empty(t, v.groups)
			}
			if tt.wantNoMeeting {
				assert.Equal(t, []string{presenter.NoMeetingMessage}, v.noMeeting)
			} else {
				assert.Empty(t, v.noMeeting)
			}
			if tt.wantError != "" {
				e, ok := v.last("error")
				require.True(t, ok)
				assert.Equal(t, tt.wantError, e.msg)
			}
		})
	}
}

func TestCenterListPresenterLatestLookupWins(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	p, gw, _ := newCenterPresenter(t, h)
	v := &centerView{}
	require.NoError(t, p.AttachView(v))

	release := make(chan struct{})
	gw.EXPECT().CenterWithAssociations(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) (*model.CenterWithAssociations, error) {
			<-release
			return &model.CenterWithAssociations{
				Center:                    testutil.NewCenter(1).Build(),
				CollectionMeetingCalendar: &model.MeetingCalendar{ID: 1},
			}, nil
		})
	gw.EXPECT().CenterWithAssociations(gomock.Any(), int64(2)).Return(&model.CenterWithAssociations{
		Center:                    testutil.NewCenter(2).Build(),
		CollectionMeetingCalendar: &model.MeetingCalendar{ID: 2},
	}, nil)

	require.True(t, p.LoadCenterGroupsAndMeeting(t.Context(), 1))
	require.True(t, p.LoadCenterGroupsAndMeeting(t.Context(), 2))
	h.settle(t, 1)
	close(release)
	h.settle(t, 2)

	require.Len(t, v.groups, 1)
	assert.Equal(t, int64(2), v.groups[0].ID)
	assert.Equal(t, []string{"busy", "busy"}, v.kinds(), "busy stays on until both lookups returned")
}

func TestCenterListPresenterDetachDropsLookup(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	p, gw, _ := newCenterPresenter(t, h)
	v := &centerView{}
	require.NoError(t, p.AttachView(v))

	release := make(chan struct{})
	gw.EXPECT().CenterWithAssociations(gomock.Any(), int64(3)).
		DoAndReturn(func(context.Context, int64) (*model.CenterWithAssociations, error) {
			<-release
			return &model.CenterWithAssociations{CollectionMeetingCalendar: &model.MeetingCalendar{ID: 1}}, nil
		})

	require.True(t, p.LoadCenterGroupsAndMeeting(t.Context(), 3))
	p.DetachView()
	close(release)
	h.settle(t, 1)

	assert.Equal(t, []string{"busy"}, v.kinds())
	assert.Empty(t, v.groups)
	assert.False(t, p.LoadCenterGroupsAndMeeting(t.Context(), 3))
}
