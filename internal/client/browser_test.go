package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/mock"
	"github.com/agrodesk/agrodesk/models"
)

func expectFullRefresh(m *mock.MockServerAdapter, ctx context.Context) {
	m.EXPECT().ListClients(ctx, "").Return([]models.Client{{ID: "client-1"}}, nil)
	m.EXPECT().ListFarmers(ctx, "").Return([]models.Farmer{{ID: "farmer-1"}}, nil)
	m.EXPECT().ListTasks(ctx, "").Return([]models.Task{}, nil)
	m.EXPECT().ListComplaints(ctx, "").Return([]models.Complaint{}, nil)
	m.EXPECT().ListForms(ctx, "").Return([]models.DigitalForm{}, nil)
	m.EXPECT().ListUsers(ctx, "").Return([]models.User{{ID: "user-a"}}, nil)
}

func TestBrowser_RefreshPopulatesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	adapterMock := mock.NewMockServerAdapter(ctrl)
	expectFullRefresh(adapterMock, ctx)

	b := NewBrowser(adapterMock, logger.Nop())
	require.True(t, b.Snapshot().FetchedAt.IsZero())

	require.NoError(t, b.Refresh(ctx))

	snap := b.Snapshot()
	assert.False(t, snap.FetchedAt.IsZero())
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "client-1", snap.Clients[0].ID)
	assert.Len(t, snap.Users, 1)
}

func TestBrowser_ForbiddenCollectionIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	adapterMock := mock.NewMockServerAdapter(ctrl)
	adapterMock.EXPECT().ListClients(ctx, "").Return([]models.Client{{ID: "client-1"}}, nil)
	adapterMock.EXPECT().ListFarmers(ctx, "").Return(nil, adapter.ErrForbidden)
	adapterMock.EXPECT().ListTasks(ctx, "").Return([]models.Task{}, nil)
	adapterMock.EXPECT().ListComplaints(ctx, "").Return([]models.Complaint{}, nil)
	adapterMock.EXPECT().ListForms(ctx, "").Return([]models.DigitalForm{}, nil)
	adapterMock.EXPECT().ListUsers(ctx, "").Return([]models.User{}, nil)

	b := NewBrowser(adapterMock, logger.Nop())
	require.NoError(t, b.Refresh(ctx))

	assert.Len(t, b.Snapshot().Clients, 1)
	assert.Empty(t, b.Snapshot().Farmers)
}

func TestBrowser_ErrorLeavesCacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	adapterMock := mock.NewMockServerAdapter(ctrl)
	expectFullRefresh(adapterMock, ctx)

	b := NewBrowser(adapterMock, logger.Nop())
	require.NoError(t, b.Refresh(ctx))

	adapterMock.EXPECT().ListClients(ctx, "").Return(nil, errors.New("server unreachable"))

	require.Error(t, b.Refresh(ctx))
	assert.Len(t, b.Snapshot().Clients, 1)
}
