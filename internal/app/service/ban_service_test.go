package service

import (
	"context"
	"testing"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanService(t *testing.T) {
	repo := &fakeBanRepo{}
	svc := NewBanService(repo)

	ban, err := svc.CreateBan(context.Background(), CreateBanRequest{ID: 12, Email: "troll@example.com", Reason: "spam"})
	require.NoError(t, err)
	assert.Equal(t, 12, ban.ID)

	// Ids are caller-chosen; a second ban with the same id is accepted.
	_, err = svc.CreateBan(context.Background(), CreateBanRequest{ID: 12, Email: "other@example.com", Reason: "abuse"})
	require.NoError(t, err)

	bans, err := svc.ListBans(context.Background())
	require.NoError(t, err)
	assert.Len(t, bans, 2)

	found, err := svc.GetBan(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "troll@example.com", found.Email)

	_, err = svc.GetBan(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, svc.DeleteBan(context.Background(), 12))
	assert.Empty(t, repo.bans)

	err = svc.DeleteBan(context.Background(), 12)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestBanServiceDeleteRemovesAllMatching(t *testing.T) {
	repo := &fakeBanRepo{bans: []model.Ban{
		{ID: 1, Email: "a@example.com"},
		{ID: 1, Email: "b@example.com"},
		{ID: 2, Email: "c@example.com"},
	}}
	svc := NewBanService(repo)

	require.NoError(t, svc.DeleteBan(context.Background(), 1))
	assert.Len(t, repo.bans, 1)
	assert.Equal(t, 2, repo.bans[0].ID)
}
