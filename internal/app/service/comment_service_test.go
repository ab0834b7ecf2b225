package service

import (
	"context"
	"testing"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentRepo struct {
	comments map[int]*model.Comment
	nextID   int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int]*model.Comment{}, nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) ListByTicketID(_ context.Context, ticketID int) ([]model.Comment, error) {
	matched := []model.Comment{}
	for _, c := range f.comments {
		if c.TicketID == ticketID {
			matched = append(matched, *c)
		}
	}
	return matched, nil
}

func (f *fakeCommentRepo) ListByUserID(_ context.Context, userID int) ([]model.Comment, error) {
	matched := []model.Comment{}
	for _, c := range f.comments {
		if c.UserID == userID {
			matched = append(matched, *c)
		}
	}
	return matched, nil
}

func (f *fakeCommentRepo) IncrementLikes(_ context.Context, id int) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c.Likes++
	copied := *c
	return &copied, nil
}

func (f *fakeCommentRepo) IncrementDislikes(_ context.Context, id int) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c.Dislikes++
	copied := *c
	return &copied, nil
}

func (f *fakeCommentRepo) DeleteByID(_ context.Context, id int) error {
	if _, ok := f.comments[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func TestCommentServiceCreate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid comment", data: "have you tried turning it off and on"},
		{name: "empty data", data: "", wantErr: true},
		{name: "whitespace only", data: "   ", wantErr: true},
		{name: "tabs and newlines", data: "\t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCommentRepo()
			svc := NewCommentService(repo)

			comment, err := svc.CreateComment(context.Background(), CreateCommentRequest{TicketID: 3, UserID: 5, Data: tt.data})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrValidation)
				assert.Empty(t, repo.comments)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, comment.ID)
			assert.Equal(t, 0, comment.Likes)
			assert.Equal(t, 0, comment.Dislikes)
		})
	}
}

func TestCommentServiceLikeDislike(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo)

	created, err := svc.CreateComment(context.Background(), CreateCommentRequest{TicketID: 1, UserID: 1, Data: "x"})
	require.NoError(t, err)

	liked, err := svc.LikeComment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	liked, err = svc.LikeComment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)
	assert.Equal(t, 0, liked.Dislikes)

	disliked, err := svc.DislikeComment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, disliked.Dislikes)
	assert.Equal(t, 2, disliked.Likes)

	_, err = svc.LikeComment(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCommentServiceDelete(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo)

	created, err := svc.CreateComment(context.Background(), CreateCommentRequest{TicketID: 1, UserID: 1, Data: "x"})
	require.NoError(t, err)
	other, err := svc.CreateComment(context.Background(), CreateCommentRequest{TicketID: 1, UserID: 2, Data: "y"})
	require.NoError(t, err)

	err = svc.DeleteComment(context.Background(), 424242)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Len(t, repo.comments, 2)

	require.NoError(t, svc.DeleteComment(context.Background(), created.ID))
	assert.Len(t, repo.comments, 1)
	assert.Contains(t, repo.comments, other.ID)
}

func TestCommentServiceListEmpty(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo())

	_, err := svc.ListCommentsByTicket(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.ListCommentsByUser(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
