package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradeview/gradeview-api/internal/models"
	appErrors "github.com/gradeview/gradeview-api/pkg/errors"
)

type mockMessageRepo struct {
	stored []models.Message
}

func (m *mockMessageRepo) Insert(_ context.Context, message *models.Message) error {
	m.stored = append(m.stored, *message)
	return nil
}

func (m *mockMessageRepo) ListByDateDesc(context.Context) ([]models.Message, error) {
	return m.stored, nil
}

func TestMessageServiceSubmit(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := NewMessageService(repo, nil, "secret", nil)

	err := svc.Submit(context.Background(), ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hello",
	}, "203.0.113.9")
	require.NoError(t, err)

	require.Len(t, repo.stored, 1)
	assert.Equal(t, "203.0.113.9", repo.stored[0].IPAddr)
}

func TestMessageServiceSubmitValidation(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := NewMessageService(repo, nil, "secret", nil)

	cases := []ContactRequest{
		{Email: "ada@example.com", Message: "hi"},
		{Name: "Ada", Message: "hi"},
		{Name: "Ada", Email: "not-an-email", Message: "hi"},
		{Name: "Ada", Email: "ada@example.com"},
	}
	for _, req := range cases {
		err := svc.Submit(context.Background(), req, "203.0.113.9")
		require.Error(t, err)
		assert.Equal(t, 400, appErrors.FromError(err).Code)
	}
	assert.Empty(t, repo.stored)
}

func TestMessageServiceListWrongPassword(t *testing.T) {
	svc := NewMessageService(&mockMessageRepo{}, nil, "secret", nil)

	_, err := svc.List(context.Background(), "wrong")
	require.Error(t, err)
	assert.Equal(t, 403, appErrors.FromError(err).Code)
}

func TestMessageServiceListUnsetPasswordStaysClosed(t *testing.T) {
	svc := NewMessageService(&mockMessageRepo{}, nil, "", nil)

	_, err := svc.List(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 403, appErrors.FromError(err).Code)
}

func TestMessageServiceList(t *testing.T) {
	repo := &mockMessageRepo{stored: []models.Message{{ID: "m1", Name: "Ada"}}}
	svc := NewMessageService(repo, nil, "secret", nil)

	messages, err := svc.List(context.Background(), "secret")
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}
