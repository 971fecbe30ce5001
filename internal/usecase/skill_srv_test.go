package usecase_test

import (
	"context"
	"testing"

	"coaching-booking/internal/dto/request"
	"coaching-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSkillService(store *memStore) usecase.SkillService {
	return usecase.NewSkillService(store, zap.NewNop())
}

func TestCreateSkill(t *testing.T) {
	store := newMemStore()
	svc := newSkillService(store)

	skill, err := svc.Create(context.Background(), &request.CreateSkillRequest{Name: "yoga"})

	require.NoError(t, err)
	assert.Equal(t, "yoga", skill.Name)

	skills, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, skill.ID, skills[0].ID)
}

func TestCreateSkill_DuplicateName(t *testing.T) {
	store := newMemStore()
	store.addSkill("yoga")
	svc := newSkillService(store)

	_, err := svc.Create(context.Background(), &request.CreateSkillRequest{Name: "yoga"})

	assert.ErrorIs(t, err, usecase.ErrDuplicateName)
}

func TestDeleteSkill(t *testing.T) {
	store := newMemStore()
	skillID := store.addSkill("yoga")
	svc := newSkillService(store)

	require.NoError(t, svc.Delete(context.Background(), skillID))
	assert.ErrorIs(t, svc.Delete(context.Background(), skillID), usecase.ErrSkillNotFound)
}
