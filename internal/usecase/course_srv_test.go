package usecase_test

import (
	"context"
	"testing"
	"time"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/dto/request"
	"coaching-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCourseService(store *memStore) usecase.CourseService {
	return usecase.NewCourseService(store, zap.NewNop())
}

func createCourseRequest(skillID uuid.UUID) *request.CreateCourseRequest {
	start := time.Now().Add(24 * time.Hour)
	return &request.CreateCourseRequest{
		SkillID:         skillID.String(),
		Name:            "Morning Yoga",
		Description:     "Vinyasa flow for beginners",
		StartAt:         start,
		EndAt:           start.Add(time.Hour),
		MaxParticipants: 8,
		MeetingURL:      "https://meet.example.com/morning-yoga",
	}
}

func TestCreateCourse(t *testing.T) {
	// GIVEN a coach and an existing skill
	store := newMemStore()
	coachID := store.addUser("Coach Dana", entity.RoleCoach)
	skillID := store.addSkill("yoga")
	svc := newCourseService(store)

	// WHEN the coach creates a course
	course, err := svc.Create(context.Background(), coachID, createCourseRequest(skillID))

	// THEN the course carries the coach, the skill and the meeting URL
	require.NoError(t, err)
	assert.Equal(t, "Morning Yoga", course.Name)
	assert.Equal(t, "Coach Dana", course.CoachName)
	assert.Equal(t, "yoga", course.SkillName)
	assert.Equal(t, 8, course.MaxParticipants)
	assert.Equal(t, "https://meet.example.com/morning-yoga", course.MeetingURL)
}

func TestCreateCourse_RequiresCoachRole(t *testing.T) {
	store := newMemStore()
	userID := store.addUser("alice", entity.RoleUser)
	skillID := store.addSkill("yoga")
	svc := newCourseService(store)

	_, err := svc.Create(context.Background(), userID, createCourseRequest(skillID))

	assert.ErrorIs(t, err, usecase.ErrNotCoach)
}

func TestCreateCourse_SkillNotFound(t *testing.T) {
	store := newMemStore()
	coachID := store.addUser("Coach Dana", entity.RoleCoach)
	svc := newCourseService(store)

	_, err := svc.Create(context.Background(), coachID, createCourseRequest(uuid.New()))

	assert.ErrorIs(t, err, usecase.ErrSkillNotFound)
}

func TestCreateCourse_ValidationRejectsPlainHTTP(t *testing.T) {
	store := newMemStore()
	coachID := store.addUser("Coach Dana", entity.RoleCoach)
	skillID := store.addSkill("yoga")
	svc := newCourseService(store)

	req := createCourseRequest(skillID)
	req.MeetingURL = "http://meet.example.com/insecure"

	_, err := svc.Create(context.Background(), coachID, req)

	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestListCourses_HidesMeetingURL(t *testing.T) {
	// GIVEN a published course
	store := newMemStore()
	coachID := store.addUser("Coach Dana", entity.RoleCoach)
	skillID := store.addSkill("yoga")
	svc := newCourseService(store)

	_, err := svc.Create(context.Background(), coachID, createCourseRequest(skillID))
	require.NoError(t, err)

	// WHEN the public listing is requested
	courses, err := svc.List(context.Background())

	// THEN the meeting URL stays private to enrolled users
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Empty(t, courses[0].MeetingURL)
	assert.Equal(t, "Coach Dana", courses[0].CoachName)
}

func TestUpdateCourse(t *testing.T) {
	store := newMemStore()
	coachID := store.addUser("Coach Dana", entity.RoleCoach)
	skillID := store.addSkill("yoga")
	svc := newCourseService(store)

	created, err := svc.Create(context.Background(), coachID, createCourseRequest(skillID))
	require.NoError(t, err)
	courseID := uuid.MustParse(created.ID)

	start := time.Now().Add(48 * time.Hour)
	updated, err := svc.Update(context.Background(), courseID, &request.UpdateCourseRequest{
		SkillID:         skillID.String(),
		Name:            "Evening Yoga",
		Description:     "Slower pace",
		StartAt:         start,
		EndAt:           start.Add(time.Hour),
		MaxParticipants: 12,
		MeetingURL:      "https://meet.example.com/evening-yoga",
	})

	require.NoError(t, err)
	assert.Equal(t, "Evening Yoga", updated.Name)
	assert.Equal(t, 12, updated.MaxParticipants)

	course, err := store.Repos().Course.FindByID(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, "Evening Yoga", course.Name)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	store := newMemStore()
	skillID := store.addSkill("yoga")
	svc := newCourseService(store)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Update(context.Background(), uuid.New(), &request.UpdateCourseRequest{
		SkillID:         skillID.String(),
		Name:            "Ghost Course",
		Description:     "does not exist",
		StartAt:         start,
		EndAt:           start.Add(time.Hour),
		MaxParticipants: 5,
		MeetingURL:      "https://meet.example.com/ghost",
	})

	assert.ErrorIs(t, err, usecase.ErrCourseNotFound)
}
