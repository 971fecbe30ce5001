package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/data/repository"
	"coaching-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory repository.Store. InTx serializes transactions
// behind one mutex, which gives the same guarantee the real store provides
// with SERIALIZABLE isolation: no two transactions interleave. Setting
// conflictsToInject makes the next N transactions fail with a retryable
// conflict, for exercising the coordinator's retry loop.
type memStore struct {
	mu                sync.Mutex
	d                 *memData
	conflictsToInject int
}

type memData struct {
	users     map[uuid.UUID]*entity.User
	skills    map[uuid.UUID]*entity.Skill
	coaches   map[uuid.UUID]*entity.Coach
	courses   map[uuid.UUID]*entity.Course
	packages  map[uuid.UUID]*entity.CreditPackage
	purchases []*entity.CreditPurchase
	bookings  []*entity.CourseBooking
}

func newMemStore() *memStore {
	return &memStore{
		d: &memData{
			users:    make(map[uuid.UUID]*entity.User),
			skills:   make(map[uuid.UUID]*entity.Skill),
			coaches:  make(map[uuid.UUID]*entity.Coach),
			courses:  make(map[uuid.UUID]*entity.Course),
			packages: make(map[uuid.UUID]*entity.CreditPackage),
		},
	}
}

func (s *memStore) Repos() *repository.Repository {
	return buildMemRepos(s.d, &s.mu)
}

func (s *memStore) InTx(ctx context.Context, fn func(r *repository.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflictsToInject > 0 {
		s.conflictsToInject--
		return database.ErrTxConflict
	}

	// The lock is already held, so tx-bound repos skip locking.
	return fn(buildMemRepos(s.d, nil))
}

func buildMemRepos(d *memData, mu *sync.Mutex) *repository.Repository {
	base := memBase{d: d, mu: mu}
	return &repository.Repository{
		User:           &memUserRepo{base},
		Skill:          &memSkillRepo{base},
		Coach:          &memCoachRepo{base},
		Course:         &memCourseRepo{base},
		CreditPackage:  &memPackageRepo{base},
		CreditPurchase: &memPurchaseRepo{base},
		Booking:        &memBookingRepo{base},
	}
}

type memBase struct {
	d  *memData
	mu *sync.Mutex
}

func (b *memBase) lock() func() {
	if b.mu == nil {
		return func() {}
	}
	b.mu.Lock()
	return b.mu.Unlock
}

// ---------- seeding helpers ----------

func (s *memStore) addUser(name string, role entity.UserRole) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.d.users[id] = &entity.User{
		Base:  entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	}
	return id
}

func (s *memStore) addSkill(name string) uuid.UUID {
	id := uuid.New()
	s.d.skills[id] = &entity.Skill{
		BaseSimple: entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		Name:       name,
	}
	return id
}

func (s *memStore) addCoach(userID uuid.UUID, years int) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.d.coaches[userID] = &entity.Coach{
		Base:            entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		UserID:          userID,
		ExperienceYears: years,
		Description:     "test coach",
	}
	return id
}

func (s *memStore) addCourse(coachID uuid.UUID, name string, capacity int, startAt time.Time) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	s.d.courses[id] = &entity.Course{
		Base:            entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		CoachUserID:     coachID,
		SkillID:         uuid.New(),
		Name:            name,
		Description:     "test course",
		StartAt:         startAt,
		EndAt:           startAt.Add(time.Hour),
		MaxParticipants: capacity,
		MeetingURL:      "https://meet.example.com/" + name,
	}
	return id
}

func (s *memStore) addPackage(name string, credits int, price string) uuid.UUID {
	id := uuid.New()
	s.d.packages[id] = &entity.CreditPackage{
		BaseSimple:   entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		Name:         name,
		CreditAmount: credits,
		Price:        decimal.RequireFromString(price),
	}
	return id
}

func (s *memStore) addCredits(userID uuid.UUID, credits int) {
	now := time.Now()
	s.d.purchases = append(s.d.purchases, &entity.CreditPurchase{
		BaseSimple:       entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:           userID,
		CreditPackageID:  uuid.New(),
		PurchasedCredits: credits,
		PricePaid:        decimal.RequireFromString("100.00"),
		PurchasedAt:      now,
	})
}

// ---------- repositories ----------

type memUserRepo struct{ memBase }

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer r.lock()()
	return r.d.users[id], nil
}

func (r *memUserRepo) UpdateName(_ context.Context, id uuid.UUID, name string) error {
	defer r.lock()()
	if u, ok := r.d.users[id]; ok {
		u.Name = name
		u.UpdatedAt = time.Now()
	}
	return nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entity.UserRole) error {
	defer r.lock()()
	if u, ok := r.d.users[id]; ok {
		u.Role = role
		u.UpdatedAt = time.Now()
	}
	return nil
}

type memSkillRepo struct{ memBase }

func (r *memSkillRepo) Create(_ context.Context, skill *entity.Skill) error {
	defer r.lock()()
	r.d.skills[skill.ID] = skill
	return nil
}

func (r *memSkillRepo) FindAll(_ context.Context) ([]*entity.Skill, error) {
	defer r.lock()()
	var skills []*entity.Skill
	for _, s := range r.d.skills {
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

func (r *memSkillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Skill, error) {
	defer r.lock()()
	return r.d.skills[id], nil
}

func (r *memSkillRepo) FindByName(_ context.Context, name string) (*entity.Skill, error) {
	defer r.lock()()
	for _, s := range r.d.skills {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSkillRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	defer r.lock()()
	if _, ok := r.d.skills[id]; !ok {
		return false, nil
	}
	delete(r.d.skills, id)
	return true, nil
}

type memCoachRepo struct{ memBase }

func (r *memCoachRepo) Create(_ context.Context, coach *entity.Coach) error {
	defer r.lock()()
	r.d.coaches[coach.UserID] = coach
	return nil
}

func (r *memCoachRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Coach, error) {
	defer r.lock()()
	for _, c := range r.d.coaches {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCoachRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Coach, error) {
	defer r.lock()()
	return r.d.coaches[userID], nil
}

func (r *memCoachRepo) FindPage(_ context.Context, limit, offset int) ([]*entity.Coach, error) {
	defer r.lock()()
	var coaches []*entity.Coach
	for _, c := range r.d.coaches {
		coaches = append(coaches, c)
	}
	sort.Slice(coaches, func(i, j int) bool {
		if coaches[i].CreatedAt.Equal(coaches[j].CreatedAt) {
			return coaches[i].ID.String() < coaches[j].ID.String()
		}
		return coaches[i].CreatedAt.Before(coaches[j].CreatedAt)
	})
	if offset >= len(coaches) {
		return nil, nil
	}
	coaches = coaches[offset:]
	if len(coaches) > limit {
		coaches = coaches[:limit]
	}
	return coaches, nil
}

type memCourseRepo struct{ memBase }

func (r *memCourseRepo) Create(_ context.Context, course *entity.Course) error {
	defer r.lock()()
	r.d.courses[course.ID] = course
	return nil
}

func (r *memCourseRepo) Update(_ context.Context, course *entity.Course) error {
	defer r.lock()()
	r.d.courses[course.ID] = course
	return nil
}

func (r *memCourseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	defer r.lock()()
	return r.d.courses[id], nil
}

func (r *memCourseRepo) FindAll(_ context.Context) ([]*entity.Course, error) {
	defer r.lock()()
	var courses []*entity.Course
	for _, c := range r.d.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].StartAt.Before(courses[j].StartAt) })
	return courses, nil
}

type memPackageRepo struct{ memBase }

func (r *memPackageRepo) Create(_ context.Context, pkg *entity.CreditPackage) error {
	defer r.lock()()
	r.d.packages[pkg.ID] = pkg
	return nil
}

func (r *memPackageRepo) FindAll(_ context.Context) ([]*entity.CreditPackage, error) {
	defer r.lock()()
	var packages []*entity.CreditPackage
	for _, p := range r.d.packages {
		packages = append(packages, p)
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].CreditAmount < packages[j].CreditAmount })
	return packages, nil
}

func (r *memPackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CreditPackage, error) {
	defer r.lock()()
	return r.d.packages[id], nil
}

func (r *memPackageRepo) FindByName(_ context.Context, name string) (*entity.CreditPackage, error) {
	defer r.lock()()
	for _, p := range r.d.packages {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPackageRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	defer r.lock()()
	if _, ok := r.d.packages[id]; !ok {
		return false, nil
	}
	delete(r.d.packages, id)
	return true, nil
}

type memPurchaseRepo struct{ memBase }

func (r *memPurchaseRepo) Create(_ context.Context, purchase *entity.CreditPurchase) error {
	defer r.lock()()
	r.d.purchases = append(r.d.purchases, purchase)
	return nil
}

func (r *memPurchaseRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.CreditPurchase, error) {
	defer r.lock()()
	var purchases []*entity.CreditPurchase
	for _, p := range r.d.purchases {
		if p.UserID == userID {
			purchases = append(purchases, p)
		}
	}
	return purchases, nil
}

func (r *memPurchaseRepo) SumCreditsByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	defer r.lock()()
	var sum int64
	for _, p := range r.d.purchases {
		if p.UserID == userID {
			sum += int64(p.PurchasedCredits)
		}
	}
	return sum, nil
}

type memBookingRepo struct{ memBase }

func (r *memBookingRepo) Create(_ context.Context, booking *entity.CourseBooking) error {
	defer r.lock()()
	r.d.bookings = append(r.d.bookings, booking)
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CourseBooking, error) {
	defer r.lock()()
	for _, b := range r.d.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) FindActive(_ context.Context, userID, courseID uuid.UUID) (*entity.CourseBooking, error) {
	defer r.lock()()
	for _, b := range r.d.bookings {
		if b.UserID == userID && b.CourseID == courseID && b.IsActive() {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.CourseBooking, error) {
	defer r.lock()()
	var bookings []*entity.CourseBooking
	for _, b := range r.d.bookings {
		if b.UserID == userID && b.IsActive() {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *memBookingRepo) CountActiveByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	defer r.lock()()
	var count int64
	for _, b := range r.d.bookings {
		if b.UserID == userID && b.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *memBookingRepo) CountActiveByCourseID(_ context.Context, courseID uuid.UUID) (int64, error) {
	defer r.lock()()
	var count int64
	for _, b := range r.d.bookings {
		if b.CourseID == courseID && b.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *memBookingRepo) CancelActive(_ context.Context, userID, courseID uuid.UUID, at time.Time) (*entity.CourseBooking, error) {
	defer r.lock()()
	for _, b := range r.d.bookings {
		if b.UserID == userID && b.CourseID == courseID && b.IsActive() {
			b.CancelledAt = &at
			return b, nil
		}
	}
	return nil, nil
}
