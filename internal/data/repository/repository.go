package repository

import (
	"context"
	"fmt"

	"coaching-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Skill          SkillRepository
	Coach          CoachRepository
	Course         CourseRepository
	CreditPackage  CreditPackageRepository
	CreditPurchase CreditPurchaseRepository
	Booking        BookingRepository
}

func NewRepository(db database.Queryer, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Skill:          NewSkillRepository(db, log),
		Coach:          NewCoachRepository(db, log),
		Course:         NewCourseRepository(db, log),
		CreditPackage:  NewCreditPackageRepository(db, log),
		CreditPurchase: NewCreditPurchaseRepository(db, log),
		Booking:        NewBookingRepository(db, log),
	}
}

// Store gives access to the repositories plus a transactional runner.
// All multi-row consistency in the system goes through InTx; the database
// is the only component with a view shared across replicas, so no
// in-process locking is layered on top.
type Store interface {
	Repos() *Repository
	// InTx runs fn against repositories bound to one SERIALIZABLE
	// transaction. fn returning an error rolls the transaction back.
	InTx(ctx context.Context, fn func(r *Repository) error) error
}

type pgStore struct {
	db    database.PgxIface
	log   *zap.Logger
	repos *Repository
}

func NewStore(db database.PgxIface, log *zap.Logger) Store {
	return &pgStore{
		db:    db,
		log:   log,
		repos: NewRepository(db, log),
	}
}

func (s *pgStore) Repos() *Repository {
	return s.repos
}

func (s *pgStore) InTx(ctx context.Context, fn func(r *Repository) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewRepository(tx, s.log)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
