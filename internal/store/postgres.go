package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/assessment"
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
	"gorm.io/gorm"
)

// Postgres stores records through gorm. CPF values are encrypted at rest
// with the key given to config.InitCrypto.
type Postgres struct {
	db  *gorm.DB
	now util.Clock
}

func NewPostgres(db *gorm.DB, now util.Clock) *Postgres {
	if now == nil {
		now = util.SystemClock
	}
	return &Postgres{db: db, now: now}
}

func (p *Postgres) Migrate(ctx context.Context) error {
	if err := p.db.WithContext(ctx).AutoMigrate(
		&user.User{},
		&habit.Habit{},
		&checkin.Checkin{},
		&assessment.Submission{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (p *Postgres) Users() user.Repository                       { return postgresUsers{p} }
func (p *Postgres) Habits() habit.Repository                     { return postgresHabits{p} }
func (p *Postgres) Checkins() checkin.Repository                 { return postgresCheckins{p} }
func (p *Postgres) Submissions() assessment.SubmissionRepository { return postgresSubmissions{p} }

type postgresUsers struct{ p *Postgres }

func sealCPF(u *user.User) (user.User, error) {
	row := *u
	enc, err := config.Encrypt(u.CPF)
	if err != nil {
		return row, fmt.Errorf("failed to encrypt cpf: %w", err)
	}
	row.CPF = enc
	return row, nil
}

func openCPF(u *user.User) error {
	plain, err := config.Decrypt(u.CPF)
	if err != nil {
		return fmt.Errorf("failed to decrypt cpf: %w", err)
	}
	u.CPF = plain
	return nil
}

func (r postgresUsers) Create(ctx context.Context, u *user.User) error {
	u.Email = strings.ToLower(u.Email)
	row, err := sealCPF(u)
	if err != nil {
		return err
	}
	if err := r.p.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrEmailAlreadyRegistered
		}
		return err
	}
	u.CreatedAt, u.UpdatedAt = row.CreatedAt, row.UpdatedAt
	return nil
}

func (r postgresUsers) find(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var u user.User
	if err := r.p.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	if err := openCPF(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r postgresUsers) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.find(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (r postgresUsers) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.find(ctx, "id = ?", id)
}

func (r postgresUsers) Update(ctx context.Context, u *user.User) error {
	row, err := sealCPF(u)
	if err != nil {
		return err
	}
	res := r.p.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"full_name":  row.FullName,
		"cpf":        row.CPF,
		"birth_date": row.BirthDate,
		"whatsapp":   row.Whatsapp,
		"avatar_url": row.AvatarURL,
		"updated_at": r.p.now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

type postgresHabits struct{ p *Postgres }

func (r postgresHabits) Create(ctx context.Context, h *habit.Habit) error {
	h.CreatedAt = r.p.now()
	return r.p.db.WithContext(ctx).Create(h).Error
}

func (r postgresHabits) ListByUser(ctx context.Context, userID uuid.UUID) ([]habit.Habit, error) {
	var habits []habit.Habit
	if err := r.p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (r postgresHabits) ListAll(ctx context.Context) ([]habit.Habit, error) {
	var habits []habit.Habit
	if err := r.p.db.WithContext(ctx).Order("created_at ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (r postgresHabits) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	return r.p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var h habit.Habit
		if err := tx.Where("id = ? AND user_id = ?", habitID, userID).First(&h).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return habit.ErrHabitNotFound
			}
			return err
		}
		if err := tx.Where("habit_id = ?", habitID).Delete(&checkin.Checkin{}).Error; err != nil {
			return err
		}
		return tx.Delete(&h).Error
	})
}

type postgresCheckins struct{ p *Postgres }

func (r postgresCheckins) Create(ctx context.Context, c *checkin.Checkin) error {
	c.CheckinDate = r.p.now()
	return r.p.db.WithContext(ctx).Create(c).Error
}

func (r postgresCheckins) ListByHabit(ctx context.Context, habitID uuid.UUID) ([]checkin.Checkin, error) {
	var checkins []checkin.Checkin
	if err := r.p.db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("seq ASC").
		Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

type postgresSubmissions struct{ p *Postgres }

func (r postgresSubmissions) ListByUser(ctx context.Context, userID uuid.UUID) ([]assessment.Submission, error) {
	var submissions []assessment.Submission
	if err := r.p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submission_date ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r postgresSubmissions) Save(ctx context.Context, s *assessment.Submission) error {
	return r.p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND test_id = ?", s.UserID, s.TestID).
			Delete(&assessment.Submission{}).Error; err != nil {
			return err
		}
		s.SubmissionDate = r.p.now()
		return tx.Create(s).Error
	})
}

// SeedDemoUser inserts the demo account unless it already exists.
func (p *Postgres) SeedDemoUser(ctx context.Context) error {
	users := p.Users()
	if _, err := users.FindByEmail(ctx, DemoUserEmail); err == nil {
		return nil
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}
	u := demoUser()
	return users.Create(ctx, &u)
}
