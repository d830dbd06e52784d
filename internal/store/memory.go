// Package store holds the record stores behind the feature repositories.
// Memory backs development and tests; Postgres is used when a DSN is set.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/assessment"
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

// DemoUserID identifies the account every fresh Memory store starts with.
var DemoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const DemoUserEmail = "teste@mente-viva.com"

func demoUser() user.User {
	birth, _ := util.ParseDate("1990-01-01")
	return user.User{
		ID:        DemoUserID,
		FullName:  "Usuário Teste",
		CPF:       "123.456.789-00",
		BirthDate: birth,
		Whatsapp:  "11999999999",
		Email:     DemoUserEmail,
	}
}

// Memory keeps every collection in process memory. Records are copied in
// and out so callers never share state with the store.
type Memory struct {
	mu  sync.RWMutex
	now util.Clock

	users       []user.User
	habits      []habit.Habit
	checkins    []checkin.Checkin
	submissions []assessment.Submission
	seq         int64
}

func NewMemory(now util.Clock) *Memory {
	if now == nil {
		now = util.SystemClock
	}
	m := &Memory{now: now}
	m.Reset()
	return m
}

// Reset drops all data and reseeds the demo user.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := demoUser()
	u.CreatedAt = m.now()
	u.UpdatedAt = u.CreatedAt

	m.users = []user.User{u}
	m.habits = nil
	m.checkins = nil
	m.submissions = nil
	m.seq = 0
}

func (m *Memory) Users() user.Repository                       { return memoryUsers{m} }
func (m *Memory) Habits() habit.Repository                     { return memoryHabits{m} }
func (m *Memory) Checkins() checkin.Repository                 { return memoryCheckins{m} }
func (m *Memory) Submissions() assessment.SubmissionRepository { return memorySubmissions{m} }

type memoryUsers struct{ m *Memory }

func (r memoryUsers) Create(ctx context.Context, u *user.User) error {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailAlreadyRegistered
		}
	}
	now := m.now()
	u.CreatedAt, u.UpdatedAt = now, now
	m.users = append(m.users, *u)
	return nil
}

func (r memoryUsers) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	m := r.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r memoryUsers) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	m := r.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r memoryUsers) Update(ctx context.Context, u *user.User) error {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == u.ID {
			u.CreatedAt = m.users[i].CreatedAt
			u.UpdatedAt = m.now()
			m.users[i] = *u
			return nil
		}
	}
	return user.ErrUserNotFound
}

type memoryHabits struct{ m *Memory }

func cloneHabit(h habit.Habit) habit.Habit {
	if h.ReminderTime != nil {
		t := *h.ReminderTime
		h.ReminderTime = &t
	}
	if h.ReminderDays != nil {
		h.ReminderDays = append([]int(nil), h.ReminderDays...)
	}
	return h
}

func (r memoryHabits) Create(ctx context.Context, h *habit.Habit) error {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	h.CreatedAt = m.now()
	m.habits = append(m.habits, cloneHabit(*h))
	return nil
}

func (r memoryHabits) ListByUser(ctx context.Context, userID uuid.UUID) ([]habit.Habit, error) {
	m := r.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []habit.Habit
	for _, h := range m.habits {
		if h.UserID == userID {
			out = append(out, cloneHabit(h))
		}
	}
	return out, nil
}

func (r memoryHabits) ListAll(ctx context.Context) ([]habit.Habit, error) {
	m := r.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]habit.Habit, 0, len(m.habits))
	for _, h := range m.habits {
		out = append(out, cloneHabit(h))
	}
	return out, nil
}

func (r memoryHabits) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, h := range m.habits {
		if h.ID == habitID && h.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return habit.ErrHabitNotFound
	}
	m.habits = append(m.habits[:idx], m.habits[idx+1:]...)

	kept := m.checkins[:0]
	for _, c := range m.checkins {
		if c.HabitID != habitID {
			kept = append(kept, c)
		}
	}
	m.checkins = kept
	return nil
}

type memoryCheckins struct{ m *Memory }

func (r memoryCheckins) Create(ctx context.Context, c *checkin.Checkin) error {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	c.Seq = m.seq
	c.CheckinDate = m.now()
	m.checkins = append(m.checkins, *c)
	return nil
}

func (r memoryCheckins) ListByHabit(ctx context.Context, habitID uuid.UUID) ([]checkin.Checkin, error) {
	m := r.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []checkin.Checkin
	for _, c := range m.checkins {
		if c.HabitID == habitID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memorySubmissions struct{ m *Memory }

func (r memorySubmissions) ListByUser(ctx context.Context, userID uuid.UUID) ([]assessment.Submission, error) {
	m := r.m
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []assessment.Submission
	for _, s := range m.submissions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memorySubmissions) Save(ctx context.Context, s *assessment.Submission) error {
	m := r.m
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.submissions[:0]
	for _, existing := range m.submissions {
		if !(existing.UserID == s.UserID && existing.TestID == s.TestID) {
			kept = append(kept, existing)
		}
	}
	s.SubmissionDate = m.now()
	m.submissions = append(kept, *s)
	return nil
}
