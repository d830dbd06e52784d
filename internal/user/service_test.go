package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/store"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

func validRegistration() user.RegisterDTO {
	birth, _ := util.ParseDate("1995-07-20")
	return user.RegisterDTO{
		FullName:        "Maria <b>Silva</b>",
		CPF:             "987.654.321-00",
		BirthDate:       birth,
		Whatsapp:        "21988887777",
		Email:           "maria@example.com",
		Password:        "segredo",
		ConfirmPassword: "segredo",
	}
}

func newService() user.Service {
	return user.NewService(store.NewMemory(nil).Users())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user", func(t *testing.T) {
		svc := newService()
		u, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.Equal(t, "Maria Silva", u.FullName)

		logged, err := svc.Login(ctx, "MARIA@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, logged.ID)
	})

	t.Run("password mismatch", func(t *testing.T) {
		dto := validRegistration()
		dto.ConfirmPassword = "outra"
		_, err := newService().Register(ctx, dto)
		assert.ErrorIs(t, err, user.ErrPasswordMismatch)
	})

	t.Run("missing fields", func(t *testing.T) {
		dto := validRegistration()
		dto.Whatsapp = "  "
		_, err := newService().Register(ctx, dto)
		assert.ErrorIs(t, err, user.ErrMissingFields)
	})

	t.Run("duplicate email is case insensitive", func(t *testing.T) {
		dto := validRegistration()
		dto.Email = "Teste@Mente-Viva.com"
		_, err := newService().Register(ctx, dto)
		assert.ErrorIs(t, err, user.ErrEmailAlreadyRegistered)
	})
}

func TestRegisterKeepsPunctuationInName(t *testing.T) {
	dto := validRegistration()
	dto.FullName = `Ana "Nina" D'Ávila & Souza`
	u, err := newService().Register(context.Background(), dto)
	require.NoError(t, err)
	assert.Equal(t, `Ana "Nina" D'Ávila & Souza`, u.FullName)
}

func TestLoginUnknownEmail(t *testing.T) {
	_, err := newService().Login(context.Background(), "ninguem@example.com")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	avatar := " https://cdn.example.com/a.png "
	u, err := svc.UpdateProfile(ctx, store.DemoUserID, user.UpdateProfileDTO{AvatarURL: &avatar})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", u.AvatarURL)

	again, err := svc.GetByID(ctx, store.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, u.AvatarURL, again.AvatarURL)

	_, err = svc.UpdateProfile(ctx, uuid.New(), user.UpdateProfileDTO{AvatarURL: &avatar})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
