package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "secretsanta/internal/shared/errors"
)

func TestForgotManageLinkUseCase_Execute(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		mailerSent bool
		mailerErr  error
		wantSent   bool
		wantValid  bool
		wantErr    bool
	}{
		{name: "pools found", email: "alice@example.com", mailerSent: true, wantSent: true},
		{name: "no pools", email: "alice@example.com", mailerSent: false, wantSent: false},
		{name: "surrounding spaces", email: "  alice@example.com ", mailerSent: true, wantSent: true},
		{name: "invalid email", email: "not-an-email", wantValid: true, wantErr: true},
		{name: "empty email", email: "", wantValid: true, wantErr: true},
		{name: "mailer error", email: "alice@example.com", mailerErr: errors.New("smtp down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			mailer := &mockPoolMailer{
				SendForgotManageLinkMailFunc: func(ctx context.Context, email string) (bool, error) {
					gotEmail = email
					return tt.mailerSent, tt.mailerErr
				},
			}
			uc := NewForgotManageLinkUseCase(mailer, nopLogger)

			result, err := uc.Execute(context.Background(), ForgotManageLinkCommand{Email: tt.email})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantValid, apperrors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, result.Sent)
			assert.Equal(t, "alice@example.com", gotEmail)
		})
	}
}

func TestSendReuseLinksUseCase_Execute(t *testing.T) {
	t.Run("forwards the email", func(t *testing.T) {
		var gotEmail string
		mailer := &mockPoolMailer{
			SendReuseLinksMailFunc: func(ctx context.Context, email string) (bool, error) {
				gotEmail = email
				return true, nil
			},
		}
		uc := NewSendReuseLinksUseCase(mailer, nopLogger)

		result, err := uc.Execute(context.Background(), SendReuseLinksCommand{Email: "bob@example.com"})
		require.NoError(t, err)
		assert.True(t, result.Sent)
		assert.Equal(t, "bob@example.com", gotEmail)
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewSendReuseLinksUseCase(&mockPoolMailer{}, nopLogger)

		_, err := uc.Execute(context.Background(), SendReuseLinksCommand{Email: "bob"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}
