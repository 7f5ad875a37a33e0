package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tradexhq/passport-cli/internal/client/passport"
	mock_passport "github.com/tradexhq/passport-cli/internal/client/passport/mocks"
)

func TestCodeDispatcher_SendSMS(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "13800138000").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	result, err := dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.NoError(t, err)

	assert.Equal(t, "Verification code sent", result.Tip)
	assert.Empty(t, result.InlineCode)
	assert.True(t, dispatcher.SMSCountdown().Active())
	assert.False(t, dispatcher.EmailCountdown().Active())

	dispatcher.SMSCountdown().Stop()
}

func TestCodeDispatcher_SendSMS_InvalidPhone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	_, err := dispatcher.SendSMS(t.Context(), "86", "12345")
	require.ErrorIs(t, err, ErrInvalidDestination)
}

func TestCodeDispatcher_SendSMS_ValidationDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, false)

	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "12345").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	_, err := dispatcher.SendSMS(t.Context(), "86", "12345")
	require.NoError(t, err)

	dispatcher.SMSCountdown().Stop()
}

func TestCodeDispatcher_InBandCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	client.EXPECT().
		SendSMSCode(gomock.Any(), "55", "987654321").
		Return(&passport.SendCodeResult{Message: "424242"}, nil).
		Times(1)

	result, err := dispatcher.SendSMS(t.Context(), "55", "987654321")
	require.NoError(t, err)

	assert.Equal(t, "424242", result.InlineCode)

	dispatcher.SMSCountdown().Stop()
}

func TestCodeDispatcher_ResendCooldown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "13800138000").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	_, err := dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.NoError(t, err)

	dispatcher.SMSCountdown().Stop()

	// The per-destination ledger blocks a resend even after the
	// countdown was stopped.
	_, err = dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.ErrorIs(t, err, ErrResendCooldown)
}

func TestCodeDispatcher_CooldownIsPerDestination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "13800138000").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)
	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "13900139000").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	_, err := dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.NoError(t, err)

	_, err = dispatcher.SendSMS(t.Context(), "86", "13900139000")
	require.NoError(t, err)

	dispatcher.SMSCountdown().Stop()
}

func TestCodeDispatcher_SendEmail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	client.EXPECT().
		SendEmailCode(gomock.Any(), "member@example.com").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	result, err := dispatcher.SendEmail(t.Context(), "member@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Verification code sent", result.Tip)
	assert.True(t, dispatcher.EmailCountdown().Active())
	assert.False(t, dispatcher.SMSCountdown().Active())

	dispatcher.EmailCountdown().Stop()
}

func TestCodeDispatcher_SendEmail_InvalidAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	_, err := dispatcher.SendEmail(t.Context(), "not-an-address")
	require.ErrorIs(t, err, ErrInvalidDestination)
}

func TestCodeDispatcher_SendErrorLeavesNoCooldown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	sendErr := errors.New("boom")
	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "13800138000").
		Return(nil, sendErr).
		Times(1)

	_, err := dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.ErrorIs(t, err, sendErr)
	assert.False(t, dispatcher.SMSCountdown().Active())

	// The failed attempt is not recorded, the retry goes through.
	client.EXPECT().
		SendSMSCode(gomock.Any(), "86", "13800138000").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	_, err = dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.NoError(t, err)

	dispatcher.SMSCountdown().Stop()
}

func TestCodeDispatcher_DispatchInFlight(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	require.True(t, dispatcher.sms.guard.TryAcquire())
	defer dispatcher.sms.guard.Release()

	_, err := dispatcher.SendSMS(t.Context(), "86", "13800138000")
	require.ErrorIs(t, err, ErrDispatchInFlight)
}

func TestCodeDispatcher_ChannelsAreIndependent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := mock_passport.NewMockClient(ctrl)
	dispatcher := NewCodeDispatcher(client, time.Minute, true)

	// A pending SMS send does not block the email channel.
	require.True(t, dispatcher.sms.guard.TryAcquire())
	defer dispatcher.sms.guard.Release()

	client.EXPECT().
		SendEmailCode(gomock.Any(), "member@example.com").
		Return(&passport.SendCodeResult{}, nil).
		Times(1)

	_, err := dispatcher.SendEmail(t.Context(), "member@example.com")
	require.NoError(t, err)

	assert.True(t, dispatcher.EmailCountdown().Active())
	assert.False(t, dispatcher.SMSCountdown().Active())

	dispatcher.EmailCountdown().Stop()
}
