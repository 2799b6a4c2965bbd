package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/pkg/apperror"
)

func TestDeleteLastProfileRejected(t *testing.T) {
	env := newTestEnv(t)

	profiles, err := env.profiles.ListProfiles(env.ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	err = env.profiles.DeleteProfile(env.ctx, profiles[0].ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Still there.
	remaining, err := env.profiles.ListProfiles(env.ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteDefaultProfileReassigns(t *testing.T) {
	env := newTestEnv(t)

	second, err := env.profiles.CreateProfile(env.ctx, &CreateProfileInput{Name: "Branch Office"})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	seeded, err := env.profiles.ListProfiles(env.ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 2)
	defaultProfile := seeded[0]
	require.True(t, defaultProfile.IsDefault)

	require.NoError(t, env.profiles.DeleteProfile(env.ctx, defaultProfile.ID))

	remaining, err := env.profiles.ListProfiles(env.ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
	assert.True(t, remaining[0].IsDefault)

	active, err := env.profiles.GetActiveProfile(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestActivateProfile(t *testing.T) {
	env := newTestEnv(t)

	second, err := env.profiles.CreateProfile(env.ctx, &CreateProfileInput{Name: "Branch Office"})
	require.NoError(t, err)

	_, err = env.profiles.ActivateProfile(env.ctx, second.ID)
	require.NoError(t, err)

	active, err := env.profiles.GetActiveProfile(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestFirstProfileBecomesDefaultAndActive(t *testing.T) {
	env := newTestEnv(t)

	active, err := env.profiles.GetActiveProfile(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Main Business Hub", active.Name)
	assert.True(t, active.IsDefault)
}

func TestSetDefaultProfileIsExclusive(t *testing.T) {
	env := newTestEnv(t)

	second, err := env.profiles.CreateProfile(env.ctx, &CreateProfileInput{Name: "Branch Office"})
	require.NoError(t, err)

	_, err = env.profiles.SetDefaultProfile(env.ctx, second.ID)
	require.NoError(t, err)

	profiles, err := env.profiles.ListProfiles(env.ctx)
	require.NoError(t, err)

	defaults := 0
	for _, p := range profiles {
		if p.IsDefault {
			defaults++
			assert.Equal(t, second.ID, p.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}
