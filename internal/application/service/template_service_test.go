package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/pkg/apperror"
)

func TestBuiltinTemplateCannotBeEdited(t *testing.T) {
	env := newTestEnv(t)

	name := "Renamed"
	_, err := env.templates.UpdateTemplate(env.ctx, &UpdateTemplateInput{
		ID:   entity.BuiltinTemplateID,
		Name: &name,
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestBuiltinTemplateCannotBeDeleted(t *testing.T) {
	env := newTestEnv(t)

	err := env.templates.DeleteTemplate(env.ctx, entity.BuiltinTemplateID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestDeleteDefaultTemplateFallsBackToBuiltin(t *testing.T) {
	env := newTestEnv(t)

	custom, err := env.templates.CreateTemplate(env.ctx, &CreateTemplateInput{
		Name:        "Modern Blue",
		BaseStyle:   enum.BaseStyleModern,
		PaperFormat: enum.PaperFormatA4,
		AccentColor: "#2563eb",
	})
	require.NoError(t, err)

	_, err = env.templates.SetDefaultTemplate(env.ctx, custom.ID)
	require.NoError(t, err)

	require.NoError(t, env.templates.DeleteTemplate(env.ctx, custom.ID))

	def, err := env.templates.GetDefaultTemplate(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.BuiltinTemplateID, def.ID)
	assert.True(t, def.IsDefault)
}

func TestSetDefaultTemplateIsExclusive(t *testing.T) {
	env := newTestEnv(t)

	custom, err := env.templates.CreateTemplate(env.ctx, &CreateTemplateInput{
		Name: "Minimal",
	})
	require.NoError(t, err)

	_, err = env.templates.SetDefaultTemplate(env.ctx, custom.ID)
	require.NoError(t, err)

	templates, err := env.templates.ListTemplates(env.ctx)
	require.NoError(t, err)

	defaults := 0
	for _, tpl := range templates {
		if tpl.IsDefault {
			defaults++
			assert.Equal(t, custom.ID, tpl.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestCreateTemplateAssignsFieldIDs(t *testing.T) {
	env := newTestEnv(t)

	tpl, err := env.templates.CreateTemplate(env.ctx, &CreateTemplateInput{
		Name: "With Fields",
		CustomFields: []entity.CustomField{
			{Label: "PO Number", IsEditable: true, Position: enum.FieldPositionHeader},
			{Label: "Terms", DefaultValue: "Net 30", Position: enum.FieldPositionFooter},
		},
	})
	require.NoError(t, err)

	require.Len(t, tpl.CustomFields, 2)
	for _, f := range tpl.CustomFields {
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", f.ID.String())
	}
}
