package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/pkg/apperror"
)

// TemplateService handles invoice template operations. The built-in template
// is reserved: it can be set as default but never edited or deleted.
type TemplateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// CreateTemplateInput represents the create template input
type CreateTemplateInput struct {
	Name         string
	BaseStyle    enum.BaseStyle
	PaperFormat  enum.PaperFormat
	AccentColor  string
	CustomFields []entity.CustomField
}

// CreateTemplate creates a new invoice template. Custom fields without an id
// are assigned one.
func (s *TemplateService) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*entity.InvoiceTemplate, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Template name is required")
	}

	fields := make([]entity.CustomField, len(input.CustomFields))
	copy(fields, input.CustomFields)
	for i := range fields {
		if fields[i].ID == uuid.Nil {
			fields[i].ID = uuid.New()
		}
	}

	template := &entity.InvoiceTemplate{
		Name:         input.Name,
		BaseStyle:    input.BaseStyle,
		PaperFormat:  input.PaperFormat,
		AccentColor:  input.AccentColor,
		CustomFields: fields,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*entity.InvoiceTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Template")
	}
	return template, nil
}

// ListTemplates lists all invoice templates
func (s *TemplateService) ListTemplates(ctx context.Context) ([]entity.InvoiceTemplate, error) {
	return s.templateRepo.List(ctx)
}

// GetDefaultTemplate returns the template marked as default, falling back to
// the built-in template
func (s *TemplateService) GetDefaultTemplate(ctx context.Context) (*entity.InvoiceTemplate, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].IsDefault {
			return &templates[i], nil
		}
	}
	for i := range templates {
		if templates[i].IsBuiltin() {
			return &templates[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Default template")
}

// UpdateTemplateInput represents the update template input
type UpdateTemplateInput struct {
	ID           uuid.UUID
	Name         *string
	BaseStyle    *enum.BaseStyle
	PaperFormat  *enum.PaperFormat
	AccentColor  *string
	CustomFields *[]entity.CustomField
}

// UpdateTemplate updates a template. The built-in template is read-only.
func (s *TemplateService) UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*entity.InvoiceTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Template")
	}
	if template.IsBuiltin() {
		return nil, apperror.NewForbiddenError("The built-in template cannot be modified")
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.BaseStyle != nil {
		template.BaseStyle = *input.BaseStyle
	}
	if input.PaperFormat != nil {
		template.PaperFormat = *input.PaperFormat
	}
	if input.AccentColor != nil {
		template.AccentColor = *input.AccentColor
	}
	if input.CustomFields != nil {
		fields := make([]entity.CustomField, len(*input.CustomFields))
		copy(fields, *input.CustomFields)
		for i := range fields {
			if fields[i].ID == uuid.Nil {
				fields[i].ID = uuid.New()
			}
		}
		template.CustomFields = fields
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// SetDefaultTemplate marks the given template as default and clears the flag
// everywhere else
func (s *TemplateService) SetDefaultTemplate(ctx context.Context, id uuid.UUID) (*entity.InvoiceTemplate, error) {
	target, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NewNotFoundError("Template")
	}

	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range templates {
		wantDefault := templates[i].ID == id
		if templates[i].IsDefault == wantDefault {
			continue
		}
		templates[i].IsDefault = wantDefault
		if err := s.templateRepo.Update(ctx, &templates[i]); err != nil {
			return nil, err
		}
	}

	target.IsDefault = true
	return target, nil
}

// DeleteTemplate deletes a template. The built-in template cannot be deleted.
// When the deleted template was the default, the built-in template becomes
// default again.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Template")
	}
	if template.IsBuiltin() {
		return apperror.NewForbiddenError("The built-in template cannot be deleted")
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return err
	}

	if template.IsDefault {
		builtin, err := s.templateRepo.GetByID(ctx, entity.BuiltinTemplateID)
		if err != nil {
			return err
		}
		if builtin != nil && !builtin.IsDefault {
			builtin.IsDefault = true
			if err := s.templateRepo.Update(ctx, builtin); err != nil {
				return err
			}
		}
	}

	return nil
}
