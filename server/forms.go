package server

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/crm-gateway-admin/crmapi"
	"github.com/jrsteele09/crm-gateway-admin/domus"
	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/tenants"
	"github.com/jrsteele09/crm-gateway-admin/users"
)

// LoginForm is the login page submission
type LoginForm struct {
	Slug     string `json:"slug" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Messages for field/tag pairs whose wording the forms show verbatim
var fieldMessages = map[string]string{
	"slug.required":      "Organization slug is required.",
	"slug.min":           "Organization slug is required.",
	"email.required":     "Invalid email address.",
	"email.email":        "Invalid email address.",
	"password.required":  "Password is required.",
	"full_name.required": "El nombre debe tener al menos 2 caracteres.",
	"full_name.min":      "El nombre debe tener al menos 2 caracteres.",
	"role.oneof":         "El rol es requerido.",
	"name.required":      "El nombre debe tener al menos 2 caracteres.",
	"name.min":           "El nombre debe tener al menos 2 caracteres.",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names instead of struct field names for error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// validateForm returns one message per failing field, or nil when the form is valid
func (s *Server) validateForm(form any) []string {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return messages
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido.", field)
	case "email":
		return fmt.Sprintf("%s debe ser un correo electrónico válido.", field)
	case "url":
		return fmt.Sprintf("%s debe ser una URL válida.", field)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s.", field, fe.Param())
	default:
		return fmt.Sprintf("%s no es válido (%s).", field, fe.Tag())
	}
}

// userMessage is the text shown for an upstream failure
func userMessage(err error) string {
	return crmapi.UserMessage(err)
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.PostFormValue(key)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

func parseLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Slug:     strings.TrimSpace(r.PostFormValue("slug")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
}

func parseUserForm(r *http.Request) users.Input {
	return users.Input{
		FullName: strings.TrimSpace(r.PostFormValue("full_name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Role:     users.RoleType(r.PostFormValue("role")),
	}
}

func parseTenantForm(r *http.Request) tenants.Input {
	return tenants.Input{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Slug:     tenants.NormalizeSlug(r.PostFormValue("slug")),
		IsActive: formBool(r, "is_active"),
	}
}

func parseDomusForm(r *http.Request) (domus.Input, error) {
	input := domus.Input{
		CRMToken:       strings.TrimSpace(r.PostFormValue("crm_token")),
		InventoryToken: strings.TrimSpace(r.PostFormValue("inventory_token")),
		APIBase:        strings.TrimSpace(r.PostFormValue("api_base")),
		CRMBase:        strings.TrimSpace(r.PostFormValue("crm_base")),
		Grupo:          strings.TrimSpace(r.PostFormValue("grupo")),
		RequiereGrupo:  formBool(r, "requiere_grupo"),
	}
	if raw := strings.TrimSpace(r.PostFormValue("inmobiliaria")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return input, errors.Wrapf(errors.ErrInvalidArgument, "inmobiliaria %q", raw)
		}
		input.Inmobiliaria = n
	}
	return input, nil
}
