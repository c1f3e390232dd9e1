package domus

import "context"

const (
	DefaultAPIBase      = "https://apiv3get.domus.la"
	DefaultCRMBase      = "https://crm_api.domus.la"
	DefaultInmobiliaria = 1
	DefaultGrupo        = "26007"
)

// Credential holds the tokens and endpoints the gateway uses to reach a tenant's Domus CRM
type Credential struct {
	ID             int64  `json:"id"`
	CRMToken       string `json:"crm_token"`
	InventoryToken string `json:"inventory_token"`
	APIBase        string `json:"api_base"`
	CRMBase        string `json:"crm_base"`
	Inmobiliaria   int    `json:"inmobiliaria"`
	Grupo          string `json:"grupo"`
	RequiereGrupo  bool   `json:"requiere_grupo"`
}

// Input is the form payload posted back to the credentials endpoint, which creates or updates
type Input struct {
	CRMToken       string `json:"crm_token" validate:"required"`
	InventoryToken string `json:"inventory_token" validate:"required"`
	APIBase        string `json:"api_base" validate:"required,url"`
	CRMBase        string `json:"crm_base" validate:"required,url"`
	Inmobiliaria   int    `json:"inmobiliaria" validate:"gte=1"`
	Grupo          string `json:"grupo"`
	RequiereGrupo  bool   `json:"requiere_grupo"`
}

// DefaultCredential is shown when a tenant has not stored Domus credentials yet
func DefaultCredential() Credential {
	return Credential{
		APIBase:       DefaultAPIBase,
		CRMBase:       DefaultCRMBase,
		Inmobiliaria:  DefaultInmobiliaria,
		Grupo:         DefaultGrupo,
		RequiereGrupo: true,
	}
}

// Configured reports whether the credential was stored upstream rather than defaulted
func (c Credential) Configured() bool {
	return c.ID != 0
}

// Repo reads and writes the Domus credentials of the session's tenant
type Repo interface {
	Get(ctx context.Context) (Credential, error)
	Update(ctx context.Context, input Input) (Credential, error)
}
