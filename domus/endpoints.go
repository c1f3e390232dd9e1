package domus

// Endpoint describes one route exposed by the gateway in front of Domus
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// EndpointGroup is a titled set of endpoints for the catalogue page
type EndpointGroup struct {
	Title     string
	Endpoints []Endpoint
}

// Catalogue lists the gateway routes available once credentials are configured
func Catalogue() []EndpointGroup {
	return []EndpointGroup{
		{
			Title: "Inventario y Propiedades",
			Endpoints: []Endpoint{
				{"GET", "/inventario/local/", "Exportar inventario de propiedades (local)"},
				{"GET", "/inventario/export/local/", "Exportar inventario de propiedades (local)"},
				{"GET", "/asesores/", "Listar asesores"},
				{"POST", "/asesores/crear/", "Crear un nuevo asesor"},
				{"GET", "/propietarios/", "Listar propietarios"},
				{"GET", "/proyectos/", "Listar proyectos"},
				{"GET", "/tipos-inmueble/", "Obtener tipos de inmueble"},
				{"GET", "/inmuebles/<codpro>/", "Ver detalle de un inmueble por código"},
				{"GET", "/inmuebles/<codpro>/<idpro>/", "Ver detalle de un inmueble por código e ID"},
			},
		},
		{
			Title: "CRM - Contactos y Perfiles",
			Endpoints: []Endpoint{
				{"GET/POST", "/crm/contactos/", "Listar o crear contactos"},
				{"GET/PUT", "/crm/contactos/<contact_id>/", "Detalle de un contacto (lectura/escritura)"},
				{"GET", "/crm/contactos/para-cita/", "Buscar contactos disponibles para una cita"},
				{"GET", "/crm/companias/perfiles/", "Obtener perfiles de compañía"},
			},
		},
		{
			Title: "CRM - Relaciones y Tags",
			Endpoints: []Endpoint{
				{"POST", "/crm/entidades/vincular/", "Vincular una entidad a un contacto"},
				{"POST", "/crm/capturas/", "Vincular una captura de lead a un contacto"},
				{"POST", "/crm/tags-contacto/", "Asignar un tag a un contacto"},
				{"POST", "/crm/asignar-asesor/", "Reasignar un asesor a un contacto"},
				{"POST", "/crm/contacto/cambiar-estado/", "Cambiar el estado de un contacto"},
				{"GET", "/crm/contacto-estado-consulta/<biz_id>/", "Consultar estado de un contacto por ID de negocio"},
			},
		},
		{
			Title: "CRM - Citas y Disponibilidad",
			Endpoints: []Endpoint{
				{"GET", "/crm/citas/", "Listar todas las citas"},
				{"GET", "/crm/citas/<appointment_id>/", "Detalle de una cita específica"},
				{"POST", "/crm/citas/crear/", "Crear una nueva cita"},
				{"POST", "/crm/citas/editar/", "Editar una cita existente"},
				{"GET", "/crm/disponible/calendario/", "Consultar disponibilidad de calendario"},
				{"GET", "/crm/disponible/agentes/", "Consultar agentes disponibles"},
				{"GET", "/crm/disponibilidad/agentes/ranking/", "Ranking de agentes por disponibilidad"},
				{"POST", "/crm/crear-cita/auto/", "Agendar cita automáticamente"},
				{"GET", "/crm/citas/tipos/", "Obtener los tipos de cita disponibles"},
				{"GET", "/crm/sucursales/", "Listar sucursales"},
				{"POST", "/domus/crm/follows", "Crear un seguimiento (Follow-up) para una cita"},
			},
		},
		{
			Title: "Flujo Unificado",
			Endpoints: []Endpoint{
				{"ANY", "/crm/flujo-unificado/", "Inbox para el Flujo Unificado (Webhook)"},
				{"ANY", "/crm/flujo-unificado-automatizacion/", "Endpoint para automatización del Flujo Unificado"},
			},
		},
		{
			Title: "Configuración",
			Endpoints: []Endpoint{
				{"GET/POST", "/credentials/", "Gestionar credenciales de API de Domus"},
			},
		},
		{
			Title: "Tareas Asíncronas",
			Endpoints: []Endpoint{
				{"POST", "/inventario/export/full/", "Iniciar exportación asíncrona de todo el inventario"},
				{"GET", "/inventario/export/status/<task_id>/", "Ver estado de la tarea de exportación asíncrona"},
			},
		},
	}
}
