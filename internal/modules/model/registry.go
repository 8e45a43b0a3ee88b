package model

// OnDelete is the referential action a foreign key declares.
type OnDelete string

const (
	Cascade  OnDelete = "CASCADE"
	SetNull  OnDelete = "SET NULL"
	Restrict OnDelete = "RESTRICT"
)

// Relation is one foreign key: Child.ForeignKey references Parent.id.
type Relation struct {
	Parent     string
	Child      string
	ForeignKey string
	OnDelete   OnDelete
}

// Registry describes the schema: the models in migration order, every foreign key
// and the associations each entity is read with. It is built once at startup and
// handed to the repositories; nothing mutates it afterwards.
type Registry struct {
	models    []any
	relations []Relation
	preloads  map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{
		models: []any{
			&Role{},
			&User{},
			&School{},
			&Career{},
			&Profile{},
			&Coordinator{},
			&InstitutionManager{},
			&Institution{},
			&Project{},
			&Application{},
			&Skill{},
			&UserSkill{},
			&ProjectSkill{},
			&EmergencyContact{},
			&ProjectActivity{},
			&Logbook{},
			&LogbookItem{},
			&LogbookProfile{},
		},
		relations: []Relation{
			{Parent: "roles", Child: "usuarios", ForeignKey: "rol_id", OnDelete: Restrict},
			{Parent: "usuarios", Child: "perfiles_usuario", ForeignKey: "usuario_id", OnDelete: Cascade},
			{Parent: "carreras", Child: "perfiles_usuario", ForeignKey: "id_carrera", OnDelete: SetNull},
			{Parent: "perfiles_usuario", Child: "contactos_emergencia", ForeignKey: "id_perfil_usuario", OnDelete: Cascade},
			{Parent: "escuelas", Child: "carreras", ForeignKey: "id_escuela", OnDelete: Cascade},
			{Parent: "carreras", Child: "coordinadores_carrera", ForeignKey: "id_carrera", OnDelete: Cascade},
			{Parent: "encargados_institucion", Child: "instituciones", ForeignKey: "id_encargado", OnDelete: SetNull},
			{Parent: "instituciones", Child: "proyectos_institucion", ForeignKey: "institucion_id", OnDelete: Cascade},
			{Parent: "encargados_institucion", Child: "proyectos_institucion", ForeignKey: "id_encargado", OnDelete: SetNull},
			{Parent: "usuarios", Child: "aplicaciones_estudiantes", ForeignKey: "estudiante_id", OnDelete: Cascade},
			{Parent: "proyectos_institucion", Child: "aplicaciones_estudiantes", ForeignKey: "proyecto_id", OnDelete: Cascade},
			{Parent: "usuarios", Child: "usuarios_habilidades", ForeignKey: "usuario_id", OnDelete: Cascade},
			{Parent: "habilidades", Child: "usuarios_habilidades", ForeignKey: "habilidad_id", OnDelete: Cascade},
			{Parent: "proyectos_institucion", Child: "proyectos_instituciones_habilidades", ForeignKey: "proyecto_id", OnDelete: Cascade},
			{Parent: "habilidades", Child: "proyectos_instituciones_habilidades", ForeignKey: "habilidad_id", OnDelete: Cascade},
			{Parent: "proyectos_institucion", Child: "actividades_proyecto", ForeignKey: "id_proyecto", OnDelete: Cascade},
			{Parent: "proyectos_institucion", Child: "bitacoras_proyecto", ForeignKey: "id_proyecto", OnDelete: Cascade},
			{Parent: "bitacoras_proyecto", Child: "bitacora_items", ForeignKey: "id_bitacora", OnDelete: Cascade},
			{Parent: "bitacoras_proyecto", Child: "bitacoras_perfiles_usuario", ForeignKey: "id_bitacora", OnDelete: Cascade},
			{Parent: "perfiles_usuario", Child: "bitacoras_perfiles_usuario", ForeignKey: "id_perfil_usuario", OnDelete: Cascade},
		},
		preloads: map[string][]string{
			"usuarios":                            {"Role"},
			"perfiles_usuario":                    {"User", "Career.School"},
			"carreras":                            {"School"},
			"coordinadores_carrera":               {"Career.School"},
			"instituciones":                       {"Manager"},
			"proyectos_institucion":               {"Institution", "Manager"},
			"aplicaciones_estudiantes":            {"Student", "Project"},
			"usuarios_habilidades":                {"Skill"},
			"proyectos_instituciones_habilidades": {"Skill"},
		},
	}
}

// Models returns every model in an order safe for AutoMigrate.
func (r *Registry) Models() []any {
	out := make([]any, len(r.models))
	copy(out, r.models)
	return out
}

// Dependents returns the relations whose parent is table.
func (r *Registry) Dependents(table string) []Relation {
	var out []Relation
	for _, rel := range r.relations {
		if rel.Parent == table {
			out = append(out, rel)
		}
	}
	return out
}

// Restricting returns the dependents of table that block its deletion.
func (r *Registry) Restricting(table string) []Relation {
	var out []Relation
	for _, rel := range r.Dependents(table) {
		if rel.OnDelete == Restrict {
			out = append(out, rel)
		}
	}
	return out
}

// Preloads returns the associations eager-loaded whenever table is read.
func (r *Registry) Preloads(table string) []string {
	return r.preloads[table]
}
