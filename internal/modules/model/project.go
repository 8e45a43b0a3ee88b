package model

import "time"

const (
	StatusPending  = "Pendiente"
	StatusApproved = "Aprobado"
	StatusRejected = "Rechazado"
)

type InstitutionManager struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Names    string  `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	Surnames string  `gorm:"column:apellidos;type:varchar(100);not null" json:"apellidos"`
	Email    string  `gorm:"column:correo;type:varchar(150);not null;uniqueIndex:uq_encargados_institucion_correo" json:"correo"`
	Phone    *string `gorm:"column:telefono;type:varchar(20)" json:"telefono"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InstitutionManager) TableName() string { return "encargados_institucion" }

type Institution struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"column:nombre;type:varchar(150);not null;uniqueIndex:uq_instituciones_nombre" json:"nombre"`
	Address   *string `gorm:"column:direccion;type:text" json:"direccion"`
	Phone     *string `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	Email     *string `gorm:"column:email;type:varchar(150);uniqueIndex:uq_instituciones_email" json:"email"`
	FoundedOn *Date   `gorm:"column:fecha_fundacion" swaggertype:"string" format:"date" json:"fecha_fundacion"`
	NIT       *string `gorm:"column:nit;type:varchar(20)" json:"nit"`
	Status    string  `gorm:"column:estado;type:varchar(10);not null;default:'Pendiente';check:chk_instituciones_estado,estado IN ('Pendiente','Aprobado','Rechazado')" json:"estado"`
	ManagerID *uint   `gorm:"column:id_encargado;index" json:"id_encargado"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Institution <-> InstitutionManager
	Manager *InstitutionManager `gorm:"foreignKey:ManagerID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"encargado,omitempty"`
}

func (Institution) TableName() string { return "instituciones" }

type Project struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	InstitutionID uint    `gorm:"column:institucion_id;not null;index" json:"institucion_id"`
	ManagerID     *uint   `gorm:"column:id_encargado;index" json:"id_encargado"`
	Name          string  `gorm:"column:nombre;type:varchar(150);not null" json:"nombre"`
	Description   *string `gorm:"column:descripcion;type:text" json:"descripcion"`
	Website       *string `gorm:"column:sitio_web;type:varchar(255)" json:"sitio_web"`
	StartDate     *Date   `gorm:"column:fecha_inicio" swaggertype:"string" format:"date" json:"fecha_inicio"`
	EndDate       *Date   `gorm:"column:fecha_fin" swaggertype:"string" format:"date" json:"fecha_fin"`
	Modality      *string `gorm:"column:modalidad;type:varchar(50)" json:"modalidad"`
	Address       *string `gorm:"column:direccion;type:text" json:"direccion"`
	MainActivity  *string `gorm:"column:actividad_principal;type:text" json:"actividad_principal"`
	Schedule      *string `gorm:"column:horario_requerido;type:varchar(100)" json:"horario_requerido"`
	Available     bool    `gorm:"column:disponibilidad;not null" json:"disponibilidad"`
	Status        string  `gorm:"column:estado;type:varchar(10);not null;default:'Pendiente';check:chk_proyectos_institucion_estado,estado IN ('Pendiente','Aprobado','Rechazado')" json:"estado"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> Institution
	Institution *Institution `gorm:"foreignKey:InstitutionID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"institucion,omitempty"`

	// Project <-> InstitutionManager
	Manager *InstitutionManager `gorm:"foreignKey:ManagerID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"encargado,omitempty"`
}

func (Project) TableName() string { return "proyectos_institucion" }

type Application struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"column:estudiante_id;not null;uniqueIndex:uq_aplicaciones_estudiante_proyecto,priority:1" json:"estudiante_id"`
	ProjectID uint   `gorm:"column:proyecto_id;not null;uniqueIndex:uq_aplicaciones_estudiante_proyecto,priority:2;index" json:"proyecto_id"`
	Status    string `gorm:"column:estado;type:varchar(10);not null;default:'Pendiente';check:chk_aplicaciones_estudiantes_estado,estado IN ('Pendiente','Aprobado','Rechazado')" json:"estado"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Application <-> User (student)
	Student *User `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"estudiante,omitempty"`

	// Application <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"proyecto,omitempty"`
}

func (Application) TableName() string { return "aplicaciones_estudiantes" }
