package model

import "time"

const (
	LogbookInProgress = "En Proceso"
	LogbookApproved   = "Aprobado"
	LogbookRejected   = "Rechazado"
)

type ProjectActivity struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProjectID uint    `gorm:"column:id_proyecto;not null;index" json:"id_proyecto"`
	Activity  string  `gorm:"column:actividad_a_realizar;type:text;not null" json:"actividad_a_realizar"`
	Objective *string `gorm:"column:objetivo;type:text" json:"objetivo"`
	Goal      *string `gorm:"column:meta;type:text" json:"meta"`
	Duration  *string `gorm:"column:duracion;type:varchar(50)" json:"duracion"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"proyecto,omitempty"`
}

func (ProjectActivity) TableName() string { return "actividades_proyecto" }

type Logbook struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProjectID uint    `gorm:"column:id_proyecto;not null;index" json:"id_proyecto"`
	StartDate *Date   `gorm:"column:fecha_inicio" swaggertype:"string" format:"date" json:"fecha_inicio"`
	EndDate   *Date   `gorm:"column:fecha_fin" swaggertype:"string" format:"date" json:"fecha_fin"`
	Status    string  `gorm:"column:estado;type:varchar(12);not null;default:'En Proceso';check:chk_bitacoras_proyecto_estado,estado IN ('En Proceso','Aprobado','Rechazado')" json:"estado"`
	Notes     *string `gorm:"column:observaciones;type:text" json:"observaciones"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"proyecto,omitempty"`
}

func (Logbook) TableName() string { return "bitacoras_proyecto" }

// LogbookItem is one time punch recorded against a logbook.
type LogbookItem struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	LogbookID  uint       `gorm:"column:id_bitacora;not null;index" json:"id_bitacora"`
	Details    string     `gorm:"column:detalle_actividades;type:text;not null" json:"detalle_actividades"`
	PunchIn    time.Time  `gorm:"column:punch_in;not null" json:"punch_in"`
	PunchOut   *time.Time `gorm:"column:punch_out" json:"punch_out"`
	TotalHours *float64   `gorm:"column:total_horas;type:decimal(6,2)" json:"total_horas"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Logbook *Logbook `gorm:"foreignKey:LogbookID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"bitacora,omitempty"`
}

func (LogbookItem) TableName() string { return "bitacora_items" }

// LogbookProfile assigns a student profile to a logbook.
type LogbookProfile struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	LogbookID uint `gorm:"column:id_bitacora;not null;uniqueIndex:uq_bitacoras_perfiles_par,priority:1" json:"id_bitacora"`
	ProfileID uint `gorm:"column:id_perfil_usuario;not null;uniqueIndex:uq_bitacoras_perfiles_par,priority:2;index" json:"id_perfil_usuario"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Logbook *Logbook `gorm:"foreignKey:LogbookID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"bitacora,omitempty"`
	Profile *Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"perfil,omitempty"`
}

func (LogbookProfile) TableName() string { return "bitacoras_perfiles_usuario" }
