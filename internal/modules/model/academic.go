package model

import "time"

type School struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;type:varchar(150);not null;uniqueIndex:uq_escuelas_nombre" json:"nombre"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (School) TableName() string { return "escuelas" }

type Career struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:nombre;type:varchar(150);not null;uniqueIndex:uq_carreras_nombre_escuela,priority:1" json:"nombre"`
	SchoolID uint   `gorm:"column:id_escuela;not null;uniqueIndex:uq_carreras_nombre_escuela,priority:2;index" json:"id_escuela"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Career <-> School
	School *School `gorm:"foreignKey:SchoolID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"escuela,omitempty"`
}

func (Career) TableName() string { return "carreras" }

type Coordinator struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Names    string  `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	Surnames string  `gorm:"column:apellidos;type:varchar(100);not null" json:"apellidos"`
	Email    string  `gorm:"column:correo_institucional;type:varchar(150);not null;uniqueIndex:uq_coordinadores_carrera_correo" json:"correo_institucional"`
	Phone    *string `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	CareerID uint    `gorm:"column:id_carrera;not null;index" json:"id_carrera"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Coordinator <-> Career
	Career *Career `gorm:"foreignKey:CareerID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"carrera,omitempty"`
}

func (Coordinator) TableName() string { return "coordinadores_carrera" }
