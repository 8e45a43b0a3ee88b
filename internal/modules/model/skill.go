package model

import "time"

type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"column:descripcion;type:varchar(255);not null" json:"descripcion"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Skill) TableName() string { return "habilidades" }

// UserSkill links a user to a skill. Each pair appears once.
type UserSkill struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"column:usuario_id;not null;uniqueIndex:uq_usuarios_habilidades_par,priority:1" json:"usuario_id"`
	SkillID uint `gorm:"column:habilidad_id;not null;uniqueIndex:uq_usuarios_habilidades_par,priority:2;index" json:"habilidad_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"usuario,omitempty"`
	Skill *Skill `gorm:"foreignKey:SkillID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"habilidad,omitempty"`
}

func (UserSkill) TableName() string { return "usuarios_habilidades" }

// ProjectSkill links a project to a skill it requires. Each pair appears once.
type ProjectSkill struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"column:proyecto_id;not null;uniqueIndex:uq_proyectos_habilidades_par,priority:1" json:"proyecto_id"`
	SkillID   uint `gorm:"column:habilidad_id;not null;uniqueIndex:uq_proyectos_habilidades_par,priority:2;index" json:"habilidad_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"proyecto,omitempty"`
	Skill   *Skill   `gorm:"foreignKey:SkillID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"habilidad,omitempty"`
}

func (ProjectSkill) TableName() string { return "proyectos_instituciones_habilidades" }
