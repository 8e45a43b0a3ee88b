package model

import "time"

type Role struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:nombre;type:varchar(50);not null;uniqueIndex:uq_roles_nombre" json:"nombre"`
	Description *string `gorm:"column:descripcion;type:text" json:"descripcion"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	FirstName      string  `gorm:"column:primer_nombre;type:varchar(100);not null" json:"primer_nombre"`
	MiddleName     *string `gorm:"column:segundo_nombre;type:varchar(100)" json:"segundo_nombre"`
	LastName       string  `gorm:"column:primer_apellido;type:varchar(100);not null" json:"primer_apellido"`
	SecondLastName *string `gorm:"column:segundo_apellido;type:varchar(100)" json:"segundo_apellido"`
	Email          string  `gorm:"column:email;type:varchar(150);not null;uniqueIndex:uq_usuarios_email" json:"email"`
	PasswordHash   string  `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Phone          *string `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	RoleID         uint    `gorm:"column:rol_id;not null;index" json:"rol_id"`
	Active         bool    `gorm:"column:activo;not null" json:"activo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// User <-> Role
	Role *Role `gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"rol,omitempty"`
}

func (User) TableName() string { return "usuarios" }

const (
	GenderMale   = "Masculino"
	GenderFemale = "Femenino"
	GenderOther  = "Otro"
)

type Profile struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"column:usuario_id;not null;uniqueIndex:uq_perfiles_usuario_usuario" json:"usuario_id"`
	CareerID     *uint   `gorm:"column:id_carrera;index" json:"id_carrera"`
	Address      *string `gorm:"column:direccion;type:text" json:"direccion"`
	Phone        *string `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	BirthDate    *Date   `gorm:"column:fecha_nacimiento" swaggertype:"string" format:"date" json:"fecha_nacimiento"`
	Gender       *string `gorm:"column:genero;type:varchar(10);check:chk_perfiles_usuario_genero,genero IN ('Masculino','Femenino','Otro')" json:"genero"`
	Photo        *string `gorm:"column:foto_perfil;type:varchar(255)" json:"foto_perfil"`
	AcademicYear *int    `gorm:"column:anio_academico" json:"anio_academico"`
	StudentCode  *string `gorm:"column:carnet;type:varchar(20);uniqueIndex:uq_perfiles_usuario_carnet" json:"carnet"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Profile <-> User (1:1 through the unique usuario_id)
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"usuario,omitempty"`

	// Profile <-> Career
	Career *Career `gorm:"foreignKey:CareerID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"carrera,omitempty"`
}

func (Profile) TableName() string { return "perfiles_usuario" }

type EmergencyContact struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProfileID uint    `gorm:"column:id_perfil_usuario;not null;index" json:"id_perfil_usuario"`
	Names     string  `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	Surnames  string  `gorm:"column:apellidos;type:varchar(100);not null" json:"apellidos"`
	Phone     string  `gorm:"column:telefono;type:varchar(20);not null" json:"telefono"`
	Address   *string `gorm:"column:direccion;type:text" json:"direccion"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"perfil,omitempty"`
}

func (EmergencyContact) TableName() string { return "contactos_emergencia" }
