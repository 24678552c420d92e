package entity

import "time"

// CustomerProfile son los datos demográficos opcionales de un cliente,
// correlacionados con las ventas únicamente por igualdad exacta de Name.
// Puede haber ventas sin perfil (las estadísticas se calculan igual) y
// perfiles sin ventas.
//
// Los campos demográficos son punteros: ausente y vacío se distinguen, y el
// agregador presenta los ausentes como "N/A".
type CustomerProfile struct {
	ID             string     `bson:"_id,omitempty" json:"-"`
	Name           string     `bson:"name" json:"name"`
	Age            *int       `bson:"age,omitempty" json:"age,omitempty"`
	Sex            *string    `bson:"sex,omitempty" json:"sex,omitempty"`
	Address        *string    `bson:"address,omitempty" json:"address,omitempty"`
	Occupation     *string    `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Business       *string    `bson:"business,omitempty" json:"business,omitempty"`
	Phone          *string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email          *string    `bson:"email,omitempty" json:"email,omitempty"`
	Notes          *string    `bson:"notes,omitempty" json:"notes,omitempty"`
	ProfilePicture *string    `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"` // data URL base64
	CreatedAt      *time.Time `bson:"created_at,omitempty" json:"-"`
	UpdatedAt      *time.Time `bson:"updated_at,omitempty" json:"-"`
	UpdatedBy      string     `bson:"updated_by,omitempty" json:"-"`
}
