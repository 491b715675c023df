package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// tipo values on the wire: 1 = cliente, 2 = profissional
const (
	RoleClient       = 1
	RoleProfessional = 2
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role         int                `bson:"tipo" json:"tipo"`
	Name         string             `bson:"nome" json:"nome"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"senha" json:"-"`
}

type Appointment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID       primitive.ObjectID `bson:"cliente" json:"clienteId"`
	ProfessionalID primitive.ObjectID `bson:"profissional" json:"profissionalId"`
	Date           time.Time          `bson:"data" json:"data"`
	Time           string             `bson:"horario" json:"horario"`
	Service        string             `bson:"servico" json:"servico"`
}
