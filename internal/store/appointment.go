package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agenda-api/internal/model"
)

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	const op = "store/CreateAppointment"

	res, err := s.appointments.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) AppointmentsByClient(ctx context.Context, clientID primitive.ObjectID) ([]model.Appointment, error) {
	return s.listAppointments(ctx, "store/AppointmentsByClient",
		bson.D{{Key: "cliente", Value: clientID}})
}

func (s *Store) AppointmentsByProfessional(ctx context.Context, professionalID primitive.ObjectID) ([]model.Appointment, error) {
	return s.listAppointments(ctx, "store/AppointmentsByProfessional",
		bson.D{{Key: "profissional", Value: professionalID}})
}

// no explicit sort: callers get the collection's natural return order
func (s *Store) listAppointments(ctx context.Context, op string, filter bson.D) ([]model.Appointment, error) {
	cur, err := s.appointments.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []model.Appointment
	for cur.Next(ctx) {
		var a model.Appointment
		if err := cur.Decode(&a); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		out = append(out, a)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}
	return out, nil
}
