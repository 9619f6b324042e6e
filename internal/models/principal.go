package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// Principal is the identity resolved from a credential pair. Exactly one of
// Customer, Driver or Admin is set, matching Role.
type Principal struct {
	Role     Role
	Customer *Customer
	Driver   *Driver
	Admin    *Admin
}

func (p *Principal) ID() primitive.ObjectID {
	switch p.Role {
	case RoleCustomer:
		return p.Customer.ID
	case RoleDriver:
		return p.Driver.ID
	case RoleAdmin:
		return p.Admin.ID
	}
	return primitive.NilObjectID
}

// Details returns the role record for serialization. Passwords never leave the
// models through JSON.
func (p *Principal) Details() interface{} {
	switch p.Role {
	case RoleCustomer:
		return p.Customer
	case RoleDriver:
		return p.Driver
	case RoleAdmin:
		return p.Admin
	}
	return nil
}
