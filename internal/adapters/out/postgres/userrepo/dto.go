// Package userrepo provides data transfer objects and mapping functions
// for user persistence, covering students and movers alike. The mover
// credit balance lives here too and is adjusted with atomic increments
// so concurrent job completions never lose money.
package userrepo

import (
	"github.com/google/uuid"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user
// aggregates.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Role        int `gorm:"index"`
	CreditCents int64
	FcmToken    *string `gorm:"index"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database
// representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Role:        int(aggregate.Role()),
		CreditCents: aggregate.CreditCents(),
		FcmToken:    aggregate.FcmToken(),
	}
}

// toDomain converts a database DTO back into a user aggregate using
// RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, kernel.Role(dto.Role), dto.CreditCents, dto.FcmToken)
}
