// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StudentID   uuid.UUID  `gorm:"type:uuid;index"`
	MoverID     *uuid.UUID `gorm:"type:uuid;index"`
	Status      int        `gorm:"index"`
	Volume      int
	PriceCents  int64
	Pickup      AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff     AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	ScheduledAt time.Time
	PaymentRef  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded postal address within the order
// table.
type AddressDTO struct {
	Street string
	City   string
	Zip    string
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var moverID *uuid.UUID
	if id := aggregate.Mover(); id != nil {
		raw := id.Bytes()
		moverID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		StudentID:  aggregate.StudentID().Bytes(),
		MoverID:    moverID,
		Status:     int(aggregate.Status()),
		Volume:     aggregate.Volume(),
		PriceCents: aggregate.Price().Cents(),
		Pickup: AddressDTO{
			Street: aggregate.PickupAddress().Street(),
			City:   aggregate.PickupAddress().City(),
			Zip:    aggregate.PickupAddress().Zip(),
		},
		Dropoff: AddressDTO{
			Street: aggregate.DropoffAddress().Street(),
			City:   aggregate.DropoffAddress().City(),
			Zip:    aggregate.DropoffAddress().Zip(),
		},
		ScheduledAt: aggregate.ScheduledAt(),
		PaymentRef:  aggregate.PaymentRef(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	studentID, err := kernel.UUIDFromBytes(dto.StudentID[:])
	if err != nil {
		return nil, err
	}

	var moverID *kernel.UUID
	if dto.MoverID != nil {
		mID, moverErr := kernel.UUIDFromBytes((*dto.MoverID)[:])
		if moverErr != nil {
			return nil, moverErr
		}
		moverID = &mID
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewAddress(dto.Pickup.Street, dto.Pickup.City, dto.Pickup.Zip)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewAddress(dto.Dropoff.Street, dto.Dropoff.City, dto.Dropoff.Zip)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		studentID,
		moverID,
		order.Status(dto.Status),
		dto.Volume,
		price,
		pickup,
		dropoff,
		dto.ScheduledAt,
		dto.PaymentRef,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
