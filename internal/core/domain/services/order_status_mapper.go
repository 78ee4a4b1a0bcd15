package services

import (
	"movebox/internal/core/domain/model/job"
	"movebox/internal/core/domain/model/order"
)

// OrderStatusMapper is a domain service that derives the order status
// implied by a job reaching a new status. The mapping depends on the job
// type because the two legs mark different milestones of the same order.
//
// Mapping:
//
//	job Accepted             -> order Accepted       (both legs)
//	job PickedUp  (Storage)  -> order PickedUp
//	job PickedUp  (Return)   -> no change
//	job Completed (Storage)  -> order InStorage
//	job Completed (Return)   -> order Returned
//
// All other job statuses leave the order untouched.
type OrderStatusMapper struct{}

// NewOrderStatusMapper creates a new OrderStatusMapper instance.
func NewOrderStatusMapper() OrderStatusMapper {
	return OrderStatusMapper{}
}

// Map returns the order status implied by a job of the given type
// reaching newStatus, or nil when the order is unaffected.
func (OrderStatusMapper) Map(jobType job.Type, newStatus job.Status) *order.Status {
	switch newStatus {
	case job.StatusAccepted:
		return statusPtr(order.StatusAccepted)
	case job.StatusPickedUp:
		if jobType == job.TypeStorage {
			return statusPtr(order.StatusPickedUp)
		}
		return nil
	case job.StatusCompleted:
		if jobType == job.TypeStorage {
			return statusPtr(order.StatusInStorage)
		}
		return statusPtr(order.StatusReturned)
	default:
		return nil
	}
}

func statusPtr(s order.Status) *order.Status {
	return &s
}
