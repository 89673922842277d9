// Package policy holds the authorization rules for the whole API.
// Handlers must route every permission decision through Authorize so
// role checks never spread back into transport code.
package policy

import "errors"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

type Action string

const (
	ActionCreateLesson  Action = "lesson:create"
	ActionDeleteLesson  Action = "lesson:delete"
	ActionListLessons   Action = "lesson:list"
	ActionCreateBooking Action = "booking:create"
	ActionListBookings  Action = "booking:list"
	ActionCancelBooking Action = "booking:cancel"
)

var ErrForbidden = errors.New("forbidden")

// Authorize decides whether role may perform action. ownerMatch reports
// whether the caller owns the target resource and only matters for
// booking cancellation. Any combination not listed is denied.
func Authorize(role Role, action Action, ownerMatch bool) error {
	switch action {
	case ActionCreateLesson, ActionDeleteLesson:
		if role == RoleAdmin {
			return nil
		}
	case ActionListLessons, ActionListBookings:
		if role == RoleAdmin || role == RoleStudent {
			return nil
		}
	case ActionCreateBooking:
		if role == RoleStudent {
			return nil
		}
	case ActionCancelBooking:
		if role == RoleAdmin {
			return nil
		}
		if role == RoleStudent && ownerMatch {
			return nil
		}
	}
	return ErrForbidden
}
