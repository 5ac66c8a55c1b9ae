package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// NotFoundError signals a reference to an unknown ship, berth or crane
type NotFoundError struct {
	*DomainError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s %s not found", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}

// OccupiedError signals that a berth already holds a ship
type OccupiedError struct {
	*DomainError
	BerthID  BerthID
	Occupant ShipID
}

func NewOccupiedError(berthID BerthID, occupant ShipID) *OccupiedError {
	return &OccupiedError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s is occupied by %s", berthID, occupant)},
		BerthID:     berthID,
		Occupant:    occupant,
	}
}

// BusyError signals that a crane is already claimed or out of service
type BusyError struct {
	*DomainError
	CraneID CraneID
}

func NewBusyError(craneID CraneID, reason string) *BusyError {
	return &BusyError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s is %s", craneID, reason)},
		CraneID:     craneID,
	}
}

// InvalidStateError signals a command that is illegal in the current state,
// such as assigning a crane to a ship that is not docked
type InvalidStateError struct {
	*DomainError
}

func NewInvalidStateError(message string) *InvalidStateError {
	return &InvalidStateError{DomainError: &DomainError{Message: message}}
}

// GameOverError rejects commands submitted after the match has ended
type GameOverError struct {
	*DomainError
}

func NewGameOverError() *GameOverError {
	return &GameOverError{DomainError: &DomainError{Message: "game is over, no further commands accepted"}}
}

// FormatError signals a malformed or invariant-violating replay import
type FormatError struct {
	*DomainError
}

func NewFormatError(message string) *FormatError {
	return &FormatError{DomainError: &DomainError{Message: message}}
}
