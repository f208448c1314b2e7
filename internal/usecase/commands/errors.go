package commands

import "equipment-rental/internal/pkg/errs"

var (
	ErrItemNotFound          = errs.Mark(errs.New("selected equipment does not exist"), errs.ErrValidation)
	ErrRentalNotFound        = errs.Mark(errs.New("rental request does not exist"), errs.ErrNotFound)
	ErrRentalAlreadyResolved = errs.Mark(errs.New("rental request has already been resolved"), errs.ErrConflict)
	ErrPersistenceFailed     = errs.New("failed to save changes")
)

// validation marks a domain rule violation so the HTTP edge answers 400 with
// the domain message.
func validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}
