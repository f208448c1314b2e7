package rental

import (
	"errors"
	"strings"
	"time"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/domain/user"
)

var (
	ErrEmptyID           = errors.New("request id cannot be empty")
	ErrNoItemSelected    = errors.New("no equipment selected")
	ErrInvalidStatus     = errors.New("invalid rental status")
	ErrInvalidTransition = errors.New("status can only be set to approved or disapproved")
	ErrAlreadyResolved   = errors.New("rental request is already resolved")
)

// Request is a user's ask to rent one catalog item for a period. The item
// and requester are snapshots taken at submission.
type Request struct {
	id             string
	equipmentID    string
	equipmentTitle string
	userEmail      string
	userName       string
	period         Period
	status         Status
	adminNote      Note
	createdAt      time.Time
}

func NewRequest(id string, item *catalog.Item, requester user.Identity, period Period, createdAt time.Time) (*Request, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if !requester.IsSignedIn() {
		return nil, user.ErrNotSignedIn
	}
	if item == nil {
		return nil, ErrNoItemSelected
	}

	return &Request{
		id:             id,
		equipmentID:    item.ID(),
		equipmentTitle: item.Title(),
		userEmail:      requester.Email().Value(),
		userName:       requester.Name(),
		period:         period,
		status:         StatusPending,
		createdAt:      createdAt,
	}, nil
}

func ReconstructRequest(
	id, equipmentID, equipmentTitle, userEmail, userName string,
	period Period,
	status Status,
	adminNote Note,
	createdAt time.Time,
) *Request {
	return &Request{
		id:             id,
		equipmentID:    equipmentID,
		equipmentTitle: equipmentTitle,
		userEmail:      userEmail,
		userName:       userName,
		period:         period,
		status:         status,
		adminNote:      adminNote,
		createdAt:      createdAt,
	}
}

// Resolve records the admin decision. Only pending requests can be resolved.
func (r *Request) Resolve(status Status, note Note) error {
	if !status.IsDecision() {
		return ErrInvalidTransition
	}
	if r.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	r.status = status
	r.adminNote = note
	return nil
}

func (r *Request) Clone() *Request {
	c := *r
	return &c
}

func (r *Request) IsPending() bool { return r.status == StatusPending }

func (r *Request) BelongsTo(email string) bool {
	return email != "" && r.userEmail == email
}

func (r *Request) ID() string             { return r.id }
func (r *Request) EquipmentID() string    { return r.equipmentID }
func (r *Request) EquipmentTitle() string { return r.equipmentTitle }
func (r *Request) UserEmail() string      { return r.userEmail }
func (r *Request) UserName() string       { return r.userName }
func (r *Request) Period() Period         { return r.period }
func (r *Request) Status() Status         { return r.status }
func (r *Request) AdminNote() Note        { return r.adminNote }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
