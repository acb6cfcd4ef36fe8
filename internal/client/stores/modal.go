package stores

import "sync"

// ModalKind enumerates the application's modals.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalAuth
	ModalEnrollment
	ModalEnrollmentClosed
	ModalSuccess
	ModalForgotPassword
)

func (k ModalKind) String() string {
	switch k {
	case ModalAuth:
		return "auth"
	case ModalEnrollment:
		return "enrollment"
	case ModalEnrollmentClosed:
		return "enrollment-closed"
	case ModalSuccess:
		return "success"
	case ModalForgotPassword:
		return "forgot-password"
	default:
		return "none"
	}
}

// ModalData is the payload attached to an open modal. Course fields apply to
// the auth/enrollment modals, Title/Message to the success modal.
type ModalData struct {
	CourseName string
	CourseID   int64
	Title      string
	Message    string
}

// ModalStore coordinates the single-active-modal contract. The state is one
// active kind plus its payload, so "at most one modal open" holds by
// construction: opening any modal replaces whatever was open before, with no
// stacking or queueing.
type ModalStore struct {
	notifier

	mu     sync.RWMutex
	active ModalKind
	data   ModalData
}

func NewModalStore() *ModalStore {
	return &ModalStore{}
}

func (s *ModalStore) open(kind ModalKind, data ModalData) {
	s.mu.Lock()
	s.active = kind
	s.data = data
	s.mu.Unlock()
	s.notify()
}

func (s *ModalStore) OpenAuth(data ModalData) { s.open(ModalAuth, data) }

func (s *ModalStore) OpenEnrollment(data ModalData) { s.open(ModalEnrollment, data) }

func (s *ModalStore) OpenEnrollmentClosed(data ModalData) { s.open(ModalEnrollmentClosed, data) }

func (s *ModalStore) OpenSuccess(title, message string) {
	s.open(ModalSuccess, ModalData{Title: title, Message: message})
}

func (s *ModalStore) OpenForgotPassword() { s.open(ModalForgotPassword, ModalData{}) }

// Close dismisses the active modal and drops its payload.
func (s *ModalStore) Close() { s.open(ModalNone, ModalData{}) }

// Active returns the open modal and its payload; ModalNone when closed.
func (s *ModalStore) Active() (ModalKind, ModalData) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.data
}

// IsOpen reports whether the given modal is the active one.
func (s *ModalStore) IsOpen(kind ModalKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active == kind
}

// IsAnyModalOpen reports whether any modal is open.
func (s *ModalStore) IsAnyModalOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active != ModalNone
}
