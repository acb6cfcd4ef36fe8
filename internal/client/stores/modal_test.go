package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModal_OpenReplacesActive(t *testing.T) {
	s := NewModalStore()

	s.OpenAuth(ModalData{CourseName: "Go Basics", CourseID: 1})
	assert.True(t, s.IsOpen(ModalAuth))

	s.OpenEnrollmentClosed(ModalData{CourseName: "Go Basics"})
	assert.True(t, s.IsOpen(ModalEnrollmentClosed))
	assert.False(t, s.IsOpen(ModalAuth), "only one modal can be open")

	kind, data := s.Active()
	assert.Equal(t, ModalEnrollmentClosed, kind)
	assert.Equal(t, "Go Basics", data.CourseName)
}

func TestModal_CloseDropsPayload(t *testing.T) {
	s := NewModalStore()
	s.OpenSuccess("Done", "Your registration was received.")

	kind, data := s.Active()
	assert.Equal(t, ModalSuccess, kind)
	assert.Equal(t, "Done", data.Title)

	s.Close()
	kind, data = s.Active()
	assert.Equal(t, ModalNone, kind)
	assert.Equal(t, ModalData{}, data)
	assert.False(t, s.IsAnyModalOpen())
}

func TestModal_IsAnyModalOpen(t *testing.T) {
	s := NewModalStore()
	assert.False(t, s.IsAnyModalOpen())

	s.OpenForgotPassword()
	assert.True(t, s.IsAnyModalOpen())
}

func TestModal_Notify(t *testing.T) {
	s := NewModalStore()

	calls := 0
	s.Subscribe(func() { calls++ })

	s.OpenAuth(ModalData{})
	s.Close()
	assert.Equal(t, 2, calls)
}

func TestModalKind_String(t *testing.T) {
	assert.Equal(t, "none", ModalNone.String())
	assert.Equal(t, "auth", ModalAuth.String())
	assert.Equal(t, "enrollment", ModalEnrollment.String())
	assert.Equal(t, "enrollment-closed", ModalEnrollmentClosed.String())
	assert.Equal(t, "success", ModalSuccess.String())
	assert.Equal(t, "forgot-password", ModalForgotPassword.String())
}
