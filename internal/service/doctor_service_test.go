package service

import (
	"context"
	"testing"
	"time"

	dom "MedDesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDoctorService() (*DoctorService, *fakeHospitalStore) {
	store := newFakeHospitalStore()
	return NewDoctorService(&fakeDoctorRepo{store: store}, nil), store
}

func TestDoctorCRUD(t *testing.T) {
	svc, _ := newTestDoctorService()
	ctx := context.Background()

	d, err := svc.Create(ctx, dom.Doctor{
		Name:      "Dr. Lisa Cuddy",
		Specialty: "Endocrinology",
		Email:     "cuddy@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)

	got, err := svc.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Endocrinology", got.Specialty)

	got.PhoneNumber = "+1-555-0100"
	updated, err := svc.Update(ctx, d.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "+1-555-0100", updated.PhoneNumber)

	_, err = svc.GetByID(ctx, testUUID(99))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDoctorCreate_DuplicateEmail(t *testing.T) {
	svc, _ := newTestDoctorService()
	ctx := context.Background()

	_, err := svc.Create(ctx, dom.Doctor{Name: "A", Email: "shared@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dom.Doctor{Name: "B", Email: "shared@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Doctors without an email never collide with each other.
	_, err = svc.Create(ctx, dom.Doctor{Name: "C"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dom.Doctor{Name: "D"})
	require.NoError(t, err)
}

func TestDoctorList_SortedByName(t *testing.T) {
	svc, _ := newTestDoctorService()
	ctx := context.Background()

	for _, name := range []string{"Dr. Zeta", "Dr. Alpha", "Dr. Mid"} {
		_, err := svc.Create(ctx, dom.Doctor{Name: name})
		require.NoError(t, err)
	}
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Dr. Alpha", list[0].Name)
	assert.Equal(t, "Dr. Mid", list[1].Name)
	assert.Equal(t, "Dr. Zeta", list[2].Name)
}

func TestDoctorDelete_CascadesAppointments(t *testing.T) {
	svc, store := newTestDoctorService()
	ctx := context.Background()

	d, err := svc.Create(ctx, dom.Doctor{Name: "Dr. Gone"})
	require.NoError(t, err)
	pid := testUUID(1)
	store.patients[pid] = dom.Patient{ID: pid, Name: "Patient"}
	aid := testUUID(5)
	store.appointments[aid] = dom.Appointment{
		ID:              aid,
		PatientID:       pid,
		DoctorID:        d.ID,
		AppointmentTime: time.Now().Add(time.Hour),
		Status:          dom.StatusScheduled,
	}

	require.NoError(t, svc.Delete(ctx, d.ID))
	assert.Empty(t, store.appointments)
	assert.ErrorIs(t, svc.Delete(ctx, d.ID), ErrNotFound)
}
