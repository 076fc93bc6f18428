package service

import (
	"context"
	"testing"
	"time"

	dom "MedDesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientCRUD(t *testing.T) {
	store := newFakeHospitalStore()
	svc := NewPatientService(&fakePatientRepo{store: store})
	ctx := context.Background()

	dob := time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, dom.Patient{Name: "Jane Smith", DateOfBirth: &dob})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
	require.NotNil(t, got.DateOfBirth)
	assert.True(t, got.DateOfBirth.Equal(dob))

	got.Name = "Jane Smith-Jones"
	updated, err := svc.Update(ctx, p.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith-Jones", updated.Name)

	_, err = svc.GetByID(ctx, testUUID(99))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Update(ctx, testUUID(99), got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, testUUID(99)), ErrNotFound)
}

func TestPatientDelete_CascadesAppointments(t *testing.T) {
	store := newFakeHospitalStore()
	patients := NewPatientService(&fakePatientRepo{store: store})
	appointments := NewAppointmentService(
		&fakeAppointmentRepo{store: store},
		&fakePatientRepo{store: store},
		&fakeDoctorRepo{store: store},
	)
	ctx := context.Background()

	p1, err := patients.Create(ctx, dom.Patient{Name: "First"})
	require.NoError(t, err)
	p2, err := patients.Create(ctx, dom.Patient{Name: "Second"})
	require.NoError(t, err)
	did := testUUID(7)
	store.doctors[did] = dom.Doctor{ID: did, Name: "Dr. Who"}

	mk := func(pid string) dom.Appointment {
		a, err := appointments.Create(ctx, dom.Appointment{
			PatientID:       pid,
			DoctorID:        did,
			AppointmentTime: time.Now().Add(time.Hour),
			Status:          dom.StatusScheduled,
		})
		require.NoError(t, err)
		return a
	}
	doomed := mk(p1.ID)
	kept := mk(p2.ID)

	require.NoError(t, patients.Delete(ctx, p1.ID))

	_, err = patients.GetByID(ctx, p1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = appointments.GetByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The other patient's appointment survives.
	_, err = appointments.GetByID(ctx, kept.ID)
	assert.NoError(t, err)
}
