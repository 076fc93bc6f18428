package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory fakes standing in for the Postgres repositories. They mirror
// the store's behavior the services rely on: pgx.ErrNoRows for missing
// rows and pgconn errors for constraint violations.

type fakeAccountRepo struct {
	accounts map[string]dom.Account // by username
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]dom.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, a dom.Account) (dom.Account, error) {
	if _, ok := r.accounts[a.Username]; ok {
		return dom.Account{}, &pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"}
	}
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return dom.Account{}, &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}
		}
	}
	a.CreatedAt = time.Now()
	r.accounts[a.Username] = a
	return a, nil
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (dom.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *fakeAccountRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.accounts[username]
	return ok, nil
}

func (r *fakeAccountRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeHospitalStore backs the patient, doctor and appointment repos with
// shared maps so cascade deletes can be observed across them.
type fakeHospitalStore struct {
	patients     map[string]dom.Patient
	doctors      map[string]dom.Doctor
	appointments map[string]dom.Appointment
}

func newFakeHospitalStore() *fakeHospitalStore {
	return &fakeHospitalStore{
		patients:     map[string]dom.Patient{},
		doctors:      map[string]dom.Doctor{},
		appointments: map[string]dom.Appointment{},
	}
}

type fakePatientRepo struct{ store *fakeHospitalStore }

func (r *fakePatientRepo) Create(_ context.Context, p dom.Patient) (dom.Patient, error) {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.store.patients[p.ID] = p
	return p, nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id string) (dom.Patient, error) {
	p, ok := r.store.patients[id]
	if !ok {
		return dom.Patient{}, pgx.ErrNoRows
	}
	return p, nil
}

func (r *fakePatientRepo) List(_ context.Context) ([]dom.Patient, error) {
	var out []dom.Patient
	for _, p := range r.store.patients {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePatientRepo) Update(_ context.Context, id string, p dom.Patient) (dom.Patient, error) {
	existing, ok := r.store.patients[id]
	if !ok {
		return dom.Patient{}, pgx.ErrNoRows
	}
	existing.Name = p.Name
	existing.DateOfBirth = p.DateOfBirth
	existing.UpdatedAt = time.Now()
	r.store.patients[id] = existing
	return existing, nil
}

func (r *fakePatientRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := r.store.patients[id]; !ok {
		return pgx.ErrNoRows
	}
	for aid, a := range r.store.appointments {
		if a.PatientID == id {
			delete(r.store.appointments, aid)
		}
	}
	delete(r.store.patients, id)
	return nil
}

func (r *fakePatientRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.store.patients[id]
	return ok, nil
}

type fakeDoctorRepo struct{ store *fakeHospitalStore }

func (r *fakeDoctorRepo) Create(_ context.Context, d dom.Doctor) (dom.Doctor, error) {
	if d.Email != "" {
		for _, existing := range r.store.doctors {
			if existing.Email == d.Email {
				return dom.Doctor{}, &pgconn.PgError{Code: "23505", ConstraintName: "doctors_email_key"}
			}
		}
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.store.doctors[d.ID] = d
	return d, nil
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id string) (dom.Doctor, error) {
	d, ok := r.store.doctors[id]
	if !ok {
		return dom.Doctor{}, pgx.ErrNoRows
	}
	return d, nil
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]dom.Doctor, error) {
	var out []dom.Doctor
	for _, d := range r.store.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, id string, d dom.Doctor) (dom.Doctor, error) {
	existing, ok := r.store.doctors[id]
	if !ok {
		return dom.Doctor{}, pgx.ErrNoRows
	}
	existing.Name = d.Name
	existing.Specialty = d.Specialty
	existing.PhoneNumber = d.PhoneNumber
	existing.Email = d.Email
	existing.UpdatedAt = time.Now()
	r.store.doctors[id] = existing
	return existing, nil
}

func (r *fakeDoctorRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := r.store.doctors[id]; !ok {
		return pgx.ErrNoRows
	}
	for aid, a := range r.store.appointments {
		if a.DoctorID == id {
			delete(r.store.appointments, aid)
		}
	}
	delete(r.store.doctors, id)
	return nil
}

func (r *fakeDoctorRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.store.doctors[id]
	return ok, nil
}

type fakeAppointmentRepo struct{ store *fakeHospitalStore }

func (r *fakeAppointmentRepo) denormalize(a dom.Appointment) dom.Appointment {
	a.PatientName = r.store.patients[a.PatientID].Name
	a.DoctorName = r.store.doctors[a.DoctorID].Name
	return a
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a dom.Appointment) (dom.Appointment, error) {
	if _, ok := r.store.patients[a.PatientID]; !ok {
		return dom.Appointment{}, &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}
	}
	if _, ok := r.store.doctors[a.DoctorID]; !ok {
		return dom.Appointment{}, &pgconn.PgError{Code: "23503", ConstraintName: "appointments_doctor_id_fkey"}
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.store.appointments[a.ID] = a
	return r.denormalize(a), nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (dom.Appointment, error) {
	a, ok := r.store.appointments[id]
	if !ok {
		return dom.Appointment{}, pgx.ErrNoRows
	}
	return r.denormalize(a), nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, f repo.AppointmentFilter) ([]dom.Appointment, error) {
	var out []dom.Appointment
	for _, a := range r.store.appointments {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.PatientID != "" && a.PatientID != f.PatientID {
			continue
		}
		if f.DoctorID != "" && a.DoctorID != f.DoctorID {
			continue
		}
		out = append(out, r.denormalize(a))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentTime.Before(out[j].AppointmentTime)
	})
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, id string, a dom.Appointment) (dom.Appointment, error) {
	existing, ok := r.store.appointments[id]
	if !ok {
		return dom.Appointment{}, pgx.ErrNoRows
	}
	existing.PatientID = a.PatientID
	existing.DoctorID = a.DoctorID
	existing.AppointmentTime = a.AppointmentTime
	existing.Reason = a.Reason
	existing.Status = a.Status
	existing.Notes = a.Notes
	existing.UpdatedAt = time.Now()
	r.store.appointments[id] = existing
	return r.denormalize(existing), nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.store.appointments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.appointments, id)
	return nil
}

type fakeTodoRepo struct {
	todos  map[int64]dom.Todo
	nextID int64
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[int64]dom.Todo{}, nextID: 1}
}

func (r *fakeTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now().Add(time.Duration(t.ID) * time.Millisecond)
	r.todos[t.ID] = t
	return t, nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	var out []dom.Todo
	for _, t := range r.todos {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	existing, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	existing.Title = patch.Title
	existing.Description = patch.Description
	existing.Completed = patch.Completed
	r.todos[id] = existing
	return existing, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.todos[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.todos, id)
	return nil
}

// id helper for tests that need distinct but stable UUID-shaped strings.
func testUUID(n int) string {
	s := strconv.Itoa(n)
	return "00000000-0000-0000-0000-" + "000000000000"[:12-len(s)] + s
}
