package dto

import (
	"encoding/json"
	"testing"
	"time"

	dom "MedDesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	var req PatientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","date_of_birth":"1985-03-14"}`), &req))
	require.NotNil(t, req.DateOfBirth.Ptr())
	assert.Equal(t, time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC), *req.DateOfBirth.Ptr())

	for _, body := range []string{
		`{"name":"A"}`,
		`{"name":"A","date_of_birth":null}`,
		`{"name":"A","date_of_birth":""}`,
	} {
		var r PatientRequest
		require.NoError(t, json.Unmarshal([]byte(body), &r), body)
		assert.Nil(t, r.DateOfBirth.Ptr(), body)
	}

	var bad PatientRequest
	assert.Error(t, json.Unmarshal([]byte(`{"name":"A","date_of_birth":"14/03/1985"}`), &bad))
}

func TestDateTimeUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{`"2026-09-01T10:30:00Z"`, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)},
		{`"2026-09-01T10:30:00+02:00"`, time.Date(2026, 9, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600))},
		{`"2026-09-01T10:30:00"`, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(tc.in), &d), tc.in)
		require.NotNil(t, d.Ptr(), tc.in)
		assert.True(t, d.Ptr().Equal(tc.want), tc.in)
	}

	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
}

func TestRegisterRequestValidate(t *testing.T) {
	req := RegisterRequest{
		Username:  "  alice  ",
		Email:     "alice@example.com",
		Password:  "pw",
		Password2: "pw",
	}
	fe := req.Validate()
	assert.Empty(t, fe)
	assert.Equal(t, "alice", req.Username)

	req = RegisterRequest{Email: "nope"}
	fe = req.Validate()
	assert.Equal(t, []string{"This field is required."}, fe["username"])
	assert.Equal(t, []string{"Enter a valid email address."}, fe["email"])
	assert.Equal(t, []string{"This field is required."}, fe["password"])
	assert.Equal(t, []string{"This field is required."}, fe["password2"])
}

func TestAppointmentRequestValidate(t *testing.T) {
	var req AppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"patient": "p1",
		"doctor": "d1",
		"appointment_time": "2026-09-01T10:30:00Z",
		"status": "Completed"
	}`), &req))
	assert.Empty(t, req.Validate())

	// Empty status defaults to Scheduled.
	req.Status = ""
	require.Empty(t, req.Validate())
	assert.Equal(t, dom.StatusScheduled, req.Status)
	a := req.ToDomain()
	assert.Equal(t, "p1", a.PatientID)
	assert.Equal(t, dom.StatusScheduled, a.Status)

	req.Status = "Pending"
	fe := req.Validate()
	assert.Equal(t, []string{`"Pending" is not a valid choice.`}, fe["status"])

	empty := AppointmentRequest{}
	fe = empty.Validate()
	assert.Contains(t, fe, "patient")
	assert.Contains(t, fe, "doctor")
	assert.Contains(t, fe, "appointment_time")
}

func TestPatientResponse_DateRendering(t *testing.T) {
	dob := time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC)
	out, err := json.Marshal(NewPatientResponse(dom.Patient{ID: "x", Name: "A", DateOfBirth: &dob}))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"date_of_birth":"1985-03-14"`)

	out, err = json.Marshal(NewPatientResponse(dom.Patient{ID: "x", Name: "A"}))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"date_of_birth":null`)
}
