package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbertime/appointment-service/internal/domain"
	appointmentRepo "github.com/barbertime/appointment-service/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	listErr      error
}

func newFakeRepo(appointments ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, appt := range appointments {
		repo.appointments[appt.ID] = appt
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appt := range f.appointments {
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		ClientName: "Иван Петров",
		Phone:      "+7 999 123-45-67",
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime:  "14:00",
		Service:    "Стрижка",
		Status:     domain.StatusPending,
		Amount:     25.5,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1)), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2024-03-10", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.GetByID(context.Background(), 99999)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestComplete_Success(t *testing.T) {
	repo := newFakeRepo(testAppointment(1))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Complete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
}

func TestComplete_Idempotent(t *testing.T) {
	appt := testAppointment(1)
	appt.Status = domain.StatusCompleted
	svc := NewService(newFakeRepo(appt), noopLogger{})

	resp, err := svc.Complete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
}

func TestComplete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.Complete(context.Background(), 99999)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeRepo(testAppointment(1))
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, repo.appointments)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	err := svc.Delete(context.Background(), 99999)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_InternalError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewService(repo, noopLogger{})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
