package create_appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbertime/appointment-service/internal/domain"
	appointmentRepo "github.com/barbertime/appointment-service/internal/infra/storage/appointment"
	"github.com/barbertime/appointment-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []domain.Appointment
	nextID       int64
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, created)
	return &created, nil
}

func (f *fakeAppointmentRepo) FindConflict(_ context.Context, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error) {
	for _, appt := range f.appointments {
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if appt.Date.Equal(date) && appt.StartTime == startTime {
			return true, nil
		}
	}
	return false, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	return NewUseCase(repo, fakeTxManager{}, noopLogger{})
}

func validRequest() *Request {
	return &Request{
		ClientName: "Иван Петров",
		Phone:      "+7 999 123-45-67",
		Date:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime:  "14:00",
		Service:    "Стрижка",
		Amount:     25.5,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Иван Петров", resp.ClientName)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 25.5, resp.Amount)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.ClientName = "Петр Сидоров"
	second.Service = "Бритье"

	_, err = uc.Execute(context.Background(), second)

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.appointments, 1)
}

func TestExecute_SameTimeDifferentDate(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Date = time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	_, err = uc.Execute(context.Background(), second)

	assert.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestExecute_SecondsDropped(t *testing.T) {
	// "14:00:00" и "14:00" — один и тот же слот
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	first := validRequest()
	start, err := types.NewTimeStringFromString("14:00:00")
	require.NoError(t, err)
	first.StartTime = start

	_, err = uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	_, err = uc.Execute(context.Background(), second)

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ConcurrentInsertMapsToSlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ExplicitStatusKept(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	req := validRequest()
	req.Status = domain.StatusCompleted

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty client name", func(r *Request) { r.ClientName = "" }},
		{"over-length client name", func(r *Request) { r.ClientName = strings.Repeat("а", domain.MaxClientNameLength+1) }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.StartTime = "" }},
		{"malformed time", func(r *Request) { r.StartTime = "25:00" }},
		{"empty service", func(r *Request) { r.Service = "" }},
		{"unknown status", func(r *Request) { r.Status = "done" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{}
			uc := newTestUseCase(repo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.appointments)
		})
	}
}
