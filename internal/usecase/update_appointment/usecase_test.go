package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbertime/appointment-service/internal/domain"
	appointmentRepo "github.com/barbertime/appointment-service/internal/infra/storage/appointment"
	"github.com/barbertime/appointment-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments map[int64]domain.Appointment
}

func newFakeRepo(appointments ...domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]domain.Appointment)}
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
	return &appt, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := f.appointments[appt.ID]; !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	updated := *appt
	updated.UpdatedAt = time.Now()
	f.appointments[appt.ID] = updated
	return &updated, nil
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

func storedAppointment(id int64, date time.Time, start types.TimeString) domain.Appointment {
	return domain.Appointment{
		ID:         id,
		ClientName: "Иван Петров",
		Phone:      "+7 999 123-45-67",
		Date:       date,
		StartTime:  start,
		Service:    "Стрижка",
		Status:     domain.StatusPending,
		Amount:     25.5,
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local),
	}
}

func requestFor(appt domain.Appointment) *Request {
	return &Request{
		ID:         appt.ID,
		ClientName: appt.ClientName,
		Phone:      appt.Phone,
		Date:       appt.Date,
		StartTime:  appt.StartTime,
		Service:    appt.Service,
		Status:     appt.Status,
		Amount:     appt.Amount,
	}
}

func TestExecute_Success(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	repo := newFakeRepo(storedAppointment(1, date, "14:00"))
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	req := requestFor(repo.appointments[1])
	req.Service = "Бритье"
	req.Status = domain.StatusCompleted
	req.Amount = 40

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Бритье", resp.Service)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, 40.0, resp.Amount)
	// Дата создания сохраняется при полном обновлении
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), resp.CreatedAt)
}

func TestExecute_OwnSlotIsNotConflict(t *testing.T) {
	// Перенос записи на ее же дату и время проходит без конфликта
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	repo := newFakeRepo(storedAppointment(1, date, "14:00"))
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	req := requestFor(repo.appointments[1])
	req.ClientName = "Петр Сидоров"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Петр Сидоров", resp.ClientName)
}

func TestExecute_SlotTakenByOther(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	repo := newFakeRepo(
		storedAppointment(1, date, "14:00"),
		storedAppointment(2, date, "15:00"),
	)
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	req := requestFor(repo.appointments[2])
	req.StartTime = "14:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, types.TimeString("15:00"), repo.appointments[2].StartTime)
}

func TestExecute_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	req := requestFor(storedAppointment(99999, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), "14:00"))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_StatusRequired(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	repo := newFakeRepo(storedAppointment(1, date, "14:00"))
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	req := requestFor(repo.appointments[1])
	req.Status = ""

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
