package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jamtrips/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && b.ID == "" {
		b.ID = "booking-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestService_Submit_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo)

	b, err := service.Submit(context.Background(), SubmitBookingRequest{
		TourID:        "tour-1",
		CustomerName:  "  Елена  ",
		CustomerPhone: " +998901234567 ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Елена", b.CustomerName)
	assert.Equal(t, "+998901234567", b.CustomerPhone)
	assert.Equal(t, domain.BookingNew, b.Status)
	assert.Equal(t, 1, b.GuestsCount)
	assert.NotNil(t, b.TourID)
	assert.Equal(t, "tour-1", *b.TourID)
	// empty optionals stay NULL
	assert.Nil(t, b.CustomerEmail)
	assert.Nil(t, b.PreferredDate)
	assert.Nil(t, b.Message)
	repo.AssertExpectations(t)
}

func TestService_Submit_EmptyNameNeverReachesStore(t *testing.T) {
	repo := new(MockBookingRepository)
	service := NewService(repo)

	_, err := service.Submit(context.Background(), SubmitBookingRequest{
		CustomerName:  "   ",
		CustomerPhone: "+998901234567",
	})

	assert.ErrorIs(t, err, ErrNameRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_EmptyPhoneNeverReachesStore(t *testing.T) {
	repo := new(MockBookingRepository)
	service := NewService(repo)

	_, err := service.Submit(context.Background(), SubmitBookingRequest{
		CustomerName: "Елена",
	})

	assert.ErrorIs(t, err, ErrPhoneRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_GeneralInquiryHasNoTour(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo)

	b, err := service.Submit(context.Background(), SubmitBookingRequest{
		CustomerName:  "John",
		CustomerPhone: "+447700900123",
		GuestsCount:   4,
	})

	assert.NoError(t, err)
	assert.Nil(t, b.TourID)
	assert.Equal(t, 4, b.GuestsCount)
}

func TestService_Submit_ResubmissionCreatesSecondRow(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo)

	req := SubmitBookingRequest{CustomerName: "Елена", CustomerPhone: "+998901234567"}
	_, err1 := service.Submit(context.Background(), req)
	_, err2 := service.Submit(context.Background(), req)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	// No idempotency key exists; a double submit means two rows.
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestService_ListAll_DanglingTourRefKeepsRow(t *testing.T) {
	tourID := "deleted-tour"
	repo := new(MockBookingRepository)
	repo.On("ListAll", mock.Anything).Return([]domain.Booking{
		{
			ID:            "booking-1",
			TourID:        &tourID,
			CustomerName:  "Елена",
			CustomerPhone: "+998901234567",
			Status:        domain.BookingNew,
			Tour:          nil, // linked tour was deleted
		},
		{
			ID:            "booking-2",
			CustomerName:  "John",
			CustomerPhone: "+447700900123",
			Status:        domain.BookingConfirmed,
			Tour:          &domain.Tour{ID: "tour-1", TitleRU: "Самарканд"},
		},
	}, nil)
	service := NewService(repo)

	rows, err := service.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Empty(t, rows[0].TourTitle)
	assert.Equal(t, "Самарканд", rows[1].TourTitle)
}

func TestService_UpdateStatus_AllTransitionsAllowed(t *testing.T) {
	statuses := domain.ValidBookingStatuses()

	for _, from := range statuses {
		for _, to := range statuses {
			repo := new(MockBookingRepository)
			repo.On("UpdateStatus", mock.Anything, "booking-1", to).Return(nil)
			service := NewService(repo)

			err := service.UpdateStatus(context.Background(), "booking-1", string(to))

			assert.NoError(t, err, "transition %s -> %s must succeed", from, to)
			repo.AssertExpectations(t)
		}
	}
}

func TestService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	service := NewService(repo)

	err := service.UpdateStatus(context.Background(), "booking-1", "archived")

	assert.ErrorIs(t, err, domain.ErrInvalidBookingStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
