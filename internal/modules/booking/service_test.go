package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"soundhire/internal/domain"
)

type MockPackageReader struct {
	mock.Mock
}

func (m *MockPackageReader) FetchAll(ctx context.Context) []domain.Package {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Package)
}

type MockSettingReader struct {
	mock.Mock
}

func (m *MockSettingReader) DJRate(ctx context.Context) float64 {
	args := m.Called(ctx)
	return args.Get(0).(float64)
}

type MockBookingCreator struct {
	mock.Mock
}

func (m *MockBookingCreator) Create(ctx context.Context, b domain.Booking) *domain.Booking {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Booking)
}

func testPackages() []domain.Package {
	return []domain.Package{
		{ID: 1, Name: "Basic", DailyRate: 250000},
		{ID: 2, Name: "Standard", DailyRate: 300000},
		{ID: 3, Name: "Premium", DailyRate: 750000},
	}
}

func validForm() BookingForm {
	return BookingForm{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+256 700 000000",
		EventDate:     time.Now().AddDate(0, 0, 7).Format(dateLayout),
		PackageID:     "2",
		IncludeDJ:     true,
	}
}

func newTestService(creator *MockBookingCreator) *Service {
	return NewService(new(MockPackageReader), new(MockSettingReader), creator)
}

func TestService_Submit_Success(t *testing.T) {
	creator := new(MockBookingCreator)

	form := validForm()
	creator.On("Create", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
		return b.PackageID == 2 &&
			b.Qty == 1 &&
			b.StartDate == form.EventDate &&
			b.EndDate == form.EventDate &&
			b.IncludeDJ &&
			b.TotalPrice == 850000.0 &&
			b.Status == domain.BookingPending
	})).Return(&domain.Booking{
		ID:           41,
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Status:       domain.BookingPending,
	})

	service := newTestService(creator)

	conf, fieldErrs, err := service.Submit(context.Background(), form, testPackages(), 550000)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, conf)
	assert.Equal(t, int64(41), conf.BookingID)
	assert.Equal(t, "Jane Doe", conf.CustomerName)
	assert.Equal(t, "Standard", conf.PackageName)
	creator.AssertExpectations(t)
}

func TestService_Submit_WithoutDJ(t *testing.T) {
	creator := new(MockBookingCreator)

	form := validForm()
	form.IncludeDJ = false
	creator.On("Create", mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
		return b.TotalPrice == 300000.0 && !b.IncludeDJ
	})).Return(&domain.Booking{ID: 42, Status: domain.BookingPending})

	service := newTestService(creator)

	_, fieldErrs, err := service.Submit(context.Background(), form, testPackages(), 550000)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	creator.AssertExpectations(t)
}

func TestService_Submit_StoreFailure(t *testing.T) {
	creator := new(MockBookingCreator)
	creator.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(creator)

	conf, fieldErrs, err := service.Submit(context.Background(), validForm(), testPackages(), 550000)

	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.Nil(t, conf)
	assert.Nil(t, fieldErrs)
}

func TestService_Submit_InvalidDoesNotPersist(t *testing.T) {
	creator := new(MockBookingCreator)
	service := newTestService(creator)

	form := validForm()
	form.CustomerEmail = "not-an-email"

	conf, fieldErrs, err := service.Submit(context.Background(), form, testPackages(), 550000)

	require.NoError(t, err)
	assert.Nil(t, conf)
	assert.Contains(t, fieldErrs, "CustomerEmail")
	creator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ValidateForm_DateBounds(t *testing.T) {
	service := newTestService(new(MockBookingCreator))
	today := time.Now()

	cases := []struct {
		name  string
		date  string
		valid bool
	}{
		{"today", today.Format(dateLayout), true},
		{"one year ahead", today.AddDate(0, 0, 365).Format(dateLayout), true},
		{"yesterday", today.AddDate(0, 0, -1).Format(dateLayout), false},
		{"beyond one year", today.AddDate(0, 0, 366).Format(dateLayout), false},
		{"garbage", "not-a-date", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			form.EventDate = tc.date

			_, errs := service.ValidateForm(form, testPackages())
			if tc.valid {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, errs, "EventDate")
			}
		})
	}
}

func TestService_ValidateForm_RequiredFields(t *testing.T) {
	service := newTestService(new(MockBookingCreator))

	_, errs := service.ValidateForm(BookingForm{}, testPackages())

	require.NotNil(t, errs)
	assert.Contains(t, errs, "CustomerName")
	assert.Contains(t, errs, "CustomerEmail")
	assert.Contains(t, errs, "CustomerPhone")
	assert.Contains(t, errs, "EventDate")
	assert.Contains(t, errs, "PackageID")
}

func TestService_ValidateForm_UnknownPackage(t *testing.T) {
	service := newTestService(new(MockBookingCreator))

	form := validForm()
	form.PackageID = "99"

	_, errs := service.ValidateForm(form, testPackages())
	assert.Equal(t, "Invalid package selected. Please try again.", errs["PackageID"])

	// An empty snapshot means no submission can be accepted.
	_, errs = service.ValidateForm(validForm(), nil)
	assert.Contains(t, errs, "PackageID")
}

func TestService_ValidateForm_FieldLengths(t *testing.T) {
	service := newTestService(new(MockBookingCreator))

	form := validForm()
	form.CustomerPhone = "+256 0000 0000 0000 0000 0000"

	_, errs := service.ValidateForm(form, testPackages())
	assert.Contains(t, errs, "CustomerPhone")
}
