package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/barberhub-api/internal/audit"
	"github.com/barberhub/barberhub-api/internal/authz"
	booking "github.com/barberhub/barberhub-api/internal/domain/booking"
	domain "github.com/barberhub/barberhub-api/internal/domain/review"
	"github.com/barberhub/barberhub-api/internal/httperr"
	"github.com/barberhub/barberhub-api/internal/models"
)

type fakeRepo struct {
	bookings map[uint]*models.Booking
	barbers  map[uint]*models.Barber
	reviews  map[uint]*models.Review
	nextID   uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: map[uint]*models.Booking{},
		barbers:  map[uint]*models.Barber{},
		reviews:  map[uint]*models.Review{},
	}
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) GetReview(_ context.Context, id uint) (*models.Review, error) {
	if r, ok := f.reviews[id]; ok {
		out := *r
		return &out, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) HasReviewForBooking(_ context.Context, bookingID uint) (bool, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateReview(_ context.Context, r *models.Review) error {
	f.nextID++
	r.ID = f.nextID
	stored := *r
	f.reviews[r.ID] = &stored
	return nil
}

func (f *fakeRepo) SaveReview(_ context.Context, r *models.Review) error {
	stored := *r
	f.reviews[r.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteReview(_ context.Context, r *models.Review) error {
	delete(f.reviews, r.ID)
	return nil
}

func (f *fakeRepo) ListByBarber(_ context.Context, barberID uint) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.BarberID == barberID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// fakeRecomputer mirrors the SQL aggregation against the in-memory set.
type fakeRecomputer struct {
	repo  *fakeRepo
	calls int
}

func (f *fakeRecomputer) Recompute(_ context.Context, barberID uint) error {
	f.calls++
	b, ok := f.repo.barbers[barberID]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	var sum, n int
	for _, r := range f.repo.reviews {
		if r.BarberID == barberID {
			sum += r.Rating
			n++
		}
	}
	b.NumReviews = n
	if n == 0 {
		b.AverageRating = 0
	} else {
		b.AverageRating = float64(sum) / float64(n)
	}
	return nil
}

type cacheSpy struct{ invalidations int }

func (c *cacheSpy) Invalidate(context.Context) { c.invalidations++ }

type sinkSpy struct{ events []audit.Event }

func (s *sinkSpy) Dispatch(ev audit.Event) { s.events = append(s.events, ev) }

// --------- Fixtures ---------

const (
	clientID  = uint(1)
	otherID   = uint(2)
	barberID  = uint(10)
	bookingID = uint(500)
)

type fixture struct {
	repo  *fakeRepo
	rc    *fakeRecomputer
	cache *cacheSpy
	sink  *sinkSpy
}

func setup() fixture {
	repo := newFakeRepo()
	repo.barbers[barberID] = &models.Barber{ID: barberID, UserID: 3}
	repo.bookings[bookingID] = &models.Booking{
		ID:       bookingID,
		ClientID: clientID,
		BarberID: barberID,
		Status:   string(booking.StatusCompleted),
	}
	return fixture{repo: repo, rc: &fakeRecomputer{repo: repo}, cache: &cacheSpy{}, sink: &sinkSpy{}}
}

func (fx fixture) create() *CreateReview {
	return NewCreateReview(fx.repo, fx.rc, fx.cache, fx.sink)
}

// --------- Create ---------

func TestCreateReviewAggregates(t *testing.T) {
	fx := setup()
	uc := fx.create()

	r, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 4, Comment: "solid fade",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Rating)

	b := fx.repo.barbers[barberID]
	assert.Equal(t, 4.0, b.AverageRating)
	assert.Equal(t, 1, b.NumReviews)
	assert.Equal(t, 1, fx.cache.invalidations)
	require.Len(t, fx.sink.events, 1)
	assert.Equal(t, "review_created", fx.sink.events[0].Action)
}

func TestCreateReviewGuards(t *testing.T) {
	fx := setup()
	uc := fx.create()
	ctx := context.Background()

	base := CreateReviewInput{ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 4}

	for _, rating := range []int{0, 6, -1} {
		in := base
		in.Rating = rating
		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput), "rating %d", rating)
	}

	in := base
	in.BookingID = 999
	_, err := uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	// Someone else's booking.
	in = base
	in.ClientID = otherID
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	// Booking belongs to a different barber than claimed.
	in = base
	in.BarberID = 77
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	assert.Zero(t, fx.rc.calls)
}

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	fx := setup()
	fx.repo.bookings[bookingID].Status = string(booking.StatusConfirmed)
	uc := fx.create()

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 5,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	fx := setup()
	uc := fx.create()
	ctx := context.Background()
	in := CreateReviewInput{ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 5}

	_, err := uc.Execute(ctx, in)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}

// --------- Update / delete ---------

func TestUpdateReview(t *testing.T) {
	fx := setup()
	r, err := fx.create().Execute(context.Background(), CreateReviewInput{
		ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 2,
	})
	require.NoError(t, err)

	uc := NewUpdateReview(fx.repo, fx.rc, fx.cache)
	ctx := context.Background()
	author := authz.Caller{ID: clientID, Role: models.RoleClient}

	// Admins may delete reviews but never edit them.
	five := 5
	_, err = uc.Execute(ctx, r.ID, authz.Caller{ID: 42, Role: models.RoleAdmin}, UpdateReviewInput{Rating: &five})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	bad := 9
	_, err = uc.Execute(ctx, r.ID, author, UpdateReviewInput{Rating: &bad})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))

	comment := "changed my mind"
	got, err := uc.Execute(ctx, r.ID, author, UpdateReviewInput{Rating: &five, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, comment, got.Comment)
	assert.Equal(t, 5.0, fx.repo.barbers[barberID].AverageRating)
}

func TestDeleteReview(t *testing.T) {
	fx := setup()
	r, err := fx.create().Execute(context.Background(), CreateReviewInput{
		ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 3,
	})
	require.NoError(t, err)

	uc := NewDeleteReview(fx.repo, fx.rc, fx.cache, fx.sink)
	ctx := context.Background()

	err = uc.Execute(ctx, r.ID, authz.Caller{ID: otherID, Role: models.RoleClient})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	err = uc.Execute(ctx, r.ID, authz.Caller{ID: 42, Role: models.RoleAdmin})
	require.NoError(t, err)

	b := fx.repo.barbers[barberID]
	assert.Equal(t, 0.0, b.AverageRating)
	assert.Equal(t, 0, b.NumReviews)

	err = uc.Execute(ctx, r.ID, authz.Caller{ID: 42, Role: models.RoleAdmin})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// --------- List ---------

func TestListBarberReviews(t *testing.T) {
	fx := setup()
	_, err := fx.create().Execute(context.Background(), CreateReviewInput{
		ClientID: clientID, BarberID: barberID, BookingID: bookingID, Rating: 4,
	})
	require.NoError(t, err)

	uc := NewListBarberReviews(fx.repo)

	got, err := uc.Execute(context.Background(), barberID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.Execute(context.Background(), 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
