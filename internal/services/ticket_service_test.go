package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
	"citytransit/internal/utils"
	"citytransit/internal/validators"
	"citytransit/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeTicketRepo is an in-memory TicketRepository with the same duplicate
// code semantics as the MongoDB implementation.
type fakeTicketRepo struct {
	mu         sync.Mutex
	tickets    map[primitive.ObjectID]*models.Ticket
	codes      map[string]bool
	duplicates int // next n Creates fail with ErrDuplicateCode
	creates    int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets: make(map[primitive.ObjectID]*models.Ticket),
		codes:   make(map[string]bool),
	}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creates++
	if r.duplicates > 0 {
		r.duplicates--
		return interfaces.ErrDuplicateCode
	}
	if r.codes[ticket.RedemptionCode] {
		return interfaces.ErrDuplicateCode
	}

	if ticket.ID.IsZero() {
		ticket.ID = primitive.NewObjectID()
	}
	ticket.CreatedAt = time.Now()
	r.codes[ticket.RedemptionCode] = true
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return ticket, nil
}

func (r *fakeTicketRepo) MarkUsed(ctx context.Context, id primitive.ObjectID, usedAt time.Time) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	ticket.IsUsed = true
	ticket.UsedAt = &usedAt
	return ticket, nil
}

func (r *fakeTicketRepo) ListByUser(ctx context.Context, userID string) ([]*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tickets []*models.Ticket
	for _, t := range r.tickets {
		if t.UserID == userID {
			tickets = append(tickets, t)
		}
	}
	return tickets, nil
}

func (r *fakeTicketRepo) ListActive(ctx context.Context, userID string, now time.Time) ([]*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tickets []*models.Ticket
	for _, t := range r.tickets {
		if t.UserID == userID && !t.IsUsed && !t.ValidUntil.Before(now) {
			tickets = append(tickets, t)
		}
	}
	return tickets, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stderr"})
	require.NoError(t, err)
	return log
}

func purchaseRequest(class models.TicketClass) *models.PurchaseTicketRequest {
	return &models.PurchaseTicketRequest{
		Type:          class,
		TransportType: models.ModeBus,
		Fare:          25,
	}
}

func TestPurchase_ValidityWindow(t *testing.T) {
	tests := []struct {
		class models.TicketClass
		want  time.Duration
	}{
		{models.ClassSingle, 2 * time.Hour},
		{models.ClassDayPass, 24 * time.Hour},
		{models.ClassMonthly, 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			service := NewTicketService(newFakeTicketRepo(), nil, newTestLogger(t))

			ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(tt.class))
			require.NoError(t, err)
			require.NotNil(t, ticket)

			assert.Equal(t, tt.want, ticket.ValidUntil.Sub(ticket.ValidFrom))
			assert.False(t, ticket.IsUsed)
			assert.Nil(t, ticket.UsedAt)
			assert.Equal(t, "user-1", ticket.UserID)
			assert.False(t, ticket.ID.IsZero())
		})
	}
}

func TestPurchase_RedemptionCodeFormat(t *testing.T) {
	service := NewTicketService(newFakeTicketRepo(), nil, newTestLogger(t))

	ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)

	parts := strings.Split(ticket.RedemptionCode, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, utils.RedemptionCodePrefix, parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], utils.RedemptionCodeRandomLength)
}

func TestPurchase_UniqueCodes(t *testing.T) {
	repo := newFakeTicketRepo()
	service := NewTicketService(repo, nil, newTestLogger(t))

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
		require.NoError(t, err)
		assert.False(t, seen[ticket.RedemptionCode], "duplicate code %s", ticket.RedemptionCode)
		seen[ticket.RedemptionCode] = true
	}
}

func TestPurchase_RetriesOnDuplicateCode(t *testing.T) {
	repo := newFakeTicketRepo()
	repo.duplicates = 1
	service := NewTicketService(repo, nil, newTestLogger(t))

	ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, 2, repo.creates)
}

func TestPurchase_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := newFakeTicketRepo()
	repo.duplicates = 5
	service := NewTicketService(repo, nil, newTestLogger(t))

	ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	assert.Nil(t, ticket)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrDuplicateCode)
	assert.Equal(t, 5, repo.creates)
}

func TestPurchase_RejectsInvalidRequest(t *testing.T) {
	service := NewTicketService(newFakeTicketRepo(), nil, newTestLogger(t))

	tests := []struct {
		name string
		req  *models.PurchaseTicketRequest
	}{
		{"unknown ticket class", &models.PurchaseTicketRequest{Type: "weekly", TransportType: models.ModeBus, Fare: 25}},
		{"mode without tickets", &models.PurchaseTicketRequest{Type: models.ClassSingle, TransportType: models.ModeTaxi, Fare: 25}},
		{"negative fare", &models.PurchaseTicketRequest{Type: models.ClassSingle, TransportType: models.ModeBus, Fare: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := service.Purchase(context.Background(), "user-1", tt.req)
			assert.Nil(t, ticket)
			require.Error(t, err)

			var verrs validators.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestRedeem_MarksUsed(t *testing.T) {
	repo := newFakeTicketRepo()
	service := NewTicketService(repo, nil, newTestLogger(t))

	ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)

	redeemed, err := service.Redeem(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.True(t, redeemed.IsUsed)
	require.NotNil(t, redeemed.UsedAt)
}

func TestRedeem_NotFound(t *testing.T) {
	service := NewTicketService(newFakeTicketRepo(), nil, newTestLogger(t))

	ticket, err := service.Redeem(context.Background(), primitive.NewObjectID())
	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestRedeem_TwiceOverwritesUsedAt(t *testing.T) {
	repo := newFakeTicketRepo()
	service := NewTicketService(repo, nil, newTestLogger(t))

	ticket, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)

	first, err := service.Redeem(context.Background(), ticket.ID)
	require.NoError(t, err)
	firstUsedAt := *first.UsedAt

	time.Sleep(5 * time.Millisecond)

	second, err := service.Redeem(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.True(t, second.IsUsed)
	assert.True(t, second.UsedAt.After(firstUsedAt))
}

func TestActive_ExcludesUsedAndExpired(t *testing.T) {
	repo := newFakeTicketRepo()
	service := NewTicketService(repo, nil, newTestLogger(t))

	valid, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)

	used, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)
	_, err = service.Redeem(context.Background(), used.ID)
	require.NoError(t, err)

	expired, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)
	repo.tickets[expired.ID].ValidUntil = time.Now().Add(-time.Minute)

	other, err := service.Purchase(context.Background(), "user-2", purchaseRequest(models.ClassSingle))
	require.NoError(t, err)

	active, err := service.Active(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, valid.ID, active[0].ID)
	assert.NotEqual(t, other.ID, active[0].ID)
}

func TestHistory_IncludesUsedAndExpired(t *testing.T) {
	repo := newFakeTicketRepo()
	service := NewTicketService(repo, nil, newTestLogger(t))

	for i := 0; i < 3; i++ {
		_, err := service.Purchase(context.Background(), "user-1", purchaseRequest(models.ClassSingle))
		require.NoError(t, err)
	}

	history, err := service.History(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, history, 3)
}
