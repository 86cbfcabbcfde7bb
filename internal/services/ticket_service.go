package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
	"citytransit/internal/utils"
	"citytransit/internal/validators"
	"citytransit/pkg/logger"
	"citytransit/pkg/queue"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// singleRideValidity is the window for every ticket class without its
	// own rule. Monthly passes currently fall through to this window too;
	// a distinct monthly duration has never been defined.
	singleRideValidity = 2 * time.Hour
	dayPassValidity    = 24 * time.Hour

	// maxCodeAttempts bounds regeneration when a redemption code collides
	// with one already issued.
	maxCodeAttempts = 5
)

type TicketService interface {
	Purchase(ctx context.Context, userID string, req *models.PurchaseTicketRequest) (*models.Ticket, error)
	// Redeem marks the ticket used, regardless of expiry or prior use.
	Redeem(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	Active(ctx context.Context, userID string) ([]*models.Ticket, error)
	History(ctx context.Context, userID string) ([]*models.Ticket, error)
}

type ticketService struct {
	ticketRepo interfaces.TicketRepository
	publisher  *queue.Publisher
	log        *logger.Logger
}

func NewTicketService(ticketRepo interfaces.TicketRepository, publisher *queue.Publisher, log *logger.Logger) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		log:        log,
	}
}

func (s *ticketService) Purchase(ctx context.Context, userID string, req *models.PurchaseTicketRequest) (*models.Ticket, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	validFrom := time.Now()
	ticket := &models.Ticket{
		UserID:        userID,
		Class:         req.Type,
		TransportMode: req.TransportType,
		Fare:          req.Fare,
		ValidFrom:     validFrom,
		ValidUntil:    validFrom.Add(validityFor(req.Type)),
		IsUsed:        false,
	}

	// The storage layer's unique constraint is the source of truth for
	// code uniqueness; on a collision we mint a new code and retry.
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		ticket.RedemptionCode = utils.GenerateRedemptionCode()

		err = s.ticketRepo.Create(ctx, ticket)
		if err == nil {
			break
		}
		if !errors.Is(err, interfaces.ErrDuplicateCode) {
			return nil, err
		}
		s.log.WithUserID(userID).Warn("Redemption code collision, regenerating")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to allocate a unique redemption code: %w", err)
	}

	s.publishEvent(ticket, true)

	return ticket, nil
}

func (s *ticketService) Redeem(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.MarkUsed(ctx, id, time.Now())
	if err != nil {
		return nil, err
	}

	s.publishEvent(ticket, false)

	return ticket, nil
}

func (s *ticketService) Active(ctx context.Context, userID string) ([]*models.Ticket, error) {
	return s.ticketRepo.ListActive(ctx, userID, time.Now())
}

func (s *ticketService) History(ctx context.Context, userID string) ([]*models.Ticket, error) {
	return s.ticketRepo.ListByUser(ctx, userID)
}

func validityFor(class models.TicketClass) time.Duration {
	if class == models.ClassDayPass {
		return dayPassValidity
	}
	return singleRideValidity
}

func (s *ticketService) publishEvent(ticket *models.Ticket, purchased bool) {
	if s.publisher == nil {
		return
	}

	event := queue.TicketEvent{
		TicketID:      ticket.ID.Hex(),
		UserID:        ticket.UserID,
		TicketClass:   string(ticket.Class),
		TransportMode: string(ticket.TransportMode),
		Fare:          ticket.Fare,
		Timestamp:     time.Now(),
	}

	var err error
	if purchased {
		err = s.publisher.PublishTicketPurchased(event)
	} else {
		err = s.publisher.PublishTicketRedeemed(event)
	}
	if err != nil {
		// The ticket is already persisted; event delivery is best effort.
		s.log.WithError(err).Error("Failed to publish ticket event")
	}
}
