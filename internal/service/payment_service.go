package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"gym-retention-be/internal/config"
	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/pkg/logger"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/pkg/events"
	pktNats "gym-retention-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	SweepOverdue(ctx context.Context) (*dto.OverdueSweepResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	midtransCfg    config.MidtransConfig
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	midtransCfg config.MidtransConfig,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		midtransCfg:    midtransCfg,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// CreatePayment opens a charge in "pendente"; the extractor reads it as a
// late-payment signal once the due date passes unpaid.
func (s *paymentService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().GetByID(ctx, req.MemberId)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFound("member", req.MemberId.String())
	}

	payment := entity.Payment{
		Id:        uuid.New(),
		MemberId:  req.MemberId,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    entity.PaymentStatusPending,
		CreatedAt: time.Now(),
	}

	if err := uow.PaymentRepository().Create(ctx, &payment); err != nil {
		return nil, err
	}

	return paymentToResponse(&payment), nil
}

func (s *paymentService) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.PaymentRepository().GetByID(ctx, req.PaymentId)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFound("payment", req.PaymentId.String())
	}
	if payment.Status == entity.PaymentStatusPaid {
		return nil, apperror.NewValidation("payment is already settled")
	}

	orderId := payment.Id.String()
	if err := uow.PaymentRepository().AttachGatewayOrder(ctx, payment.Id, orderId); err != nil {
		return nil, err
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.midtransCfg.IsProduction {
		env = midtrans.Production
	}
	sClient.New(s.midtransCfg.ServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(payment.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FirstName,
			LName: req.LastName,
			Email: req.Email,
			Phone: req.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    payment.Id.String(),
				Price: int64(payment.Amount),
				Qty:   1,
				Name:  "Gym membership",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.CheckoutResponse{
		PaymentId:       payment.Id,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if s.midtransCfg.ServerKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.midtransCfg.ServerKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("PaymentService", "Webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return apperror.NewValidation("invalid signature")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var status entity.PaymentStatus
	var paidAt *time.Time

	switch req.TransactionStatus {
	case "capture", "settlement":
		status = entity.PaymentStatusPaid
		now := time.Now()
		paidAt = &now
	case "deny", "cancel", "expire":
		status = entity.PaymentStatusLate
	default:
		status = entity.PaymentStatusPending
	}

	if err := uow.PaymentRepository().UpdateStatusByOrderID(ctx, req.OrderId, status, paidAt); err != nil {
		return err
	}

	s.logger.Info("PaymentService", "Webhook processed", map[string]interface{}{
		"order_id":           req.OrderId,
		"transaction_status": req.TransactionStatus,
		"payment_status":     status,
	})
	return nil
}

// SweepOverdue flips past-due "pendente" rows to "atrasado" so the next
// scoring run picks up the delay signal.
func (s *paymentService) SweepOverdue(ctx context.Context) (*dto.OverdueSweepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	marked, err := uow.PaymentRepository().MarkOverdueLate(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("PaymentService", "Overdue sweep completed", map[string]interface{}{
		"marked_late": marked,
	})

	if s.eventPublisher != nil && marked > 0 {
		evt := events.NewPaymentOverdue(marked)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("PaymentService", "Failed to publish overdue event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.OverdueSweepResponse{MarkedLate: marked}, nil
}

func paymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		Id:       p.Id,
		MemberId: p.MemberId,
		Amount:   p.Amount,
		DueDate:  p.DueDate,
		PaidAt:   p.PaidAt,
		Status:   p.Status,
	}
}
