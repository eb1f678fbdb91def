package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/models"
	"github.com/wandersilva5/foodie-hub-api/utils"
)

// Payment statuses
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusCanceled  = "canceled"
	PaymentStatusFailed    = "failed"
)

// Payment methods
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCredit = "credit"
	PaymentMethodDebit  = "debit"
	PaymentMethodPix    = "pix"
	PaymentMethodApp    = "app"
)

// Register session statuses
const (
	SessionStatusOpen   = "open"
	SessionStatusClosed = "closed"
)

// RegisterService records payments against orders and keeps the single
// open cash-register session's running totals.
type RegisterService struct {
	db *gorm.DB
}

func NewRegisterService(db *gorm.DB) *RegisterService {
	return &RegisterService{db: db}
}

// PaymentInput is the payload for recording a payment. The ledger trusts
// its caller on amounts: validating amount against the order total and
// amount_received against amount is the checkout flow's job.
type PaymentInput struct {
	OrderID        uint
	UserID         *uint
	StaffID        uint
	Method         string
	Amount         float64
	AmountReceived float64
	Change         float64
	Status         string
}

// ProcessPayment creates the payment, stamps the order as paid and folds
// the amount into the open register session, all in one transaction.
func (s *RegisterService) ProcessPayment(in PaymentInput) (*models.Payment, error) {
	status := in.Status
	if status == "" {
		status = PaymentStatusCompleted
	}

	payment := models.Payment{
		ReferenceID:    uuid.NewString(),
		OrderID:        in.OrderID,
		UserID:         in.UserID,
		StaffID:        in.StaffID,
		Method:         in.Method,
		Amount:         in.Amount,
		AmountReceived: in.AmountReceived,
		Change:         in.Change,
		Status:         status,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, in.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"payment_status": OrderPaymentPaid,
			"payment_method": payment.Method,
			"payment_id":     payment.ID,
			"updated_at":     time.Now(),
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		return foldIntoActiveSession(tx, &payment)
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Payment %d recorded for order %d (%s %.2f)",
		payment.ID, payment.OrderID, payment.Method, payment.Amount)
	return &payment, nil
}

// foldIntoActiveSession appends the payment to the open session's ledger.
// No open session is not an error: the payment stays recorded, it just
// does not show up in any drawer summary. Only cash moves the expected
// closing amount; card/pix/app payments never touch the drawer.
func foldIntoActiveSession(tx *gorm.DB, payment *models.Payment) error {
	var session models.RegisterSession
	err := lockForUpdate(tx).
		Where("status = ?", SessionStatusOpen).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	entry := models.RegisterTransaction{
		SessionID: session.ID,
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Method:    payment.Method,
		Amount:    payment.Amount,
		CreatedAt: time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	if payment.Method == PaymentMethodCash {
		session.ExpectedClosingAmount += payment.Amount
		session.UpdatedAt = time.Now()
		return tx.Save(&session).Error
	}
	return nil
}

// OpenSession opens the register with the counted float. At most one
// session may be open: the check runs inside the creating transaction so
// two concurrent opens cannot both slip through.
func (s *RegisterService) OpenSession(userID uint, openingAmount float64, notes string) (*models.RegisterSession, error) {
	var session models.RegisterSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		q := lockForUpdate(tx).Model(&models.RegisterSession{}).
			Where("status = ?", SessionStatusOpen)
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRegisterAlreadyOpen
		}

		session = models.RegisterSession{
			UserID:                userID,
			Status:                SessionStatusOpen,
			OpeningAmount:         openingAmount,
			ExpectedClosingAmount: openingAmount,
			Notes:                 notes,
			OpenedAt:              time.Now(),
			CreatedAt:             time.Now(),
			UpdatedAt:             time.Now(),
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Register session %d opened by user %d (float=%.2f)",
		session.ID, userID, openingAmount)
	return &session, nil
}

// CloseSession reconciles the drawer: difference = counted − expected.
// A closed session is immutable; closing twice fails.
func (s *RegisterService) CloseSession(sessionID uint, actualAmount float64, notes string) (*models.RegisterSession, error) {
	var session models.RegisterSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			First(&session, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if session.Status == SessionStatusClosed {
			return ErrSessionClosed
		}

		now := time.Now()
		session.Status = SessionStatusClosed
		session.ActualClosingAmount = actualAmount
		session.Difference = actualAmount - session.ExpectedClosingAmount
		session.ClosedAt = &now
		session.UpdatedAt = now
		if notes != "" {
			if session.Notes != "" {
				session.Notes += "\n" + notes
			} else {
				session.Notes = notes
			}
		}
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Register session %d closed (expected=%.2f actual=%.2f diff=%.2f)",
		session.ID, session.ExpectedClosingAmount, session.ActualClosingAmount, session.Difference)
	return &session, nil
}

// GetActiveSession returns the open session with its transactions, or
// nil when the register is closed.
func (s *RegisterService) GetActiveSession() (*models.RegisterSession, error) {
	var session models.RegisterSession
	err := s.db.Preload("Transactions").
		Where("status = ?", SessionStatusOpen).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns session history, newest first.
func (s *RegisterService) ListSessions(limit int) ([]models.RegisterSession, error) {
	q := s.db.Preload("Transactions").Order("opened_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var sessions []models.RegisterSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetPayment loads a payment by id.
func (s *RegisterService) GetPayment(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPaymentsForOrder returns every payment recorded against an order.
func (s *RegisterService) ListPaymentsForOrder(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
