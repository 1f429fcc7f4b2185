package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/repository"
)

// AdminService is the fixed-credential back office over the simulated
// vault. It has no user accounts of its own: one email/password pair from
// config gates every operation.
type AdminService interface {
	Authenticate(email, password string) bool
	Transactions(ctx context.Context) ([]models.TransactionRecord, error)
	Users(ctx context.Context) ([]models.User, error)
	Cards(ctx context.Context) ([]models.SavedCard, error)
	TotalRevenue(ctx context.Context) (int, error)
	ClearTransactions(ctx context.Context) error
	ClearVault(ctx context.Context) error
	ExportTransactions(ctx context.Context) (string, error)
	ExportVault(ctx context.Context) (string, error)
}

type adminService struct {
	email    string
	password string
	txns     repository.TransactionRepository
	cards    repository.CardRepository
	users    repository.UserRepository
}

func NewAdminService(email, password string, txns repository.TransactionRepository, cards repository.CardRepository, users repository.UserRepository) AdminService {
	return &adminService{
		email:    email,
		password: password,
		txns:     txns,
		cards:    cards,
		users:    users,
	}
}

func (s *adminService) Authenticate(email, password string) bool {
	return email == s.email && password == s.password
}

func (s *adminService) Transactions(ctx context.Context) ([]models.TransactionRecord, error) {
	return s.txns.FindAll(ctx)
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *adminService) Cards(ctx context.Context) ([]models.SavedCard, error) {
	return s.cards.FindAll(ctx)
}

func (s *adminService) TotalRevenue(ctx context.Context) (int, error) {
	txns, err := s.txns.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, t := range txns {
		total += t.Amount
	}
	return total, nil
}

func (s *adminService) ClearTransactions(ctx context.Context) error {
	return s.txns.Clear(ctx)
}

func (s *adminService) ClearVault(ctx context.Context) error {
	return s.cards.Clear(ctx)
}

// ExportTransactions flattens the ledger to plain text, one block per
// record, full card details included. The vault is simulated: leaking it is
// the demonstration.
func (s *adminService) ExportTransactions(ctx context.Context) (string, error) {
	txns, err := s.txns.FindAll(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("=== TRANSACTION LEDGER EXPORT ===\n\n")
	for _, t := range txns {
		fmt.Fprintf(&b, "Transaction: %s\n", t.ID)
		fmt.Fprintf(&b, "Route:       %s\n", t.Route)
		fmt.Fprintf(&b, "Amount:      $%d\n", t.Amount)
		fmt.Fprintf(&b, "Cardholder:  %s\n", t.CardholderName)
		fmt.Fprintf(&b, "Card:        %s (%s)\n", t.CardNumber, t.CardType)
		fmt.Fprintf(&b, "Expiry:      %s  CVV: %s\n", t.Expiry, t.CVV)
		fmt.Fprintf(&b, "Timestamp:   %s\n\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "Total records: %d\n", len(txns))
	return b.String(), nil
}

func (s *adminService) ExportVault(ctx context.Context) (string, error) {
	cards, err := s.cards.FindAll(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("=== CARD VAULT EXPORT ===\n\n")
	for _, c := range cards {
		fmt.Fprintf(&b, "Card:       %s\n", c.ID)
		fmt.Fprintf(&b, "Cardholder: %s\n", c.CardholderName)
		fmt.Fprintf(&b, "Number:     %s (%s)\n", c.CardNumber, c.CardType)
		fmt.Fprintf(&b, "Expiry:     %s  CVV: %s\n\n", c.Expiry, c.CVV)
	}
	fmt.Fprintf(&b, "Total records: %d\n", len(cards))
	return b.String(), nil
}
