package interfaces

import (
	"context"

	"github.com/sperry-entelech/entelech-sales-process-automation/internal/domain/entities"
)

// IPaymentRepository persists payment configurations and their transactions.
type IPaymentRepository interface {
	CreateConfiguration(ctx context.Context, cfg entities.PaymentConfiguration) (entities.PaymentConfiguration, error)
	GetConfigurationByID(ctx context.Context, id string) (entities.PaymentConfiguration, error)
	GetConfigurationByContractID(ctx context.Context, contractID string) (entities.PaymentConfiguration, error)
	CreateTransaction(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error)
	ListTransactionsByConfigID(ctx context.Context, configID string) ([]entities.PaymentTransaction, error)
	CountCompletedPayments(ctx context.Context, contractID string) (int, error)
}
