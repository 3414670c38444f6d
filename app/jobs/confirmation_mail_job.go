// Package jobs defines the background work dispatched through the
// queue. Register() wires every job type at boot.
package jobs

import (
	"fmt"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/mail"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/queue"
)

// ConfirmationMailJob emails a customer after a successful payment.
type ConfirmationMailJob struct {
	SaleID uint `json:"sale_id"`
}

func (j ConfirmationMailJob) Handle() error {
	var sale models.Sale
	if err := database.DB.First(&sale, j.SaleID).Error; err != nil {
		return fmt.Errorf("jobs: load sale %d: %w", j.SaleID, err)
	}

	if sale.CustomerEmail == "" {
		// No contact was supplied at initiation. Nothing to send.
		return nil
	}

	body := fmt.Sprintf(
		"<h2>Thank you for your purchase!</h2>"+
			"<p>Your payment for <strong>%s</strong> was received.</p>"+
			"<p>Amount: %.2f %s<br>Order reference: %s</p>"+
			"<p>Your download is available in your account.</p>",
		sale.ProductName, sale.Amount, sale.Currency, sale.GatewayOrderID)

	return mail.New().
		To(sale.CustomerEmail).
		Subject("Your order is confirmed").
		HTML(body).
		Send()
}

// Register wires all job types into the queue registry. Call once at
// boot, before StartWorkers.
func Register() {
	queue.Register("jobs.ConfirmationMailJob", func() queue.Job { return &ConfirmationMailJob{} })
	queue.Register("jobs.AIGenerationJob", func() queue.Job { return &AIGenerationJob{} })
}
