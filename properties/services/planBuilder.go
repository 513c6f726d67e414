package services

import (
	"sync"

	"plot-sales-backend/db/models"

	"github.com/google/uuid"
)

// PlanInput carries the four payment-plan form fields. All values stay strings;
// presence is the only validation applied.
type PlanInput struct {
	Name                string `json:"name"`
	DownPayment         string `json:"down_payment"`
	MonthlyInstallments string `json:"monthly_installments"`
	Duration            string `json:"duration"`
}

// PlanBuilder accumulates payment plans against the in-progress property
// draft. The sequence is ordered and scoped to one draft: submission drains
// it, leaving the properties tab resets it.
type PlanBuilder struct {
	mu    sync.Mutex
	plans []models.PaymentPlan
}

func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{}
}

// AddPlan appends a plan with a freshly generated id when all four fields are
// non-empty. An incomplete plan is silently ignored, the working list stays
// unchanged.
func (b *PlanBuilder) AddPlan(input PlanInput) (models.PaymentPlan, bool) {
	if input.Name == "" || input.DownPayment == "" || input.MonthlyInstallments == "" || input.Duration == "" {
		return models.PaymentPlan{}, false
	}

	plan := models.PaymentPlan{
		ID:                  uuid.New(),
		Name:                input.Name,
		DownPayment:         input.DownPayment,
		MonthlyInstallments: input.MonthlyInstallments,
		Duration:            input.Duration,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.plans = append(b.plans, plan)
	return plan, true
}

// RemovePlan drops the entry with the matching id. A miss is a no-op.
func (b *PlanBuilder) RemovePlan(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, plan := range b.plans {
		if plan.ID == id {
			b.plans = append(b.plans[:i], b.plans[i+1:]...)
			return true
		}
	}
	return false
}

// Plans returns a copy of the accumulated sequence in insertion order.
func (b *PlanBuilder) Plans() []models.PaymentPlan {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.PaymentPlan, len(b.plans))
	copy(out, b.plans)
	return out
}

// Drain hands the accumulated plans to a submitted draft and clears the
// builder for the next one.
func (b *PlanBuilder) Drain() []models.PaymentPlan {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.plans
	b.plans = nil
	return out
}

// Reset discards the working state without handing it anywhere.
func (b *PlanBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.plans = nil
}
