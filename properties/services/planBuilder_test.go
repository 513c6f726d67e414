package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlanInput() PlanInput {
	return PlanInput{
		Name:                "Standard",
		DownPayment:         "20%",
		MonthlyInstallments: "83333",
		Duration:            "24",
	}
}

func TestPlanBuilder_AddValidPlan(t *testing.T) {
	builder := NewPlanBuilder()

	plan, added := builder.AddPlan(validPlanInput())

	require.True(t, added)
	assert.NotEqual(t, uuid.Nil, plan.ID)
	assert.Equal(t, "Standard", plan.Name)

	plans := builder.Plans()
	require.Len(t, plans, 1)
	assert.Equal(t, plan.ID, plans[0].ID)
}

func TestPlanBuilder_IncompletePlanIsIgnored(t *testing.T) {
	builder := NewPlanBuilder()

	for _, input := range []PlanInput{
		{},
		{Name: "", DownPayment: "20%", MonthlyInstallments: "83333", Duration: "24"},
		{Name: "Standard", DownPayment: "", MonthlyInstallments: "83333", Duration: "24"},
		{Name: "Standard", DownPayment: "20%", MonthlyInstallments: "", Duration: "24"},
		{Name: "Standard", DownPayment: "20%", MonthlyInstallments: "83333", Duration: ""},
	} {
		_, added := builder.AddPlan(input)
		assert.False(t, added)
	}

	assert.Empty(t, builder.Plans())
}

func TestPlanBuilder_FreshIDPerPlan(t *testing.T) {
	builder := NewPlanBuilder()

	first, _ := builder.AddPlan(validPlanInput())
	second, _ := builder.AddPlan(validPlanInput())

	assert.NotEqual(t, first.ID, second.ID)
}

func TestPlanBuilder_RemovePlan(t *testing.T) {
	builder := NewPlanBuilder()
	first, _ := builder.AddPlan(validPlanInput())
	second, _ := builder.AddPlan(PlanInput{
		Name:                "Premium",
		DownPayment:         "30%",
		MonthlyInstallments: "100000",
		Duration:            "12",
	})

	removed := builder.RemovePlan(first.ID)

	require.True(t, removed)
	plans := builder.Plans()
	require.Len(t, plans, 1)
	assert.Equal(t, second.ID, plans[0].ID)
}

func TestPlanBuilder_RemoveMissIsNoOp(t *testing.T) {
	builder := NewPlanBuilder()
	builder.AddPlan(validPlanInput())

	removed := builder.RemovePlan(uuid.New())

	assert.False(t, removed)
	assert.Len(t, builder.Plans(), 1)
}

func TestPlanBuilder_DrainClearsWorkingState(t *testing.T) {
	builder := NewPlanBuilder()
	builder.AddPlan(validPlanInput())
	builder.AddPlan(validPlanInput())

	drained := builder.Drain()

	assert.Len(t, drained, 2)
	assert.Empty(t, builder.Plans())
}

func TestPlanBuilder_ResetDiscards(t *testing.T) {
	builder := NewPlanBuilder()
	builder.AddPlan(validPlanInput())

	builder.Reset()

	assert.Empty(t, builder.Plans())
}

func TestPlanBuilder_PlansReturnsCopy(t *testing.T) {
	builder := NewPlanBuilder()
	builder.AddPlan(validPlanInput())

	plans := builder.Plans()
	plans[0].Name = "Mutated"

	assert.Equal(t, "Standard", builder.Plans()[0].Name)
}
