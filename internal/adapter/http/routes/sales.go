package routes

import (
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntakes   = "/intakes"
	PathProposals = "/proposals"
	PathContracts = "/contracts"
	PathPayments  = "/payments"
	PathKickoffs  = "/kickoffs"
	PathWorkflow  = "/workflow"
	PathAnalytics = "/analytics"
)

type salesHandlers struct {
	intakes   *handlers.IntakeHandler
	proposals *handlers.ProposalHandler
	contracts *handlers.ContractHandler
	payments  *handlers.PaymentHandler
	kickoffs  *handlers.KickoffHandler
	workflow  *handlers.WorkflowHandler
	analytics *handlers.AnalyticsHandler
}

func addSalesRoutes(rg *gin.RouterGroup, h salesHandlers) {
	intakes := rg.Group(PathIntakes)
	{
		intakes.POST("", h.intakes.CreateIntake)
		intakes.GET("/:id", h.intakes.GetIntake)
	}

	proposals := rg.Group(PathProposals)
	{
		// POST takes the intake id: a proposal is always born from an intake.
		proposals.POST("/:id", h.proposals.GenerateProposal)
		proposals.GET("/:id", h.proposals.GetProposal)
		proposals.PATCH("/:id/submit", h.proposals.SubmitProposal)
		proposals.PATCH("/:id/send", h.proposals.SendProposal)
		proposals.PATCH("/:id/approve", h.proposals.ApproveProposal)
		proposals.PATCH("/:id/reject", h.proposals.RejectProposal)
	}

	contracts := rg.Group(PathContracts)
	{
		// POST takes the approved proposal id.
		contracts.POST("/:id", h.contracts.GenerateContract)
		contracts.GET("/:id", h.contracts.GetContract)
		contracts.PATCH("/:id/send", h.contracts.SendContract)
		contracts.PATCH("/:id/execute", h.contracts.ExecuteContract)
	}

	payments := rg.Group(PathPayments)
	{
		// POST takes the fully executed contract id.
		payments.POST("/:id", h.payments.SetupPayment)
		payments.POST("/:id/transactions", h.payments.RecordPayment)
		payments.GET("/:id/transactions", h.payments.ListTransactions)
	}

	kickoffs := rg.Group(PathKickoffs)
	{
		// POST takes the contract id.
		kickoffs.POST("/:id", h.kickoffs.TriggerKickoff)
		kickoffs.GET("/:id", h.kickoffs.GetKickoff)
	}

	rg.POST(PathWorkflow, h.workflow.ProcessDiscoveryCall)
	rg.GET(PathWorkflow, h.workflow.GetWorkflowStatus)
	rg.GET(PathAnalytics, h.analytics.GetAnalytics)
}
