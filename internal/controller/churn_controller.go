package controller

import (
	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/pkg/apperror"
	"gym-retention-be/internal/pkg/serverutils"
	"gym-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChurnController interface {
	RegisterRoutes(r fiber.Router)
	Predict(ctx *fiber.Ctx) error
	Latest(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
	Evaluate(ctx *fiber.Ctx) error
	LatestMetrics(ctx *fiber.Ctx) error
	DashboardSummary(ctx *fiber.Ctx) error
}

type churnController struct {
	churnService          service.IChurnService
	recommendationService service.IRecommendationService
	evaluationService     service.IEvaluationService
	defaultLookbackDays   int
}

func NewChurnController(
	churnService service.IChurnService,
	recommendationService service.IRecommendationService,
	evaluationService service.IEvaluationService,
	defaultLookbackDays int,
) IChurnController {
	return &churnController{
		churnService:          churnService,
		recommendationService: recommendationService,
		evaluationService:     evaluationService,
		defaultLookbackDays:   defaultLookbackDays,
	}
}

func (c *churnController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/churn/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("predict", c.Predict)
	h.Get("members/:id/latest", c.Latest)
	h.Post("recommendations", c.Recommendations)
	h.Post("evaluate", c.Evaluate)
	h.Get("metrics/latest", c.LatestMetrics)
	h.Get("dashboard/summary", c.DashboardSummary)
}

// Predict accepts either a single member id or the batch flag, never both.
func (c *churnController) Predict(ctx *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	switch {
	case req.BatchProcess && req.MemberId != nil:
		return apperror.NewValidation("member_id and batch_process are mutually exclusive")
	case req.BatchProcess:
		res, err := c.churnService.RunBatch(ctx.Context())
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Batch prediction completed", res))
	case req.MemberId != nil:
		res, err := c.churnService.PredictMember(ctx.Context(), *req.MemberId)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Prediction created", res))
	default:
		return apperror.NewValidation("either member_id or batch_process is required")
	}
}

func (c *churnController) Latest(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid member id")
	}

	res, err := c.churnService.GetLatestPrediction(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Latest prediction", res))
}

func (c *churnController) Recommendations(ctx *fiber.Ctx) error {
	var req dto.RecommendationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recommendationService.Recommend(ctx.Context(), req.MemberId, req.PredictionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommendations generated", res))
}

func (c *churnController) Evaluate(ctx *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return apperror.NewValidation("malformed request body")
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	daysAgo := c.defaultLookbackDays
	if req.DaysAgo != nil {
		daysAgo = *req.DaysAgo
	}

	res, err := c.evaluationService.Evaluate(ctx.Context(), daysAgo)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Model evaluated", res))
}

// LatestMetrics returns the most recent evaluation snapshot, or null data
// when no evaluation has run yet.
func (c *churnController) LatestMetrics(ctx *fiber.Ctx) error {
	res, err := c.evaluationService.GetLatest(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Latest model metrics", res))
}

func (c *churnController) DashboardSummary(ctx *fiber.Ctx) error {
	res, err := c.churnService.GetDashboardSummary(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard summary", res))
}
