package handlers

import (
	"errors"
	"fmt"
	"log"
	request "meridian_moving/internal/adapter/http/dto/request"
	response "meridian_moving/internal/adapter/http/dto/response"
	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"
	"meridian_moving/internal/usecase"
	"meridian_moving/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for the job pipeline, including status
// changes, finalization and pricing.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateJob(c.Request.Context(), job)
	if err != nil {
		log.Printf("[job][handler] create failed err=%v", err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(created))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs returns the pipeline, optionally filtered by ?status= or
// ?customer_id=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		jobs []entities.Job
		err  error
	)
	switch {
	case c.Query("status") != "":
		jobs, err = h.usecase.ListJobsByStatus(ctx, entities.JobStatus(c.Query("status")))
	case c.Query("customer_id") != "":
		jobs, err = h.usecase.ListJobsByCustomer(ctx, c.Query("customer_id"))
	default:
		jobs, err = h.usecase.ListJobs(ctx)
	}
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateJob(c.Request.Context(), c.Param("id"), job)
	if err != nil {
		log.Printf("[job][handler] update failed job_id=%s err=%v", c.Param("id"), err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(updated))
}

// ChangeStatus moves a job along the lifecycle. Rejected transitions return
// 409 with the statuses the job could move to instead.
func (h *JobHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.JobStatus(payload.Status))
	if err != nil {
		log.Printf("[job][handler] status change failed job_id=%s to=%s err=%v", c.Param("id"), payload.Status, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(updated))
}

func (h *JobHandler) FinalizeJob(c *gin.Context) {
	var payload request.FinalizeJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	finalized, err := h.usecase.FinalizeJob(c.Request.Context(), c.Param("id"), usecase.FinalizeJobInput{
		ActualHours:    payload.ActualHours,
		ActualBoxCount: payload.ActualBoxCount,
		MaterialsCost:  payload.MaterialsCents(),
	})
	if err != nil {
		log.Printf("[job][handler] finalize failed job_id=%s err=%v", c.Param("id"), err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(finalized))
}

func (h *JobHandler) ProfitAnalysis(c *gin.Context) {
	var payload request.ExpensesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.ProfitAnalysis(c.Request.Context(), c.Param("id"), payload.ToExpenses())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfitReport(report))
}

// CalculatePricing prices a hypothetical job without touching storage.
func (h *JobHandler) CalculatePricing(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	in, err := payload.ToEstimateInput(time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(tariff.EstimateJob(in)))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	var transitionErr *usecase.StatusTransitionError
	switch {
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple(
			"INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot move job from %s to %s; allowed: %s", transitionErr.From, transitionErr.To, joinStatuses(transitionErr.Allowed)),
			http.StatusConflict,
		)
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidJobStatus), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func joinStatuses(statuses []entities.JobStatus) string {
	out := ""
	for i, s := range statuses {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
