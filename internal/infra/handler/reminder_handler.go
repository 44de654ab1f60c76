package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armaan1925/medremind/internal/app"
	"github.com/armaan1925/medremind/internal/infra/notify"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
	feed    *notify.Feed
}

func NewReminderHandler(useCase app.ReminderUseCase, feed *notify.Feed) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
		feed:    feed,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	slog.Info("handling create reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingFailed(c, err)

		return
	}

	input := app.CreateReminderInput{
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		Timings:      req.Timings,
		StartDate:    req.StartDate,
		DurationDays: req.DurationDays,
		Notes:        req.Notes,
	}

	output, err := h.useCase.CreateReminder(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder created successfully",
		"reminder_id", output.ID,
		"medicine_name", output.MedicineName,
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	output, err := h.useCase.ListReminders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling update reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingFailed(c, err)

		return
	}

	input := app.UpdateReminderInput{
		ID:           id,
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		Timings:      req.Timings,
		StartDate:    req.StartDate,
		DurationDays: req.DurationDays,
		Notes:        req.Notes,
		Active:       req.Active,
	}

	output, err := h.useCase.UpdateReminder(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder updated successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) SetReminderActive(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling set reminder active request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	var req SetReminderActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingFailed(c, err)

		return
	}

	input := app.SetReminderActiveInput{
		ID:     id,
		Active: req.Active,
	}

	output, err := h.useCase.SetReminderActive(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder active flag updated successfully",
		"reminder_id", output.ID,
		"active", output.Active,
	)
	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	slog.Info("handling delete reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	input := app.DeleteReminderInput{
		ID: id,
	}

	if err := h.useCase.DeleteReminder(c.Request.Context(), input); err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminder deleted successfully",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) DeriveReminders(c *gin.Context) {
	slog.Info("handling derive reminders request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req DeriveRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingFailed(c, err)

		return
	}

	medicines := make([]app.MedicineInput, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		medicines = append(medicines, app.MedicineInput{
			Name:     m.Name,
			Dosage:   m.Dosage,
			Timings:  m.Timings,
			Duration: m.Duration,
			Notes:    m.Notes,
		})
	}

	output, err := h.useCase.DeriveFromPrescription(c.Request.Context(), app.DeriveFromPrescriptionInput{
		Medicines: medicines,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.Info("reminders derived successfully",
		"count", output.Count,
	)
	c.JSON(http.StatusCreated, FromDTOs(output))
}

func (h *ReminderHandler) ListAlerts(c *gin.Context) {
	if h.feed == nil {
		c.JSON(http.StatusOK, AlertsResponse{Alerts: []AlertResponse{}})

		return
	}

	c.JSON(http.StatusOK, FromAlerts(h.feed.Recent()))
}

func (h *ReminderHandler) bindingFailed(c *gin.Context, err error) {
	slog.Warn("request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Field:   "",
	})
}

func (h *ReminderHandler) handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
			Field:   "",
		})

		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.PATCH("/:id/active", h.SetReminderActive)
		reminders.DELETE("/:id", h.DeleteReminder)
		reminders.POST("/derive", h.DeriveReminders)
	}

	router.GET("/alerts", h.ListAlerts)
}
