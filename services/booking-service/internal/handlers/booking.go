package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/availability"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/model"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/outbox"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/policy"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/scheduling"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/storage"
)

type BookingHandler struct {
	repo       *storage.BookingRepository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
	policy     policy.Provider
	scheduling scheduling.Provider
	defaults   []time.Duration
}

func NewBookingHandler(repo *storage.BookingRepository, outboxRepo *outbox.Repository, logger *slog.Logger, policyProvider policy.Provider, schedulingProvider scheduling.Provider, defaults []time.Duration) *BookingHandler {
	return &BookingHandler{
		repo:       repo,
		outboxRepo: outboxRepo,
		logger:     logger,
		policy:     policyProvider,
		scheduling: schedulingProvider,
		defaults:   defaults,
	}
}

type createBookingRequest struct {
	BusinessID      string `json:"business_id"`
	ServiceID       string `json:"service_id"`
	Assignee        string `json:"assignee"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	AllowConflict   bool   `json:"allow_conflict"`
}

type createBookingResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Conflict      bool   `json:"conflict,omitempty"`
}

type statusChangeRequest struct {
	BusinessID    string `json:"business_id"`
	AppointmentID string `json:"appointment_id"`
	Reason        string `json:"reason"`
}

type statusChangeResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
}

type rescheduleRequest struct {
	BusinessID    string `json:"business_id"`
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	AllowConflict bool   `json:"allow_conflict"`
}

type rescheduleResponse struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Conflict      bool   `json:"conflict,omitempty"`
}

type listAppointmentItem struct {
	AppointmentID string `json:"appointment_id"`
	Assignee      string `json:"assignee"`
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Slots returns every grid position for the requested day with its
// availability state, so clients can render blocked slots instead of
// hiding them.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	businessID := strings.TrimSpace(r.URL.Query().Get("business_id"))
	assignee := model.NormalizeAssignee(strings.TrimSpace(r.URL.Query().Get("assignee")))
	serviceID := strings.TrimSpace(r.URL.Query().Get("service_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if businessID == "" || serviceID == "" || dateStr == "" {
		http.Error(w, "business_id, service_id, and date are required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	cfg, ok := h.resolveDayConfig(r.Context(), businessID, assignee, serviceID, dateStr, r.URL.Query().Get)
	if !ok || !cfg.Open {
		writeJSON(w, http.StatusOK, []availability.Slot{})
		return
	}

	appts, err := h.repo.ListOccupyingForDay(r.Context(), businessID, assignee, dateStr)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}

	day := availability.DayHours{Open: true, OpenMinute: cfg.OpenMinute, CloseMinute: cfg.CloseMinute}
	slots, err := availability.ClassifyDay(day, toBookings(appts, ""), cfg.DurationMinutes, cfg.SlotStepMinutes)
	if err != nil {
		h.logger.Error("slot classification failed", "err", err, "business_id", businessID, "date", dateStr)
		http.Error(w, "failed to compute slots", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	req.BusinessID = strings.TrimSpace(req.BusinessID)
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	assignee := model.NormalizeAssignee(strings.TrimSpace(req.Assignee))

	if req.BusinessID == "" || req.ServiceID == "" || req.CustomerName == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	startMinute, err := availability.ParseClock(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// Working-hours gating runs off the business service when it answers,
	// and off the cached hours when it does not; without either the
	// conflict check below is still enforced.
	var cfg scheduling.AvailabilityConfig
	cfgKnown := false
	if h.scheduling != nil {
		reqCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		resolved, err := h.scheduling.GetAvailabilityConfig(reqCtx, req.BusinessID, assignee, req.ServiceID, req.Date)
		cancel()
		if err != nil {
			h.logger.Warn("availability config fetch failed; using cached hours", "err", err)
			cfg, cfgKnown = h.cachedDayConfig(ctx, req.BusinessID, req.ServiceID, req.Date)
		} else {
			cfg = resolved
			cfgKnown = true
		}
	}

	duration := req.DurationMinutes
	if cfgKnown && cfg.DurationMinutes > 0 {
		duration = cfg.DurationMinutes
	}
	if duration <= 0 {
		duration = 30
	}
	endMinute := startMinute + duration
	if endMinute > 24*60 {
		http.Error(w, "appointment runs past midnight", http.StatusBadRequest)
		return
	}

	if cfgKnown {
		if !cfg.Open {
			http.Error(w, "business is closed on the requested day", http.StatusUnprocessableEntity)
			return
		}
		if startMinute < cfg.OpenMinute || endMinute > cfg.CloseMinute {
			http.Error(w, "requested time is outside working hours", http.StatusUnprocessableEntity)
			return
		}
	}

	appt := &model.Appointment{
		BusinessID:    req.BusinessID,
		ServiceID:     req.ServiceID,
		StaffID:       assignee,
		CustomerName:  req.CustomerName,
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Date:          req.Date,
		StartMinute:   startMinute,
		EndMinute:     endMinute,
		Status:        model.StatusPending,
	}

	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey != "" {
		rec, exists, err := h.repo.LockIdempotencyKey(ctx, tx, appt.BusinessID, idempotencyKey)
		if err != nil {
			http.Error(w, "failed to lock idempotency key", http.StatusInternalServerError)
			return
		}
		if exists && rec.StatusCode > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.StatusCode)
			if len(rec.ResponsePayload) > 0 {
				_, _ = w.Write(rec.ResponsePayload)
				return
			}
			_ = json.NewEncoder(w).Encode(createBookingResponse{AppointmentID: rec.AppointmentID})
			return
		}
	}

	// Conflict check runs inside the insert transaction so the double-booking
	// answer is consistent with what actually lands in the table.
	existing, err := h.repo.ListOccupyingForDayTx(ctx, tx, appt.BusinessID, assignee, appt.Date)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}
	conflict, err := availability.WouldConflict(toBookings(existing, ""), availability.FormatClock(startMinute), availability.FormatClock(endMinute))
	if err != nil {
		http.Error(w, "failed to evaluate conflicts", http.StatusInternalServerError)
		return
	}
	if conflict && !req.AllowConflict {
		if idempotencyKey != "" {
			if h.finalizeIdempotencyError(ctx, tx, appt.BusinessID, idempotencyKey, http.StatusConflict, "slot_conflict") {
				_ = tx.Commit(ctx)
				return
			}
		}
		writeJSON(w, http.StatusConflict, map[string]string{"error": "slot_conflict"})
		return
	}

	if err := h.enforceMonthlyAppointmentLimit(ctx, tx, appt.BusinessID, appt.Date); err != nil {
		if errors.Is(err, errPaymentRequired) {
			if idempotencyKey != "" {
				if h.finalizeIdempotencyError(ctx, tx, appt.BusinessID, idempotencyKey, http.StatusPaymentRequired, err.Error()) {
					_ = tx.Commit(ctx)
					return
				}
			}
			http.Error(w, err.Error(), http.StatusPaymentRequired)
			return
		}
		http.Error(w, "entitlements check failed", http.StatusInternalServerError)
		return
	}

	id, err := h.repo.Create(ctx, tx, appt)
	if err != nil {
		if storage.IsConflict(err) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "slot_conflict"})
			return
		}
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"appointment_id": id,
		"business_id":    appt.BusinessID,
		"assignee":       appt.StaffID,
		"service_id":     appt.ServiceID,
		"customer_email": appt.CustomerEmail,
		"customer_phone": appt.CustomerPhone,
		"date":           appt.Date,
		"start_time":     availability.FormatClock(appt.StartMinute),
		"end_time":       availability.FormatClock(appt.EndMinute),
		"status":         appt.Status,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   id,
		EventType:     "booking.appointment.booked.v1",
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	h.enqueueReminders(ctx, tx, id, appt)

	respBody, err := json.Marshal(createBookingResponse{
		AppointmentID: id,
		Status:        appt.Status,
		StartTime:     availability.FormatClock(appt.StartMinute),
		EndTime:       availability.FormatClock(appt.EndMinute),
		Conflict:      conflict,
	})
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	if idempotencyKey != "" {
		if err := h.repo.FinalizeIdempotency(ctx, tx, appt.BusinessID, idempotencyKey, id, http.StatusCreated, respBody); err != nil {
			http.Error(w, "failed to finalize idempotency key", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(respBody)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.StatusConfirmed, "booking.appointment.confirmed.v1", map[string]bool{
		model.StatusPending: true,
	})
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.StatusCompleted, "booking.appointment.completed.v1", map[string]bool{
		model.StatusConfirmed: true,
	})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.BusinessID = strings.TrimSpace(req.BusinessID)
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.BusinessID == "" || req.AppointmentID == "" {
		http.Error(w, "business_id and appointment_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetAppointmentForUpdate(ctx, tx, req.BusinessID, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	if appt.Status == model.StatusCancelled && appt.CancelledAt != nil {
		writeJSON(w, http.StatusOK, statusChangeResponse{
			AppointmentID: appt.ID,
			Status:        model.StatusCancelled,
			CancelledAt:   appt.CancelledAt.UTC().Format(time.RFC3339),
		})
		return
	}
	if appt.Status != model.StatusPending && appt.Status != model.StatusConfirmed {
		http.Error(w, "appointment cannot be cancelled", http.StatusConflict)
		return
	}

	cancelledAt, err := h.repo.CancelAppointment(ctx, tx, req.BusinessID, appt.ID, req.Reason)
	if err != nil {
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}

	cancelPayload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID,
		"business_id":    appt.BusinessID,
		"assignee":       appt.StaffID,
		"service_id":     appt.ServiceID,
		"customer_email": appt.CustomerEmail,
		"date":           appt.Date,
		"start_time":     availability.FormatClock(appt.StartMinute),
		"end_time":       availability.FormatClock(appt.EndMinute),
		"cancelled_at":   cancelledAt.UTC().Format(time.RFC3339),
		"reason":         req.Reason,
	})
	if err != nil {
		http.Error(w, "failed to build cancellation event", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     "booking.appointment.cancelled.v1",
		Payload:       cancelPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, statusChangeResponse{
		AppointmentID: appt.ID,
		Status:        model.StatusCancelled,
		CancelledAt:   cancelledAt.UTC().Format(time.RFC3339),
	})
}

func (h *BookingHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.BusinessID = strings.TrimSpace(req.BusinessID)
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.BusinessID == "" || req.AppointmentID == "" {
		http.Error(w, "business_id and appointment_id required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	startMinute, err := availability.ParseClock(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetAppointmentForUpdate(ctx, tx, req.BusinessID, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}
	if appt.Status != model.StatusPending && appt.Status != model.StatusConfirmed {
		http.Error(w, "appointment cannot be rescheduled", http.StatusConflict)
		return
	}

	duration := appt.EndMinute - appt.StartMinute
	endMinute := startMinute + duration
	if endMinute > 24*60 {
		http.Error(w, "appointment runs past midnight", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.ListOccupyingForDayTx(ctx, tx, appt.BusinessID, appt.StaffID, req.Date)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}
	conflict, err := availability.WouldConflict(toBookings(existing, appt.ID), availability.FormatClock(startMinute), availability.FormatClock(endMinute))
	if err != nil {
		http.Error(w, "failed to evaluate conflicts", http.StatusInternalServerError)
		return
	}
	if conflict && !req.AllowConflict {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "slot_conflict"})
		return
	}

	if err := h.repo.Reschedule(ctx, tx, req.BusinessID, appt.ID, req.Date, startMinute, endMinute); err != nil {
		http.Error(w, "failed to reschedule appointment", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID,
		"business_id":    appt.BusinessID,
		"assignee":       appt.StaffID,
		"service_id":     appt.ServiceID,
		"old_date":       appt.Date,
		"old_start_time": availability.FormatClock(appt.StartMinute),
		"date":           req.Date,
		"start_time":     availability.FormatClock(startMinute),
		"end_time":       availability.FormatClock(endMinute),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     "booking.appointment.rescheduled.v1",
		Payload:       payload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rescheduleResponse{
		AppointmentID: appt.ID,
		Date:          req.Date,
		StartTime:     availability.FormatClock(startMinute),
		EndTime:       availability.FormatClock(endMinute),
		Conflict:      conflict,
	})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	businessID := strings.TrimSpace(r.Header.Get("X-Business-Id"))
	if businessID == "" {
		businessID = strings.TrimSpace(r.URL.Query().Get("business_id"))
	}
	if businessID == "" {
		http.Error(w, "business_id required", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	statusFilter := strings.TrimSpace(r.URL.Query().Get("status"))
	if statusFilter != "" && !model.ValidStatus(statusFilter) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	appts, err := h.repo.ListByBusiness(r.Context(), businessID, limit)
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	items := make([]listAppointmentItem, 0, len(appts))
	for _, appt := range appts {
		if statusFilter != "" && appt.Status != statusFilter {
			continue
		}
		item := listAppointmentItem{
			AppointmentID: appt.ID,
			Assignee:      appt.StaffID,
			ServiceID:     appt.ServiceID,
			Date:          appt.Date,
			StartTime:     availability.FormatClock(appt.StartMinute),
			EndTime:       availability.FormatClock(appt.EndMinute),
			Status:        appt.Status,
			CreatedAt:     appt.CreatedAt.UTC().Format(time.RFC3339),
		}
		if appt.CancelledAt != nil {
			item.CancelledAt = appt.CancelledAt.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

var errPaymentRequired = errors.New("monthly appointment limit reached (upgrade required)")

func (h *BookingHandler) enforceMonthlyAppointmentLimit(ctx context.Context, tx pgx.Tx, businessID, date string) error {
	const defaultFreeMax = 200

	ent, ok, err := h.repo.GetBusinessEntitlements(ctx, tx, businessID)
	if err != nil {
		return err
	}
	max := defaultFreeMax
	if ok && ent.MaxMonthlyAppointments > 0 {
		max = ent.MaxMonthlyAppointments
	}
	if max <= 0 {
		return nil
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	cnt, err := h.repo.CountActiveByBusinessInRange(ctx, tx, businessID,
		monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
	if err != nil {
		return err
	}
	if cnt >= max {
		return errPaymentRequired
	}
	return nil
}

// transition moves an appointment into a terminal-free status (confirm or
// complete). Re-applying the target status is idempotent.
func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, target, eventType string, allowedFrom map[string]bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.BusinessID = strings.TrimSpace(req.BusinessID)
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.BusinessID == "" || req.AppointmentID == "" {
		http.Error(w, "business_id and appointment_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetAppointmentForUpdate(ctx, tx, req.BusinessID, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	if appt.Status == target {
		writeJSON(w, http.StatusOK, statusChangeResponse{AppointmentID: appt.ID, Status: target})
		return
	}
	if !allowedFrom[appt.Status] {
		http.Error(w, "invalid status transition", http.StatusConflict)
		return
	}

	if err := h.repo.UpdateStatus(ctx, tx, req.BusinessID, appt.ID, target); err != nil {
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID,
		"business_id":    appt.BusinessID,
		"assignee":       appt.StaffID,
		"service_id":     appt.ServiceID,
		"customer_email": appt.CustomerEmail,
		"date":           appt.Date,
		"start_time":     availability.FormatClock(appt.StartMinute),
		"end_time":       availability.FormatClock(appt.EndMinute),
		"status":         target,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     eventType,
		Payload:       payload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, statusChangeResponse{AppointmentID: appt.ID, Status: target})
}

// resolveDayConfig resolves the day's booking configuration. The business
// service is authoritative; when the call fails, the event-fed local cache
// takes over, and an unknown business stays closed. Request parameters only
// substitute when no provider is configured at all (dev builds).
func (h *BookingHandler) resolveDayConfig(ctx context.Context, businessID, assignee, serviceID, date string, param func(string) string) (scheduling.AvailabilityConfig, bool) {
	if h.scheduling != nil {
		reqCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		cfg, err := h.scheduling.GetAvailabilityConfig(reqCtx, businessID, assignee, serviceID, date)
		if err == nil {
			if cfg.SlotStepMinutes <= 0 {
				cfg.SlotStepMinutes = availability.DefaultStepMinutes
			}
			if cfg.DurationMinutes <= 0 {
				cfg.DurationMinutes = 30
			}
			return cfg, true
		}
		h.logger.Warn("availability config fetch failed; using cached hours", "err", err)
		return h.cachedDayConfig(ctx, businessID, serviceID, date)
	}

	cfg := scheduling.AvailabilityConfig{
		Open:            true,
		OpenMinute:      9 * 60,
		CloseMinute:     17 * 60,
		DurationMinutes: 30,
		SlotStepMinutes: availability.DefaultStepMinutes,
	}
	if v := strings.TrimSpace(param("duration_minutes")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 8*60 {
			return scheduling.AvailabilityConfig{}, false
		}
		cfg.DurationMinutes = n
	}
	if v := strings.TrimSpace(param("slot_step_minutes")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 120 {
			return scheduling.AvailabilityConfig{}, false
		}
		cfg.SlotStepMinutes = n
	}
	if v := strings.TrimSpace(param("workday_start")); v != "" {
		m, err := availability.ParseClock(v)
		if err != nil {
			return scheduling.AvailabilityConfig{}, false
		}
		cfg.OpenMinute = m
	}
	if v := strings.TrimSpace(param("workday_end")); v != "" {
		m, err := availability.ParseClock(v)
		if err != nil {
			return scheduling.AvailabilityConfig{}, false
		}
		cfg.CloseMinute = m
	}
	if cfg.CloseMinute <= cfg.OpenMinute {
		return scheduling.AvailabilityConfig{}, false
	}
	return cfg, true
}

// cachedDayConfig serves hours from the local cache fed by business events.
// A cache miss or read error reports the day closed rather than inventing a
// window.
func (h *BookingHandler) cachedDayConfig(ctx context.Context, businessID, serviceID, date string) (scheduling.AvailabilityConfig, bool) {
	if h.repo == nil {
		return scheduling.AvailabilityConfig{}, false
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return scheduling.AvailabilityConfig{}, false
	}
	hours, err := h.repo.ListWeeklyHours(ctx, businessID)
	if err != nil {
		h.logger.Warn("cached hours lookup failed", "err", err)
		return scheduling.AvailabilityConfig{}, false
	}
	resolved := hours.ResolveDay(day)
	cfg := scheduling.AvailabilityConfig{
		Open:            resolved.Open,
		OpenMinute:      resolved.OpenMinute,
		CloseMinute:     resolved.CloseMinute,
		DurationMinutes: 30,
		SlotStepMinutes: availability.DefaultStepMinutes,
	}
	if dur, ok, err := h.repo.GetCachedServiceDuration(ctx, businessID, serviceID); err == nil && ok {
		cfg.DurationMinutes = dur
	}
	return cfg, true
}

func (h *BookingHandler) enqueueReminders(ctx context.Context, tx pgx.Tx, appointmentID string, appt *model.Appointment) {
	day, err := time.Parse("2006-01-02", appt.Date)
	if err != nil {
		return
	}
	startAt := day.Add(time.Duration(appt.StartMinute) * time.Minute)

	now := time.Now().UTC()
	offsets := h.defaults
	if h.policy != nil {
		if policyOffsets, err := h.policy.ReminderOffsets(ctx, appt.BusinessID); err == nil && len(policyOffsets) > 0 {
			offsets = policyOffsets
		} else if err != nil {
			h.logger.Warn("policy offsets fetch failed; using defaults", "err", err)
		}
	}
	for _, offset := range offsets {
		remindAt := startAt.Add(-offset)
		if remindAt.Before(now) {
			continue
		}
		h.enqueueReminder(ctx, tx, appointmentID, appt, remindAt, "email", appt.CustomerEmail)
		h.enqueueReminder(ctx, tx, appointmentID, appt, remindAt, "sms", appt.CustomerPhone)
	}
}

func (h *BookingHandler) enqueueReminder(ctx context.Context, tx pgx.Tx, appointmentID string, appt *model.Appointment, remindAt time.Time, channel string, recipient string) {
	if strings.TrimSpace(recipient) == "" {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appointmentID,
		"business_id":    appt.BusinessID,
		"channel":        channel,
		"recipient":      recipient,
		"remind_at":      remindAt.UTC().Format(time.RFC3339),
		"template_data": map[string]any{
			"customer_name": appt.CustomerName,
			"service_id":    appt.ServiceID,
			"date":          appt.Date,
			"start_time":    availability.FormatClock(appt.StartMinute),
		},
	})
	if err != nil {
		h.logger.Error("failed to build reminder payload", "err", err)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appointmentID,
		EventType:     "booking.reminder.requested.v1",
		Payload:       payload,
	}); err != nil {
		h.logger.Error("failed to enqueue reminder", "err", err)
	}
}

func (h *BookingHandler) finalizeIdempotencyError(ctx context.Context, tx pgx.Tx, businessID, key string, statusCode int, msg string) bool {
	body, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return false
	}
	if err := h.repo.FinalizeIdempotency(ctx, tx, businessID, key, "", statusCode, body); err != nil {
		h.logger.Error("failed to finalize idempotency (error)", "err", err)
		return false
	}
	return true
}

func toBookings(appts []model.Appointment, excludeID string) []availability.Booking {
	out := make([]availability.Booking, 0, len(appts))
	for _, a := range appts {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		out = append(out, availability.Booking{
			Start:  availability.FormatClock(a.StartMinute),
			End:    availability.FormatClock(a.EndMinute),
			Status: a.Status,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
