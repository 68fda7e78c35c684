package finance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/de-tools/budget-bee/pkg/adapters"
	"github.com/de-tools/budget-bee/pkg/models/api"
	"github.com/de-tools/budget-bee/pkg/models/domain"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type BudgetAnalyzer interface {
	Analyze(rec domain.IncomeExpenseRecord) (domain.BudgetReport, error)
}

type GoalPlanner interface {
	Plan(req domain.GoalRequest) (domain.GoalPlan, error)
}

type Adviser interface {
	Advise(rec domain.IncomeExpenseRecord, report domain.BudgetReport, persona domain.Persona) []string
}

type Narrator interface {
	DescribeBudget(ctx context.Context, report domain.BudgetReport) string
	DescribeGoal(ctx context.Context, plan domain.GoalPlan) string
}

// Handler serves the two engine operations. Adviser and Narrator are
// optional; when nil the corresponding response fields stay empty.
type Handler struct {
	analyzer BudgetAnalyzer
	planner  GoalPlanner
	adviser  Adviser
	narrator Narrator
}

func NewHandler(analyzer BudgetAnalyzer, planner GoalPlanner, adviser Adviser, narrator Narrator) *Handler {
	return &Handler{
		analyzer: analyzer,
		planner:  planner,
		adviser:  adviser,
		narrator: narrator,
	}
}

func (h *Handler) AnalyzeBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec := domain.IncomeExpenseRecord{
		Income:        req.Income,
		Expenses:      req.Expenses,
		LiquidSavings: req.LiquidSavings,
	}

	report, err := h.analyzer.Analyze(rec)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := adapters.MapBudgetReportDomainToApi(report)
	if h.adviser != nil {
		response.Tips = h.adviser.Advise(rec, report, domain.Persona(req.Persona))
	}
	if h.narrator != nil && wantsNarrative(r) {
		response.Narrative = h.narrator.DescribeBudget(ctx, report)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode budget report")
	}
}

func (h *Handler) PlanGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	deadline, err := parseDeadline(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.planner.Plan(domain.GoalRequest{
		TargetAmount:   req.TargetAmount,
		Deadline:       deadline,
		CurrentSavings: req.CurrentSavings,
		MonthlySurplus: req.MonthlySurplus,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response := adapters.MapGoalPlanDomainToApi(plan)
	if h.narrator != nil && wantsNarrative(r) {
		response.Narrative = h.narrator.DescribeGoal(ctx, plan)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode goal plan")
	}
}

func parseDeadline(req api.PlanRequest) (domain.Deadline, error) {
	if req.DeadlineDate != "" {
		date, err := time.Parse(dateLayout, req.DeadlineDate)
		if err != nil {
			return domain.Deadline{}, errors.New("invalid 'deadline_date' format. Expected format: YYYY-MM-DD")
		}
		return domain.DeadlineAt(date), nil
	}
	return domain.DeadlineIn(req.DeadlineMonths), nil
}

func wantsNarrative(r *http.Request) bool {
	return r.URL.Query().Get("narrate") == "1"
}

func writeDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidDeadline) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
