package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
	attendanceservice "github.com/cmlabs-hris/attendance-recon-go/internal/service/attendance"
	scheduleservice "github.com/cmlabs-hris/attendance-recon-go/internal/service/schedule"
)

type ServiceImpl struct {
	EmployeeRepository employee.EmployeeRepository
	PunchRepository    attendance.PunchRepository
	OverrideRepository attendance.OverrideRepository
	RuleRepository     schedule.RuleRepository
	LeaveRepository    leave.LeaveRepository
	Adjuster           leave.Adjuster
	PunchBuilder       attendance.PunchBuilder
	Aggregator         report.Aggregator
	Workers            int
	Logger             *slog.Logger
}

func NewReportService(
	employeeRepository employee.EmployeeRepository,
	punchRepository attendance.PunchRepository,
	overrideRepository attendance.OverrideRepository,
	ruleRepository schedule.RuleRepository,
	leaveRepository leave.LeaveRepository,
	adjuster leave.Adjuster,
	punchBuilder attendance.PunchBuilder,
	aggregator report.Aggregator,
	workers int,
	logger *slog.Logger,
) report.ReportService {
	if workers < 1 {
		workers = 1
	}
	return &ServiceImpl{
		EmployeeRepository: employeeRepository,
		PunchRepository:    punchRepository,
		OverrideRepository: overrideRepository,
		RuleRepository:     ruleRepository,
		LeaveRepository:    leaveRepository,
		Adjuster:           adjuster,
		PunchBuilder:       punchBuilder,
		Aggregator:         aggregator,
		Workers:            workers,
		Logger:             logger,
	}
}

// runInputs is everything a run needs, fully materialized before any
// classification starts.
type runInputs struct {
	period    timeutil.Period
	employees []employee.Employee
	resolver  schedule.Resolver
	punches   map[attendance.DayKey]attendance.PunchRecord
	overrides map[attendance.DayKey]attendance.OverrideEntry
	excusals  leave.ExcusalSet
	windows   map[string]timeutil.Period
	balances  map[string]int
	// poisoned holds employees whose inputs already failed integrity
	// checks; their summaries are skipped, not guessed.
	poisoned map[string]error
}

func (s *ServiceImpl) RunAttendanceReport(ctx context.Context, req *report.RunReportRequest) (*report.RunReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inputs, err := s.materialize(ctx, req)
	if err != nil {
		return nil, err
	}

	result := s.reconcile(inputs)
	result.RunID = uuid.NewString()
	result.Source = req.Source

	s.Logger.Info("attendance report run finished",
		slog.String("run_id", result.RunID),
		slog.String("period_start", result.Period.Start.String()),
		slog.String("period_end", result.Period.End.String()),
		slog.Int("employees", len(inputs.employees)),
		slog.Int("summaries", len(result.Summaries)),
		slog.Int("failures", len(result.Failures)),
	)

	return s.toResponse(result), nil
}

func (s *ServiceImpl) ExportAttendanceReport(ctx context.Context, req *report.RunReportRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	inputs, err := s.materialize(ctx, req)
	if err != nil {
		return nil, "", err
	}

	result := s.reconcile(inputs)
	result.RunID = uuid.NewString()
	result.Source = req.Source

	content, err := export.AttendanceWorkbook(result)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render attendance workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_report_%s_%s.xlsx", result.Period.Start, result.Period.End)
	return content, filename, nil
}

func (s *ServiceImpl) materialize(ctx context.Context, req *report.RunReportRequest) (*runInputs, error) {
	start, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", report.ErrInvalidPeriod, err)
	}
	end, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", report.ErrInvalidPeriod, err)
	}
	period, err := timeutil.NewPeriod(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", report.ErrInvalidPeriod, err)
	}

	employees, err := s.EmployeeRepository.List(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	ruleSet, err := s.RuleRepository.GetRuleSet(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule set: %w", err)
	}

	// Early-morning punches of the day after the period still close the
	// period's last shift, so the query window runs one hour past it.
	from := period.Start.Time()
	to := period.End.AddDays(1).Time().Add(time.Hour)

	rawPunches, err := s.PunchRepository.ListRawPunches(ctx, req.Source, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	overrideList, err := s.OverrideRepository.ListOverrides(ctx, req.Source, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	overrides := make(map[attendance.DayKey]attendance.OverrideEntry, len(overrideList))
	for _, entry := range overrideList {
		overrides[attendance.DayKey{EmployeeID: entry.EmployeeID, Date: entry.Date}] = entry
	}

	grants, err := s.LeaveRepository.ListGrants(ctx, req.Source, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave grants: %w", err)
	}

	events, err := s.LeaveRepository.ListEmploymentEvents(ctx, req.Source, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment events: %w", err)
	}

	credits, err := s.LeaveRepository.ListPendingOffCredits(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending off credits: %w", err)
	}

	punches, punchFailures := s.PunchBuilder.Build(rawPunches, period)
	excusals, grantFailures := s.Adjuster.Expand(grants, period)

	poisoned := make(map[string]error, len(punchFailures)+len(grantFailures))
	for id, failure := range punchFailures {
		poisoned[id] = failure
	}
	for id, failure := range grantFailures {
		if _, exists := poisoned[id]; !exists {
			poisoned[id] = failure
		}
	}

	return &runInputs{
		period:    period,
		employees: employees,
		resolver:  scheduleservice.NewResolver(ruleSet),
		punches:   punches,
		overrides: overrides,
		excusals:  excusals,
		windows:   s.Adjuster.EffectiveWindows(events, period),
		balances:  s.Adjuster.PendingOffBalances(credits),
		poisoned:  poisoned,
	}, nil
}

// reconcile classifies and folds every employee. Employees are independent,
// so they run on a bounded pool of workers; one employee failing never stops
// the others.
func (s *ServiceImpl) reconcile(inputs *runInputs) *report.RunResult {
	result := &report.RunResult{Period: inputs.period}
	classifier := attendanceservice.NewClassifier(inputs.resolver)

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		jobs = make(chan employee.Employee)
	)

	for i := 0; i < s.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for emp := range jobs {
				summary, absences, err := s.reconcileEmployee(classifier, inputs, emp)

				mu.Lock()
				if err != nil {
					s.Logger.Warn("employee excluded from attendance report",
						slog.String("employee_id", emp.ID),
						slog.String("reason", err.Error()),
					)
					result.Failures = append(result.Failures, report.EmployeeFailure{
						EmployeeID:   emp.ID,
						EmployeeName: emp.Name,
						Reason:       err.Error(),
					})
				} else {
					result.Summaries = append(result.Summaries, *summary)
					result.AdjustedAbsences = append(result.AdjustedAbsences, absences...)
				}
				mu.Unlock()
			}
		}()
	}

	for _, emp := range inputs.employees {
		jobs <- emp
	}
	close(jobs)
	wg.Wait()

	sort.Slice(result.Summaries, func(i, j int) bool {
		return result.Summaries[i].EmployeeID < result.Summaries[j].EmployeeID
	})
	sort.Slice(result.AdjustedAbsences, func(i, j int) bool {
		a, b := result.AdjustedAbsences[i], result.AdjustedAbsences[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		return a.Date.Before(b.Date)
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].EmployeeID < result.Failures[j].EmployeeID
	})

	return result
}

func (s *ServiceImpl) reconcileEmployee(
	classifier attendance.Classifier,
	inputs *runInputs,
	emp employee.Employee,
) (*report.EmployeeSummary, []report.AdjustedAbsenceRow, error) {
	if failure, bad := inputs.poisoned[emp.ID]; bad {
		return nil, nil, failure
	}

	window, hasWindow := inputs.windows[emp.ID]
	days := make([]attendance.DayRecord, 0, inputs.period.Days())

	for _, date := range inputs.period.Dates() {
		var punch *attendance.PunchRecord
		if record, ok := inputs.punches[attendance.DayKey{EmployeeID: emp.ID, Date: date}]; ok {
			punch = &record
		}

		rec, err := classifier.Classify(emp, date, attendance.ClassifyInput{
			Punch:     punch,
			Excusals:  inputs.excusals,
			Overrides: inputs.overrides,
		})
		if err != nil {
			return nil, nil, err
		}

		// Absences outside the employee's effective employment window are
		// not the employee's fault and are excused.
		if hasWindow && rec.Classification == attendance.ClassUnexcusedAbsent && !window.Contains(date) {
			rec.Classification = attendance.ClassExcusedAbsent
			rec.ExcusalSource = attendance.ExcusalWindow
		}

		days = append(days, rec)
	}

	summary, err := s.Aggregator.Fold(emp, days, inputs.period)
	if err != nil {
		return nil, nil, err
	}
	s.Aggregator.ApplyPendingOffs(summary, inputs.balances[emp.ID])

	var absences []report.AdjustedAbsenceRow
	for _, rec := range days {
		if rec.Classification != attendance.ClassUnexcusedAbsent &&
			rec.Classification != attendance.ClassExcusedAbsent {
			continue
		}
		absences = append(absences, report.AdjustedAbsenceRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Date:         rec.Date,
			Excused:      rec.Classification == attendance.ClassExcusedAbsent,
			Source:       rec.ExcusalSource,
			Reason:       rec.Note,
		})
	}

	return summary, absences, nil
}

func (s *ServiceImpl) toResponse(result *report.RunResult) *report.RunReportResponse {
	resp := &report.RunReportResponse{
		RunID:            result.RunID,
		PeriodStart:      result.Period.Start.String(),
		PeriodEnd:        result.Period.End.String(),
		Source:           result.Source,
		Summaries:        make([]report.EmployeeSummaryResponse, 0, len(result.Summaries)),
		AdjustedAbsences: make([]report.AdjustedAbsenceResponse, 0, len(result.AdjustedAbsences)),
		Failures:         make([]report.EmployeeFailureResponse, 0, len(result.Failures)),
	}

	for _, summary := range result.Summaries {
		resp.Summaries = append(resp.Summaries, toSummaryResponse(summary))
	}
	for _, row := range result.AdjustedAbsences {
		resp.AdjustedAbsences = append(resp.AdjustedAbsences, report.AdjustedAbsenceResponse{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Date:         row.Date.String(),
			Excused:      row.Excused,
			Source:       string(row.Source),
			Reason:       row.Reason,
		})
	}
	for _, failure := range result.Failures {
		resp.Failures = append(resp.Failures, report.EmployeeFailureResponse{
			EmployeeID:   failure.EmployeeID,
			EmployeeName: failure.EmployeeName,
			Reason:       failure.Reason,
		})
	}

	return resp
}

func toSummaryResponse(summary report.EmployeeSummary) report.EmployeeSummaryResponse {
	return report.EmployeeSummaryResponse{
		EmployeeID:   summary.EmployeeID,
		EmployeeName: summary.EmployeeName,
		Source:       summary.Source,
		PeriodStart:  summary.Period.Start.String(),
		PeriodEnd:    summary.Period.End.String(),
		PeriodDays:   summary.Period.Days(),

		TotalPresentDays: summary.TotalPresentDays,
		TotalAbsentDays:  summary.TotalAbsentDays,
		FinalAbsentDays:  summary.FinalAbsentDays,
		ExcusedDays:      summary.ExcusedDays,
		TotalPeriodOffs:  summary.TotalPeriodOffs,
		ExpectedWeekends: summary.ExpectedWeekends,

		CountSinglePunchDays: summary.CountSinglePunchDays,
		CountHeavyPunchDays:  summary.CountHeavyPunchDays,

		TotalShiftDurations:  timeutil.FormatHMS(summary.TotalShiftSeconds),
		AverageShiftDuration: timeutil.FormatHMS(summary.AverageShiftSeconds),

		AbsentDates:  joinDates(summary.FinalAbsentDates),
		VacationDays: summary.VacationDays,

		TotalPendingOffs:        summary.TotalPendingOffs,
		TotalAbsentAfterPending: summary.TotalAbsentAfterPending,
		PendingOffDates:         joinDates(summary.PendingOffDates),
	}
}

func joinDates(dates []timeutil.Date) string {
	if len(dates) == 0 {
		return ""
	}
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ", ")
}
