package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

const (
	summarySheet = "Summary Report"
	absenceSheet = "Adjusted Absences"
	failureSheet = "Failures"
)

// AttendanceWorkbook renders one run result as an xlsx workbook with the
// summary, adjusted-absence and failure sheets.
func AttendanceWorkbook(result *report.RunResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(absenceSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(failureSheet); err != nil {
		return nil, err
	}

	writeSummarySheet(f, result)
	writeAbsenceSheet(f, result)
	writeFailureSheet(f, result)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, result *report.RunResult) {
	headers := []string{
		"Employee ID", "Employee Name", "Source",
		"Period Start", "Period End",
		"Total Present Days", "Total Absent Days", "Final Absent Days",
		"Excused Days", "Total Employee Period OFFs", "Total Expected Weekends In Period",
		"Count Single Punch Days", "Count More Than 4 Punches Days",
		"Total Shift Durations", "Average Shift Duration",
		"Absent Dates", "Vacation Days",
		"Total Pending OFFs", "Total Absent After Pending", "Pending OFF Dates",
	}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(summarySheet, col+"1", h)
	}

	for i, s := range result.Summaries {
		row := fmt.Sprint(i + 2)
		values := []interface{}{
			s.EmployeeID, s.EmployeeName, s.Source,
			s.Period.Start.String(), s.Period.End.String(),
			s.TotalPresentDays, s.TotalAbsentDays, s.FinalAbsentDays,
			s.ExcusedDays, s.TotalPeriodOffs, s.ExpectedWeekends,
			s.CountSinglePunchDays, s.CountHeavyPunchDays,
			timeutil.FormatHMS(s.TotalShiftSeconds), timeutil.FormatHMS(s.AverageShiftSeconds),
			joinDates(s.FinalAbsentDates), s.VacationDays,
			s.TotalPendingOffs, s.TotalAbsentAfterPending, joinDates(s.PendingOffDates),
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(summarySheet, col+row, v)
		}
	}
}

func writeAbsenceSheet(f *excelize.File, result *report.RunResult) {
	f.SetCellValue(absenceSheet, "A1", "Employee ID")
	f.SetCellValue(absenceSheet, "B1", "Employee Name")
	f.SetCellValue(absenceSheet, "C1", "Date")
	f.SetCellValue(absenceSheet, "D1", "Excused")
	f.SetCellValue(absenceSheet, "E1", "Excusal Source")
	f.SetCellValue(absenceSheet, "F1", "Reason")

	for i, row := range result.AdjustedAbsences {
		n := fmt.Sprint(i + 2)
		f.SetCellValue(absenceSheet, "A"+n, row.EmployeeID)
		f.SetCellValue(absenceSheet, "B"+n, row.EmployeeName)
		f.SetCellValue(absenceSheet, "C"+n, row.Date.String())
		f.SetCellValue(absenceSheet, "D"+n, row.Excused)
		f.SetCellValue(absenceSheet, "E"+n, string(row.Source))
		f.SetCellValue(absenceSheet, "F"+n, row.Reason)
	}
}

func writeFailureSheet(f *excelize.File, result *report.RunResult) {
	f.SetCellValue(failureSheet, "A1", "Employee ID")
	f.SetCellValue(failureSheet, "B1", "Employee Name")
	f.SetCellValue(failureSheet, "C1", "Reason")

	for i, failure := range result.Failures {
		n := fmt.Sprint(i + 2)
		f.SetCellValue(failureSheet, "A"+n, failure.EmployeeID)
		f.SetCellValue(failureSheet, "B"+n, failure.EmployeeName)
		f.SetCellValue(failureSheet, "C"+n, failure.Reason)
	}
}

func joinDates(dates []timeutil.Date) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ", ")
}
