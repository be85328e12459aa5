package cli

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfZebraColor  = props.Color{Red: 242, Green: 242, Blue: 242}
	pdfMinusColor  = props.Color{Red: 180, Green: 40, Blue: 40}
)

// Column widths on maroto's 12-column grid.
const (
	colDate    = 2
	colTime    = 2
	colPause   = 1
	colCode    = 1
	colProject = 4
	colNet     = 1
	colBalance = 1
)

// renderTimesheetPDF writes the A4 timesheet of a report to outputPath.
func renderTimesheetPDF(rep timetrack.Report, employee, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(12,
		text.NewCol(8, "Stundenzettel", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(4, employee, props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(7,
		text.NewCol(8, rep.Title(), props.Text{Size: 11, Color: &pdfMutedColor}),
		text.NewCol(4, fmt.Sprintf("%s - %s",
			rep.PeriodStart.Format("02.01.2006"), rep.PeriodEnd.Format("02.01.2006")), props.Text{
			Size:  9,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	// Table header
	head := props.Text{Style: fontstyle.Bold, Size: 8, Color: &pdfHeaderColor}
	headRight := head
	headRight.Align = align.Right
	m.AddRow(7,
		text.NewCol(colDate, "Datum", head),
		text.NewCol(colTime, "Zeit", head),
		text.NewCol(colPause, "Pause", headRight),
		text.NewCol(colCode, "Code", headRight),
		text.NewCol(colProject, "  Projekt / Tätigkeit", head),
		text.NewCol(colNet, "Netto", headRight),
		text.NewCol(colBalance, "Saldo", headRight),
	)
	m.AddRow(2, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	for _, row := range rep.Rows {
		r := m.AddRow(6, timesheetCols(row)...)
		if row.IsEvenDay {
			r.WithStyle(&props.Cell{BackgroundColor: &pdfZebraColor})
		}
	}

	// Summary
	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	s := rep.Summary
	for _, item := range []struct {
		label   string
		minutes int
		signed  bool
		bold    bool
	}{
		{label: "Arbeit", minutes: s.Work},
		{label: "Urlaub", minutes: s.Vacation},
		{label: "Krank", minutes: s.Sick},
		{label: "Feiertage", minutes: s.Holiday},
		{label: "Fahrzeit (unbezahlt)", minutes: s.Drive},
		{label: "Ist", minutes: s.TotalIst, bold: true},
		{label: "Soll", minutes: s.TotalTarget, bold: true},
		{label: "Saldo", minutes: s.TotalSaldo, signed: true, bold: true},
	} {
		style := props.Text{Size: 9, Color: &pdfHeaderColor}
		if item.bold {
			style.Style = fontstyle.Bold
		}
		value := schedule.FormatDuration(item.minutes)
		valueStyle := style
		valueStyle.Align = align.Right
		if item.signed {
			value = schedule.FormatSignedDuration(item.minutes)
			if item.minutes < 0 {
				valueStyle.Color = &pdfMinusColor
			}
		}
		m.AddRow(6,
			text.NewCol(4, item.label, style),
			text.NewCol(2, value, valueStyle),
		)
	}

	// Signature
	m.AddRow(20)
	m.AddRow(2,
		line.NewCol(5, props.Line{Color: &pdfMutedColor}),
		text.NewCol(2, ""),
		line.NewCol(5, props.Line{Color: &pdfMutedColor}),
	)
	m.AddRow(6,
		text.NewCol(5, "Datum, Unterschrift Mitarbeiter", props.Text{Size: 7, Color: &pdfMutedColor}),
		text.NewCol(2, ""),
		text.NewCol(5, "Unterschrift Bauleitung", props.Text{Size: 7, Color: &pdfMutedColor}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

// timesheetCols renders one report row. The date is printed on the first
// row of a day only; the balance on the last.
func timesheetCols(row timetrack.Row) []core.Col {
	e := row.Record.Entry
	cell := props.Text{Size: 8, Top: 1}
	if e.IsDrive() {
		cell.Color = &pdfMutedColor
	}
	right := cell
	right.Align = align.Right

	date := ""
	if d, err := e.Day(); err == nil && row.IsFirstOfDay {
		date = schedule.FormatDayLabel(d)
	}

	pause := ""
	if e.Pause > 0 {
		pause = fmt.Sprintf("%dm", e.Pause)
	}
	code := ""
	if e.Code != nil {
		code = fmt.Sprintf("%02d", *e.Code)
	}
	project := "  " + rowLabel(e)
	if e.Type == entry.TypePublicHoliday {
		project = "  Feiertag: " + e.Project
	}

	balance := ""
	balanceStyle := right
	if row.ShowBalance {
		balance = schedule.FormatSignedDuration(row.DayBalance)
		balanceStyle.Style = fontstyle.Bold
		if row.DayBalance < 0 {
			balanceStyle.Color = &pdfMinusColor
		}
	}

	return []core.Col{
		text.NewCol(colDate, date, cell),
		text.NewCol(colTime, timeLabel(e), cell),
		text.NewCol(colPause, pause, right),
		text.NewCol(colCode, code, right),
		text.NewCol(colProject, project, cell),
		text.NewCol(colNet, schedule.FormatDuration(timetrack.Minutes(e)), right),
		text.NewCol(colBalance, balance, balanceStyle),
	}
}
