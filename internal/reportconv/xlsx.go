package reportconv

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	api "github.com/storemon/storemon/lib-storemon"
)

func excelPos(x, y uint) string {
	pos, err := excelize.CoordinatesToCellName(int(x+1), int(y+1))
	if err != nil {
		panic(err)
	}
	return pos
}

// ToXlsx writes rows as an XLSX report with a frozen header row.
func ToXlsx(w io.Writer, rows []api.ReportRow, createdAt time.Time) error {
	xlsx := excelize.NewFile()
	defer xlsx.Close()
	xlsx.SetSheetName("Sheet1", "report")

	xlsx.SetAppProps(&excelize.AppProperties{
		Application: "Storemon",
	})
	xlsx.SetDocProps(&excelize.DocProperties{
		Created:        createdAt.Format(time.RFC3339),
		Modified:       createdAt.Format(time.RFC3339),
		Creator:        "Storemon",
		LastModifiedBy: "Storemon",
	})

	for col, name := range Columns {
		xlsx.SetCellStr("report", excelPos(uint(col), 0), name)
	}

	numfmt := "0.00"
	style, _ := xlsx.NewStyle(&excelize.Style{CustomNumFmt: &numfmt})

	for i, r := range rows {
		row := uint(i + 1)
		xlsx.SetCellStr("report", excelPos(0, row), r.StoreID)

		values := []float64{
			r.UptimeLastHour,
			r.UptimeLastDay,
			r.UptimeLastWeek,
			r.DowntimeLastHour,
			r.DowntimeLastDay,
			r.DowntimeLastWeek,
		}
		for col, v := range values {
			pos := excelPos(uint(col+1), row)
			xlsx.SetCellFloat("report", pos, v, 2, 64)
			xlsx.SetCellStyle("report", pos, pos, style)
		}
	}

	err := xlsx.SetPanes("report", &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "topLeft",
	})
	if err != nil {
		return err
	}

	xlsx.SetColWidth("report", "A", "A", 20)
	xlsx.SetColWidth("report", "B", "G", 18)

	xlsx.AutoFilter("report", "A1:"+excelPos(uint(len(Columns)-1), 0), nil)

	return xlsx.Write(w)
}
