package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/i474232898/electricity-usage-tracker/internal/energy"
)

// MIME types attached to export blobs for the download action.
const (
	MIMECSV  = "text/csv"
	MIMEJSON = "application/json"
)

// Export is a one-way downloadable blob: the data plus the suggested
// filename and MIME type for the consumer to attach to a download.
type Export struct {
	Filename string
	MIME     string
	Data     []byte
}

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"Date", "TotalEnergyKWh", "Cost", "Name", "City", "HousingType",
	"AC", "Fridge", "WashingMachine", "TV", "Microwave", "WaterHeater",
}

func filename(now time.Time, ext string) string {
	return "electricity_usage_" + now.Format("20060102") + "." + ext
}

// CSV serializes the entries to one row per day, sorted ascending by date.
// Cost is recomputed from the stored energy at export time.
func CSV(entries []energy.UsageEntry, now time.Time) (Export, error) {
	sorted := make([]energy.UsageEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return Export{}, err
	}

	for _, e := range sorted {
		flags := e.Profile.Appliances
		row := []string{
			e.DateKey(),
			formatFloat(e.TotalEnergyKWh),
			formatFloat(energy.DailyCost(e.TotalEnergyKWh)),
			e.Profile.Name,
			e.Profile.City,
			string(e.Profile.Housing),
			strconv.FormatBool(flags.AC),
			strconv.FormatBool(flags.Fridge),
			strconv.FormatBool(flags.WashingMachine),
			strconv.FormatBool(flags.TV),
			strconv.FormatBool(flags.Microwave),
			strconv.FormatBool(flags.WaterHeater),
		}
		if err := w.Write(row); err != nil {
			return Export{}, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Export{}, err
	}

	return Export{
		Filename: filename(now, "csv"),
		MIME:     MIMECSV,
		Data:     buf.Bytes(),
	}, nil
}

// JSON serializes every entry, including the embedded profile snapshot, as
// indented JSON. The output round-trips back into the in-memory model.
func JSON(entries []energy.UsageEntry, now time.Time) (Export, error) {
	sorted := make([]energy.UsageEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return Export{}, err
	}

	return Export{
		Filename: filename(now, "json"),
		MIME:     MIMEJSON,
		Data:     data,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
