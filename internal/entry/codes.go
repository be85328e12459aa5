package entry

import (
	"fmt"
	"sort"
)

const (
	// CodeUnpaidTravel is driving time that is logged but not credited.
	CodeUnpaidTravel = 19
	// CodePaidTravel is arrival/departure travel, credited like work.
	CodePaidTravel = 190
	// CodeOffice is office work.
	CodeOffice = 70
)

// Code is one entry of the work-code catalogue.
type Code struct {
	ID    int
	Label string
}

var codes = map[int]string{
	1:   "01 - Schienen, Bunse",
	2:   "02 - Umlenkrollen, Rollenrost",
	3:   "03 - TWR mechanisch",
	4:   "04 - Heber, Joch, Seile",
	5:   "05 - GGW, Fangrahmen, Geschw. Regler",
	6:   "06 - TWR elektrisch, Steuerung",
	7:   "07 - Schachttüren, Schachtverblechung",
	8:   "08 - E-Installation, Schachtlicht",
	9:   "09 - Kabine mechanisch, Türantrieb, Auskleidung",
	10:  "10 - Kabine elektrisch, Lichtschranken, Dachsteuerung",
	11:  "11 - Einstellung, Fertigstellung, TÜV-Abnahme",
	12:  "12 - Transport",
	13:  "13 - Diverses, Besprechung, Vermessung",
	14:  "14 - Wartung",
	15:  "15 - Störung",
	16:  "16 - Garantie",
	17:  "17 - Regie",
	18:  "18 - Materialvorbereitung",
	19:  "19 - Fahrzeit",
	20:  "20 - Diverse Zusätze, Stahlschacht",
	21:  "21 - Reparaturen",
	22:  "22 - Umbau, Sanierungen",
	23:  "23 - TÜV-Mängel",
	24:  "24 - Demontage",
	25:  "25 - Gerüstbau",
	70:  "70 - Büro",
	190: "19 - An/Abreise",
}

// KnownCode reports whether code is in the catalogue.
func KnownCode(code int) bool {
	_, ok := codes[code]
	return ok
}

// CodeLabel returns the catalogue label for code, or the bare number when
// the code is unknown.
func CodeLabel(code int) string {
	if label, ok := codes[code]; ok {
		return label
	}
	return fmt.Sprintf("%02d", code)
}

// Codes returns the catalogue ordered by ID.
func Codes() []Code {
	out := make([]Code, 0, len(codes))
	for id, label := range codes {
		out = append(out, Code{ID: id, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CodeOf returns the entry's code label, or "" when it has none.
func CodeOf(e TimeEntry) string {
	if e.Code == nil {
		return ""
	}
	return CodeLabel(*e.Code)
}
