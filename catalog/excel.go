package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

func headerIndex(headers []string, candidates ...string) int {
	for i, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		for _, c := range candidates {
			if hl == strings.ToLower(c) {
				return i
			}
		}
	}
	return -1
}

// LoadFromExcel reads a craft catalog from a spreadsheet with "craft" and
// "subcraft" columns, one subcraft per row. Row order decides category order.
func LoadFromExcel(path string) ([]CraftCategory, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog sheet is empty")
	}

	header := rows[0]
	idxCraft := headerIndex(header, "craft", "craft_name", "category")
	idxSub := headerIndex(header, "subcraft", "sub_craft", "sub_craft_name")
	if idxCraft < 0 || idxSub < 0 {
		return nil, fmt.Errorf("catalog sheet missing craft/subcraft columns")
	}

	var out []CraftCategory
	index := map[string]int{}
	for i, row := range rows {
		if i == 0 || len(row) <= idxCraft {
			continue
		}
		craft := strings.TrimSpace(row[idxCraft])
		if craft == "" {
			continue
		}
		pos, ok := index[craft]
		if !ok {
			out = append(out, CraftCategory{Name: craft})
			pos = len(out) - 1
			index[craft] = pos
		}
		if idxSub < len(row) {
			if sub := strings.TrimSpace(row[idxSub]); sub != "" {
				out[pos].SubCrafts = append(out[pos].SubCrafts, sub)
			}
		}
	}
	return out, nil
}
