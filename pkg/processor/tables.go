package processor

import (
	"log"
	"strings"

	"github.com/xhad/medqa/internal/models"
)

// CultureLabel is the bacterial culture and sensitivity field. Its value
// also collects the resistant rows of the document's tables.
const CultureLabel = "细菌培养及药敏"

// MergeTableRows appends every table row whose second cell holds a ">"
// comparison to value.
func MergeTableRows(value string, tables []models.Table) string {
	for ti, table := range tables {
		for ri, row := range table.Rows {
			if len(row.Cells) < 2 {
				log.Printf("table %d row %d has %d cells, skipping", ti+1, ri+1, len(row.Cells))
				continue
			}
			if strings.Contains(row.Cells[1], ">") {
				value += " " + row.Cells[0] + row.Cells[1] + " "
				value = NormalizePunctuation(value)
			}
		}
	}
	return value
}
