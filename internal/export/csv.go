package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sajidmehmood/demo-bank-ledger/internal/models"
)

// Filename is the fixed suggested name for exported documents.
const Filename = "transactions.csv"

// Saver hands a finished document to the host environment as a named
// file.
type Saver interface {
	Save(name string, data []byte) error
}

// FileSaver writes documents into a directory on disk.
type FileSaver struct {
	Dir string
}

func (s FileSaver) Save(name string, data []byte) error {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	return nil
}

// BuildCSV renders the transaction list as a table-shaped document:
// header row, then one row per transaction with its 1-based index,
// reference, raw numeric amount, and kind. Every field is quoted and
// embedded quotes are doubled, so encoding/csv (which quotes only when
// needed) is not a fit here.
func BuildCSV(list []models.Transaction) string {
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, []string{"#", "REFERENCE", "AMOUNT", "TYPE"})
	for i, t := range list {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.Reference,
			t.Amount.String(),
			string(t.Kind),
		})
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		lines[i] = strings.Join(cells, ",")
	}
	return strings.Join(lines, "\n")
}

// Export builds the document and saves it under the fixed filename.
func Export(list []models.Transaction, saver Saver) error {
	return saver.Save(Filename, []byte(BuildCSV(list)))
}
