// Package spreadsheet extracts call record rows from uploaded workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

// Column names, after header normalisation.
const (
	ColumnFirstName     = "receiver_first_name"
	ColumnLastName      = "receiver_last_name"
	ColumnNumber        = "number"
	ColumnCompany       = "company"
	ColumnDescription   = "description"
	ColumnPersonalNotes = "personal_notes"
)

// RequiredColumns must all be present in the header row.
var RequiredColumns = []string{
	ColumnFirstName,
	ColumnLastName,
	ColumnNumber,
	ColumnCompany,
	ColumnDescription,
}

var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrUnreadable      = errors.New("workbook could not be read")
	ErrEmptyWorkbook   = errors.New("workbook has no header row")
	ErrMissingColumn   = errors.New("missing required column")
	ErrMissingNumber   = errors.New("row has no number")
)

// Row is one data row of an import sheet.
type Row struct {
	// Line is the 1-based sheet row the data came from.
	Line              int
	ReceiverFirstName string
	ReceiverLastName  string
	Number            string
	Company           string
	Description       string
	PersonalNotes     string
}

// NewCallRecord converts the row to a record tagged with source.
func (r Row) NewCallRecord(source string) models.NewCallRecord {
	return models.NewCallRecord{
		ReceiverFirstName: r.ReceiverFirstName,
		ReceiverLastName:  r.ReceiverLastName,
		Number:            r.Number,
		Company:           r.Company,
		Description:       r.Description,
		PersonalNotes:     r.PersonalNotes,
		Source:            source,
	}
}

// CheckFilename rejects files whose extension is not a workbook format we read.
func CheckFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !supportedExtensions[ext] {
		if ext == "" {
			ext = "none"
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}
	return nil
}

var headerReplacer = strings.NewReplacer(" ", "_", "-", "_")

func normalizeHeader(s string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ReadRows parses the first sheet of the workbook in r. The first non-blank row is
// the header. Blank rows are dropped. The whole sheet is validated before anything
// is returned, so a bad row never yields a partial result.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	headerAt := -1
	for i, row := range cells {
		if !isBlank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrEmptyWorkbook
	}

	index := make(map[string]int)
	for i, name := range cells[headerAt] {
		key := normalizeHeader(name)
		if _, seen := index[key]; key != "" && !seen {
			index[key] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]Row, 0, len(cells)-headerAt-1)
	for i := headerAt + 1; i < len(cells); i++ {
		raw := cells[i]
		if isBlank(raw) {
			continue
		}

		row := Row{
			Line:              i + 1,
			ReceiverFirstName: cell(raw, ColumnFirstName),
			ReceiverLastName:  cell(raw, ColumnLastName),
			Number:            cell(raw, ColumnNumber),
			Company:           cell(raw, ColumnCompany),
			Description:       cell(raw, ColumnDescription),
			PersonalNotes:     cell(raw, ColumnPersonalNotes),
		}
		if row.Number == "" {
			return nil, fmt.Errorf("%w: line %d", ErrMissingNumber, row.Line)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
