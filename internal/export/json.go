package export

import (
	"encoding/json"
	"fmt"

	"github.com/gorewood/moodlog/internal/output"
)

// FormatJSON writes the records as a JSON array to the printer.
func FormatJSON(printer *output.Printer, records []*Record) error {
	if records == nil {
		records = []*Record{}
	}
	return printer.WriteJSON(records)
}

func marshalRecord(record *Record) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, output.NewSystemError(fmt.Sprintf("failed to marshal record %s: %v", record.File, err))
	}
	return append(data, '\n'), nil
}
