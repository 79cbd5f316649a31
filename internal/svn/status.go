package svn

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/chmouel/svnrevert/internal/models"
)

type xmlStatus struct {
	Path     string `xml:"path,attr"`
	WCStatus *struct {
		Item string `xml:"item,attr"`
	} `xml:"wc-status"`
}

// ParseStatus converts the output of svn status --xml into entries, in
// document order. Every entry element counts, whether it sits under a target
// or a changelist.
func ParseStatus(data []byte) ([]models.StatusEntry, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	entries := []models.StatusEntry{}
	sawRoot := false
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse svn status: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "entry" {
			continue
		}

		var raw xmlStatus
		if err := decoder.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("parse svn status: %w", err)
		}
		if raw.WCStatus == nil {
			return nil, fmt.Errorf("parse svn status: entry %q has no wc-status", raw.Path)
		}
		entries = append(entries, models.StatusEntry{
			Path: raw.Path,
			Item: models.Classification(raw.WCStatus.Item),
		})
	}

	if !sawRoot {
		return nil, fmt.Errorf("parse svn status: no XML document in output")
	}
	return entries, nil
}
