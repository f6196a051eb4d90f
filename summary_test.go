package oxmsg

import (
	"testing"

	"github.com/oxmsgkit/oxmsg/internal/cfbio"
)

func TestLoadSummaryPropertiesAbsent(t *testing.T) {
	adapter := cfbio.FromStreams(map[string][]byte{
		propertiesStreamName: make([]byte, 32),
	})
	if got := loadSummaryProperties(adapter); got != nil {
		t.Fatalf("expected nil Summary when no SummaryInformation stream is present, got %v", got)
	}
}

func TestLoadSummaryPropertiesUndecodable(t *testing.T) {
	adapter := cfbio.FromStreams(map[string][]byte{
		summaryInfoStreamName: {0xDE, 0xAD, 0xBE, 0xEF},
	})
	if got := loadSummaryProperties(adapter); got != nil {
		t.Fatalf("expected nil Summary for an undecodable stream, got %v", got)
	}
}
