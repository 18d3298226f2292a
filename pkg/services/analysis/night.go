package analysis

import (
	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

// ClassifyNightTime flags records whose hour falls inside the night window.
// Classification depends only on the record's hour, never on other records.
func ClassifyNightTime(records []domain.ConsumptionRecord, nightHours []int) {
	window := make(map[int]struct{}, len(nightHours))
	for _, h := range nightHours {
		window[h] = struct{}{}
	}

	for i := range records {
		_, night := window[records[i].Hour]
		records[i].IsNightTime = night
	}
}
