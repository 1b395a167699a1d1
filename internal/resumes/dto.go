package resumes

import (
	"fmt"
	"time"

	"resume-parser/internal/resume"
)

// parseResponse flattens the résumé fields next to the total processing time.
type parseResponse struct {
	resume.Resume
	TotalTimeTaken float64 `json:"total_time_taken"`
}

func toResponse(p Parsed) parseResponse {
	return parseResponse{
		Resume:         p.Resume,
		TotalTimeTaken: p.Total().Seconds(),
	}
}

func serverTiming(p Parsed) string {
	return fmt.Sprintf("extract;dur=%s, generate;dur=%s", durMs(p.ExtractionTime), durMs(p.GenerationTime))
}

func durMs(d time.Duration) string {
	return fmt.Sprintf("%.1f", float64(d)/float64(time.Millisecond))
}
