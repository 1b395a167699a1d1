// Package resumetest provides schema-valid résumé payloads for tests.
package resumetest

import (
	"encoding/json"
	"fmt"
)

// SampleJSON returns a complete résumé document that satisfies the schema.
// The first name and document text are parameterized so concurrent tests can
// tell results apart.
func SampleJSON(firstName, documentText string) []byte {
	doc := Sample(firstName, documentText)
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("resumetest: marshal sample: %v", err))
	}
	return raw
}

// Sample returns the generic map form of SampleJSON, convenient for mutation.
func Sample(firstName, documentText string) map[string]any {
	var text any
	if documentText != "" {
		text = documentText
	}
	return map[string]any{
		"personal_info": map[string]any{
			"first_name": firstName,
			"last_name":  "Doe",
			"birth_date": nil,
			"gender":     "female",
		},
		"location": map[string]any{
			"address":  nil,
			"city":     "Amsterdam",
			"postcode": nil,
			"country":  "NL",
		},
		"contact_info": map[string]any{
			"mobile_number": "+31 6 1234 5678",
			"email":         "jane@example.com",
		},
		"social_media": []any{
			map[string]any{"linkedin": "https://linkedin.com/in/janedoe", "github": nil},
		},
		"experience": []any{
			map[string]any{
				"start_date":            "2020-01",
				"end_date":              nil,
				"position":              "Senior Go Engineer",
				"company":               "Acme",
				"description":           "Built ingestion services.",
				"city":                  "Amsterdam",
				"region":                nil,
				"country":               "NL",
				"profession":            "Software Engineer",
				"profession_group":      nil,
				"profession_class":      nil,
				"is_current_experience": "true",
				"is_latest_experience":  "true",
			},
		},
		"nationality": nil,
		"job_title":   "Senior Go Engineer",
		"summary": map[string]any{
			"totalExperienceYears":  "6",
			"totalExperienceMonths": "3",
			"currentJob":            "Senior Go Engineer",
			"currentEmployer":       "Acme",
			"currentWorkField": map[string]any{
				"workFieldCode":              "IT",
				"workFieldDescription":       "Information Technology",
				"experienceLevelCode":        "SR",
				"experienceLevelDescription": "Senior",
			},
			"highestDegree": map[string]any{
				"localCode":                nil,
				"localDescription":         "MSc Computer Science",
				"internationalCode":        nil,
				"internationalDescription": nil,
				"endDate":                  "2017",
			},
			"summaryAmbitionSection": nil,
			"extraCurricularSection": nil,
		},
		"other": map[string]any{"profilePicture": nil},
		"metadata": map[string]any{
			"filename":                     "resume.pdf",
			"lang_code":                    "en",
			"lang":                         "English",
			"last_modified":                "2024-05-01",
			"partial_extraction_indicator": "false",
		},
		"document_text": text,
		"skills": map[string]any{
			"languages": []any{
				map[string]any{"language": "English", "level": "C2", "code": "en"},
			},
			"technologies": []any{
				map[string]any{
					"name":        "Go",
					"description": "Backend services",
					"years":       "6",
					"last_used":   "2024",
					"foundIn":     "experience",
				},
			},
		},
	}
}
