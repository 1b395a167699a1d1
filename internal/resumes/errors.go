package resumes

import "errors"

var (
	ErrMissingFile     = errors.New("pdf_file is required")
	ErrUnreadableFile  = errors.New("unable to read uploaded file")
	ErrPayloadTooLarge = errors.New("upload exceeds the maximum allowed size")
)

const (
	ErrorCodeValidation      = "validation_error"
	ErrorCodePayloadTooLarge = "payload_too_large"
	ErrorCodeExtraction      = "extraction_error"
	ErrorCodeGeneration      = "generation_error"
	ErrorCodeInternal        = "internal"
)

const (
	msgInvalidPDF       = "Invalid PDF file. Please upload a PDF file."
	msgExtractionPrefix = "Error processing PDF: "
	msgGenerationPrefix = "Error generating structured output: "
	msgUnexpectedPrefix = "Unexpected error: "
)
