package docprep

import "fmt"

// Accepted upload content types.
const (
	TypePDF      = "application/pdf"
	TypeText     = "text/plain"
	TypeMarkdown = "text/markdown"
	TypeDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var acceptedTypes = map[string]bool{
	TypePDF:      true,
	TypeText:     true,
	TypeMarkdown: true,
	TypeDocx:     true,
}

// ValidateFiles checks a candidate batch against count, type and size policy.
// Errors accumulate across all rules so one call surfaces every problem at
// once; IsValid is true iff no rule was violated.
func ValidateFiles(files []File, limits Limits) ValidationResult {
	// Non-nil so a clean batch serializes as an empty list, not null.
	errs := []string{}

	if len(files) > limits.MaxFiles {
		errs = append(errs, fmt.Sprintf("You can upload a maximum of %d files at a time", limits.MaxFiles))
	}

	for _, f := range files {
		if !acceptedTypes[f.ContentType()] {
			errs = append(errs, fmt.Sprintf("Unsupported file type: %s (%s)", f.Name(), f.ContentType()))
		}
		if f.Size() > limits.MaxFileBytes {
			errs = append(errs, fmt.Sprintf("File %s is too large (maximum %d MB)", f.Name(), limits.MaxFileBytes>>20))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
