package validator

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// FileMeta describes an uploaded file by its metadata only. Rules never read
// file content.
type FileMeta struct {
	Filename    string
	ContentType string // declared media type, as sent by the client
	Size        int64
}

// Ext returns the lowercase filename extension without the leading dot.
func (f FileMeta) Ext() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Filename)), ".")
}

// RequiredFile fails when no file was provided or the file is empty.
func RequiredFile(field string, file *FileMeta) Rule {
	return Rule{
		Failed: file == nil || file.Size == 0,
		Error: ValidationError{
			Field:             field,
			Message:           "a file is required",
			TranslationKey:    KeyFileRequired,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MaxFileSize fails when the file exceeds maxBytes. A nil file passes.
func MaxFileSize(field string, file *FileMeta, maxBytes int64) Rule {
	return Rule{
		Failed: file != nil && file.Size > maxBytes,
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must not exceed %d MB", maxBytes/(1024*1024)),
			TranslationKey:    KeyFileTooLarge,
			TranslationValues: map[string]any{"field": field, "max": maxBytes / (1024 * 1024)},
		},
	}
}

// AllowedFileType fails when neither the filename extension nor the declared
// media type is in the respective allow-list. Passing either check is enough:
// browsers are unreliable about both, so this is an inclusive OR.
// A nil file passes.
func AllowedFileType(field string, file *FileMeta, extensions, mimeTypes []string) Rule {
	failed := false
	if file != nil {
		failed = !slices.Contains(extensions, file.Ext()) &&
			!slices.Contains(mimeTypes, strings.ToLower(file.ContentType))
	}
	return Rule{
		Failed: failed,
		Error: ValidationError{
			Field:             field,
			Message:           "file type is not allowed",
			TranslationKey:    KeyInvalidFileType,
			TranslationValues: map[string]any{"field": field},
		},
	}
}
