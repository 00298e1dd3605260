package form

// MaxFileSize caps uploaded files at 3 MiB.
const MaxFileSize = 3 * 1024 * 1024

// Field length limits, mirrored by the public site's client-side checks.
const (
	MinNameLen     = 2
	MaxNameLen     = 100
	MaxLocationLen = 200
	MaxPhoneLen    = 20
	MaxEmailLen    = 254
	MaxSocialLen   = 500
	MaxMetricLen   = 4 // height/weight digit strings
	MaxSkillsLen   = 500
	MinStoryLen    = 10 // about / description
	MaxStoryLen    = 2000
	MaxCompanyLen  = 200
)

// AllowedFileExtensions is the attachment extension allow-list.
var AllowedFileExtensions = []string{"pdf", "doc", "docx", "txt", "rtf"}

// AllowedFileTypes is the attachment media-type allow-list. Either this or
// the extension list passing is sufficient to accept a file.
var AllowedFileTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"application/rtf",
}
