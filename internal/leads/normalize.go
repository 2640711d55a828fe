package leads

import (
	"net/url"
	"strings"
)

// asTrimmedString coerces an arbitrary JSON value to a trimmed string.
// Anything that is not a string normalizes to "".
func asTrimmedString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// NormalizeJSON builds a Lead from a decoded JSON object. Every expected field
// is coerced to a trimmed string; notes falls back to the legacy "message"
// field when empty. This never fails.
func NormalizeJSON(body map[string]any) Lead {
	lead := Lead{
		Name:     asTrimmedString(body["name"]),
		Email:    asTrimmedString(body["email"]),
		Phone:    asTrimmedString(body["phone"]),
		Address:  asTrimmedString(body["address"]),
		JobType:  asTrimmedString(body["jobType"]),
		Notes:    asTrimmedString(body["notes"]),
		FilePath: asTrimmedString(body["filePath"]),
	}
	if lead.Notes == "" {
		lead.Notes = asTrimmedString(body["message"])
	}
	return lead
}

// NormalizeForm builds a Lead from multipart form values using the same field
// names and fallback rules as NormalizeJSON.
func NormalizeForm(values url.Values) Lead {
	lead := Lead{
		Name:     strings.TrimSpace(values.Get("name")),
		Email:    strings.TrimSpace(values.Get("email")),
		Phone:    strings.TrimSpace(values.Get("phone")),
		Address:  strings.TrimSpace(values.Get("address")),
		JobType:  strings.TrimSpace(values.Get("jobType")),
		Notes:    strings.TrimSpace(values.Get("notes")),
		FilePath: strings.TrimSpace(values.Get("filePath")),
	}
	if lead.Notes == "" {
		lead.Notes = strings.TrimSpace(values.Get("message"))
	}
	return lead
}
