package leads

// requiredFields is the fixed declared order for missing-field reporting.
var requiredFields = []string{"name", "email", "phone", "address", "jobType"}

// MissingFields returns the required fields that are empty after
// normalization, in declared order. Validation is presence-only: no email or
// phone shape checks, matching the accept/reject behavior the live form has
// always had.
func MissingFields(lead Lead) []string {
	values := map[string]string{
		"name":    lead.Name,
		"email":   lead.Email,
		"phone":   lead.Phone,
		"address": lead.Address,
		"jobType": lead.JobType,
	}

	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
