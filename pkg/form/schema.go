package form

import "github.com/oneshotleague/formrelay/pkg/validator"

// safeString bundles the checks every free-text field shares: presence,
// length bounds, and the injection screen.
func safeString(field, value string, min, max int, required bool) []validator.Rule {
	rules := make([]validator.Rule, 0, 4)
	if required {
		rules = append(rules, validator.RequiredString(field, value))
	}
	if min > 1 {
		rules = append(rules, validator.MinLenString(field, value, min))
	}
	rules = append(rules,
		validator.MaxLenString(field, value, max),
		validator.SafeString(field, value),
	)
	return rules
}

func phoneRules(value string) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString("phone", value),
		validator.MaxLenString("phone", value, MaxPhoneLen),
		validator.PhoneString("phone", value),
	}
}

func emailRules(value string) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString("email", value),
		validator.MaxLenString("email", value, MaxEmailLen),
		validator.EmailString("email", value),
	}
}

func metricRules(field, value string) []validator.Rule {
	return []validator.Rule{
		validator.RequiredString(field, value),
		validator.MaxLenString(field, value, MaxMetricLen),
		validator.DigitsString(field, value),
	}
}

func attachmentRules(field string, a *Attachment) []validator.Rule {
	meta := a.Meta()
	return []validator.Rule{
		validator.RequiredFile(field, meta),
		validator.MaxFileSize(field, meta, MaxFileSize),
		validator.AllowedFileType(field, meta, AllowedFileExtensions, AllowedFileTypes),
	}
}

// Validate implements Submission. Every field is checked; the returned
// validator.ValidationErrors reports all failing fields, not just the first.
func (p *Participant) Validate() error {
	var rules []validator.Rule
	rules = append(rules, safeString("name", p.Name, MinNameLen, MaxNameLen, true)...)
	rules = append(rules, safeString("location", p.Location, 1, MaxLocationLen, true)...)
	rules = append(rules, phoneRules(p.Phone)...)
	rules = append(rules, emailRules(p.Email)...)
	rules = append(rules, safeString("social", p.Social, 0, MaxSocialLen, false)...)
	rules = append(rules, metricRules("height", p.Height)...)
	rules = append(rules, metricRules("weight", p.Weight)...)
	rules = append(rules, safeString("skills", p.Skills, 1, MaxSkillsLen, true)...)
	rules = append(rules, safeString("about", p.About, MinStoryLen, MaxStoryLen, true)...)
	rules = append(rules, attachmentRules("resume", p.Resume)...)
	rules = append(rules, attachmentRules("medical", p.Medical)...)
	return validator.Apply(rules...)
}

// Validate implements Submission.
func (s *Sponsor) Validate() error {
	var rules []validator.Rule
	rules = append(rules, safeString("company", s.Company, 1, MaxCompanyLen, true)...)
	rules = append(rules, phoneRules(s.Phone)...)
	rules = append(rules, emailRules(s.Email)...)
	rules = append(rules, safeString("description", s.Description, MinStoryLen, MaxStoryLen, true)...)
	return validator.Apply(rules...)
}
