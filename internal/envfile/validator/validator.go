// Package validator checks environment documents against the envfile schema.
package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thoreinstein/llcheck/internal/document"
	"github.com/thoreinstein/llcheck/internal/envfile"
	report "github.com/thoreinstein/llcheck/internal/validator"
)

// Validator checks environment documents.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	required  []envfile.Field
	server    []envfile.Field
	pathRules []envfile.PathField
}

// New creates a Validator for the envfile schema.
func New() *Validator {
	return &Validator{
		required:  envfile.RequiredFields(),
		server:    envfile.ServerFields(),
		pathRules: envfile.AbsolutePathFields(),
	}
}

// ValidateConfig checks doc and returns every violation message in report
// order. An empty slice means doc is valid.
func ValidateConfig(doc document.Value) []string {
	return New().Validate(doc).Messages()
}

// ValidateServer checks a single server entry and returns its messages
// without the "Server N: " prefix.
func ValidateServer(entry document.Value) []string {
	issues := New().ValidateServer(entry)
	msgs := make([]string, 0, len(issues))
	for _, i := range issues {
		msgs = append(msgs, i.Message)
	}
	return msgs
}

// Validate runs every check against doc and returns the issues in a fixed
// order: required fields in table order, then server entries in sequence
// order, then the absolute path checks.
//
// Checks never stop early and never fail: a document that is not a mapping
// at all reports every required field as missing.
func (v *Validator) Validate(doc document.Value) *report.Result {
	result := &report.Result{}

	v.validateRequired(result, doc)
	v.validateServers(result, doc)
	v.validatePaths(result, doc)

	return result
}

// validateRequired reports each required field that is absent or has the
// wrong type. At most one issue is reported per field.
func (v *Validator) validateRequired(result *report.Result, doc document.Value) {
	for _, f := range v.required {
		val, ok := doc.Lookup(f.Name)
		if !ok {
			result.AddError(f.Name, missingField(f.Name), nil)
			continue
		}
		if !f.Type.Matches(val) {
			result.AddError(f.Name, wrongType(f.Name, f.Type.String()), val)
		}
	}
}

// validateServers checks each server entry when servers is a list.
// Any other shape was already reported by validateRequired.
func (v *Validator) validateServers(result *report.Result, doc document.Value) {
	servers, ok := doc.Lookup(envfile.FieldServers)
	if !ok {
		return
	}
	entries, ok := servers.Items()
	if !ok {
		return
	}

	for i, entry := range entries {
		ordinal := i + 1
		for _, issue := range v.ValidateServer(entry) {
			issue.Message = serverMessage(ordinal, issue.Message)
			issue.Field = serverPath(i, issue.Field)
			issue.Context = map[string]string{"server": strconv.Itoa(ordinal)}
			result.Add(issue)
		}
	}
}

// ValidateServer checks one server entry. Field paths in the returned
// issues are relative to the entry and messages carry no ordinal prefix.
func (v *Validator) ValidateServer(entry document.Value) []report.Issue {
	if entry.Kind() != document.KindMapping {
		return []report.Issue{{
			Severity: report.SeverityError,
			Message:  msgServerNotMapping,
			Value:    entry,
		}}
	}

	var issues []report.Issue
	for _, f := range v.server {
		val, ok := entry.Lookup(f.Name)
		switch {
		case !ok:
			issues = append(issues, report.Issue{
				Severity: report.SeverityError,
				Field:    f.Name,
				Message:  serverMissing(f.Name),
			})
		case !f.Type.Matches(val):
			issues = append(issues, report.Issue{
				Severity: report.SeverityError,
				Field:    f.Name,
				Message:  serverNotString(f.Name),
				Value:    val,
			})
		}
	}
	return issues
}

// validatePaths reports path fields holding relative paths. Fields that are
// absent or not strings are skipped; validateRequired covers them.
func (v *Validator) validatePaths(result *report.Result, doc document.Value) {
	for _, f := range v.pathRules {
		val, ok := doc.Lookup(f.Name)
		if !ok {
			continue
		}
		s, ok := val.Str()
		if !ok {
			continue
		}
		if !strings.HasPrefix(s, "/") {
			result.AddError(f.Name, notAbsolute(f.Label), s)
		}
	}
}

// serverPath renders the path of a field inside the i-th (0-based) server.
func serverPath(i int, field string) string {
	base := fmt.Sprintf("%s[%d]", envfile.FieldServers, i)
	if field == "" {
		return base
	}
	return base + "." + field
}
