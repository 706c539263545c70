package content

import (
	"fmt"
	"math"
	"strings"

	"krisenkanon/pkg/models"
)

// Result is the outcome of validating one raw manifest document.
// Validation is pure and never panics; a failed document still gets
// registered by the loader.
type Result struct {
	Valid  bool
	Errors []models.ValidationError
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindInteger
	kindBool
	kindLocalized
	kindStringArray
	kindEnum
	kindObject
	kindObjectArray
)

// fieldSpec describes one manifest field. The manifest schema below is a
// floor, not a ceiling: unknown keys are tolerated because authoring
// tools evolve the shape incrementally.
type fieldSpec struct {
	name     string
	kind     fieldKind
	required bool
	minItems int
	enum     []string
	fields   []fieldSpec // members for kindObject / element members for kindObjectArray
}

var localizedMembers = []fieldSpec{
	{name: "de", kind: kindString},
	{name: "en", kind: kindString},
}

var manifestSchema = []fieldSpec{
	{name: "id", kind: kindString, required: true},
	{name: "slug", kind: kindString, required: true},
	{name: "title", kind: kindLocalized, required: true},
	{name: "summary", kind: kindLocalized, required: true},
	{name: "categories", kind: kindStringArray, required: true, minItems: 1},
	{name: "tags", kind: kindStringArray, required: true},
	{name: "keywords", kind: kindStringArray},
	{name: "severity", kind: kindInteger, required: true},
	{name: "volatility", kind: kindInteger, required: true},
	{name: "timeHorizon", kind: kindEnum, required: true, enum: []string{"immediate", "mid", "long"}},
	{name: "signals", kind: kindObjectArray, required: true, fields: []fieldSpec{
		{name: "label", kind: kindLocalized, required: true},
		{name: "value", kind: kindString, required: true},
		{name: "source", kind: kindString},
	}},
	{name: "diagnosis", kind: kindLocalized, required: true},
	{name: "mechanisms", kind: kindLocalized, required: true},
	{name: "archetypes", kind: kindObjectArray, required: true, fields: []fieldSpec{
		{name: "name", kind: kindLocalized, required: true},
		{name: "description", kind: kindLocalized, required: true},
	}},
	{name: "glossary", kind: kindObjectArray, required: true, fields: []fieldSpec{
		{name: "term", kind: kindString, required: true},
		{name: "definition", kind: kindLocalized, required: true},
		{name: "archetypeLink", kind: kindString},
	}},
	{name: "qa", kind: kindObjectArray, fields: []fieldSpec{
		{name: "question", kind: kindLocalized, required: true},
		{name: "answer", kind: kindLocalized, required: true},
	}},
	{name: "triggers", kind: kindStringArray},
	{name: "related", kind: kindStringArray, required: true},
	{name: "lastUpdatedISO", kind: kindString, required: true},
	{name: "version", kind: kindString, required: true},
	{name: "criticalThreshold", kind: kindString},
	{name: "status", kind: kindEnum, required: true, enum: []string{"missing", "draft", "locked"}},
	{name: "generatedBy", kind: kindObject, required: true, fields: []fieldSpec{
		{name: "provider", kind: kindEnum, required: true, enum: []string{"none", "gemini", "manual"}},
		{name: "model", kind: kindString},
		{name: "seed", kind: kindString},
		{name: "generatedAtISO", kind: kindString},
	}},
	{name: "editNotes", kind: kindStringArray},
	{name: "lockReason", kind: kindString},
	{name: "citations", kind: kindObjectArray, fields: []fieldSpec{
		{name: "label", kind: kindString, required: true},
		{name: "url", kind: kindString},
		{name: "note", kind: kindString},
	}},
	{name: "media", kind: kindObject, fields: []fieldSpec{
		{name: "images", kind: kindStringArray},
		{name: "audio", kind: kindStringArray},
		{name: "video", kind: kindStringArray},
	}},
	{name: "systemicLoad", kind: kindInteger},
	{name: "timeline", kind: kindObjectArray, fields: []fieldSpec{
		{name: "year", kind: kindString, required: true},
		{name: "location", kind: kindString},
		{name: "event", kind: kindString, required: true},
		{name: "description", kind: kindString},
	}},
}

// ValidateManifest checks a raw decoded manifest document against the
// declared structural schema. It reports every finding, not just the
// first one.
func ValidateManifest(doc map[string]any) Result {
	errs := checkMembers("", doc, manifestSchema)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkMembers(path string, obj map[string]any, specs []fieldSpec) []models.ValidationError {
	var errs []models.ValidationError
	for _, spec := range specs {
		fieldPath := path + "/" + spec.name
		value, present := obj[spec.name]
		if !present || value == nil {
			if spec.required {
				errs = append(errs, models.ValidationError{
					Path:    fieldPath,
					Message: "required field is missing",
				})
			}
			continue
		}
		errs = append(errs, checkValue(fieldPath, value, spec)...)
	}
	return errs
}

func checkValue(path string, value any, spec fieldSpec) []models.ValidationError {
	switch spec.kind {
	case kindString:
		if _, ok := value.(string); !ok {
			return errorf(path, "must be a string")
		}
	case kindInteger:
		n, ok := value.(float64)
		if !ok {
			return errorf(path, "must be a number")
		}
		if n != math.Trunc(n) {
			return errorf(path, "must be an integer")
		}
	case kindBool:
		if _, ok := value.(bool); !ok {
			return errorf(path, "must be a boolean")
		}
	case kindEnum:
		s, ok := value.(string)
		if !ok {
			return errorf(path, "must be a string")
		}
		for _, allowed := range spec.enum {
			if s == allowed {
				return nil
			}
		}
		return errorf(path, "must be one of: "+strings.Join(spec.enum, ", "))
	case kindLocalized:
		obj, ok := value.(map[string]any)
		if !ok {
			return errorf(path, "must be a localized object")
		}
		// de/en may independently be absent; present members must be strings
		return checkMembers(path, obj, localizedMembers)
	case kindStringArray:
		arr, ok := value.([]any)
		if !ok {
			return errorf(path, "must be an array of strings")
		}
		if len(arr) < spec.minItems {
			return errorf(path, fmt.Sprintf("must contain at least %d item(s)", spec.minItems))
		}
		var errs []models.ValidationError
		for i, item := range arr {
			if _, ok := item.(string); !ok {
				errs = append(errs, models.ValidationError{
					Path:    fmt.Sprintf("%s/%d", path, i),
					Message: "must be a string",
				})
			}
		}
		return errs
	case kindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return errorf(path, "must be an object")
		}
		return checkMembers(path, obj, spec.fields)
	case kindObjectArray:
		arr, ok := value.([]any)
		if !ok {
			return errorf(path, "must be an array of objects")
		}
		if len(arr) < spec.minItems {
			return errorf(path, fmt.Sprintf("must contain at least %d item(s)", spec.minItems))
		}
		var errs []models.ValidationError
		for i, item := range arr {
			itemPath := fmt.Sprintf("%s/%d", path, i)
			obj, ok := item.(map[string]any)
			if !ok {
				errs = append(errs, models.ValidationError{Path: itemPath, Message: "must be an object"})
				continue
			}
			errs = append(errs, checkMembers(itemPath, obj, spec.fields)...)
		}
		return errs
	}
	return nil
}

func errorf(path, message string) []models.ValidationError {
	return []models.ValidationError{{Path: path, Message: message}}
}
