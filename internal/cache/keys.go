package cache

import "strings"

const (
	GlobalKeyPrefix = "vocabmaster"
)

// GenerateCacheKey joins the prefix, service, object type and identifier with ':'.
// Extra params are joined by '_' and appended as one more segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// DefinitionKey is the hash holding generated definitions for one model.
// Fields are normalized terms, see DefinitionField.
func DefinitionKey(model string) string {
	return GenerateCacheKey("ai", "definitions", model)
}

// DefinitionField normalizes a term for use as a hash field.
func DefinitionField(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
