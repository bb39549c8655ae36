// Package utils contains general helpers shared across the structree tool.
package utils

// DeduplicateNames removes duplicate names from a slice while preserving order.
// The first occurrence of each unique name is kept.
func DeduplicateNames(names []string) []string {
	encounteredNames := make(map[string]struct{})
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, exists := encounteredNames[name]; !exists {
			encounteredNames[name] = struct{}{}
			result = append(result, name)
		}
	}
	return result
}

// ContainsName checks if a slice of strings contains a specific target name.
func ContainsName(nameSlice []string, targetName string) bool {
	for _, currentName := range nameSlice {
		if currentName == targetName {
			return true
		}
	}
	return false
}
