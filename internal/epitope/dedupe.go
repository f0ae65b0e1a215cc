package epitope

// Dedupe removes repeated epitopes, keeping the first occurrence of each and
// preserving order. Matching is exact and case-sensitive: "acd" and "ACD" are
// distinct entries. The second return value is the number of entries removed.
func Dedupe(epitopes []string) ([]string, int) {
	seen := make(map[string]struct{}, len(epitopes))
	unique := make([]string, 0, len(epitopes))
	for _, e := range epitopes {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		unique = append(unique, e)
	}
	return unique, len(epitopes) - len(unique)
}
