package donation

import "strings"

// FileMetadata describes one classified archive entry. Timestamp is empty for
// platforms whose pattern has no timestamp group.
type FileMetadata struct {
	// ID is the participant id, lowercased.
	ID string
	// Platform is the name of the matching Spec.
	Platform string
	// Name is the full archive entry name.
	Name string
	// Timestamp is the captured timestamp, if any.
	Timestamp string
}

// Classify matches each entry name against the registry in order and returns
// metadata for the first matching spec per entry. Names matching no pattern
// are skipped silently: donation archives routinely contain unrelated files.
func Classify(names []string, specs []Spec) []FileMetadata {
	meta := make([]FileMetadata, 0, len(names))
	for _, name := range names {
		for _, spec := range specs {
			groups := spec.Pattern.FindStringSubmatch(name)
			if groups == nil {
				continue
			}

			m := FileMetadata{Platform: spec.Name, Name: name}
			for i, group := range spec.Pattern.SubexpNames() {
				if i == 0 || group == "" {
					continue
				}
				value := strings.ToLower(groups[i])
				switch group {
				case "id":
					m.ID = value
				case "timestamp":
					m.Timestamp = value
				}
			}
			meta = append(meta, m)
			break
		}
	}
	return meta
}
