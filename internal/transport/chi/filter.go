package chi

import "encoding/json"

// sectionFilter decodes from either a JSON array of strings or a single bare
// string, so callers can write "section_filter": "results" without wrapping
// it in a list.
type sectionFilter []string

func (f *sectionFilter) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = sectionFilter{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*f = list
	return nil
}
