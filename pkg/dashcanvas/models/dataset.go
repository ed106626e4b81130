package models

// Dataset is an ordered sequence of sample records.
// It is shared by reference between the canvas and its charts and treated as
// immutable for the session.
type Dataset []Record

// First returns the first record, used as the field template.
func (d Dataset) First() (Record, bool) {
	if len(d) == 0 {
		return nil, false
	}
	return d[0], true
}
