package models

// Field returns the value stored under key.
func (r Record) Field(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// With returns a copy of the record with key set to value.
// The receiver is left untouched.
func (r Record) With(key string, value any) Record {
	out := r.Clone()
	if out == nil {
		out = Record{}
	}
	out[key] = value
	return out
}
