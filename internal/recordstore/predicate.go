package recordstore

// ByID matches records whose ID equals id.
func ByID(id string) Predicate {
	return func(r Record) bool { return r.ID() == id }
}

// FieldEquals matches records whose column holds exactly value.
func FieldEquals(column, value string) Predicate {
	return func(r Record) bool { return r[column] == value }
}

// SetFields copies every key of fields into the matched record.
func SetFields(fields Record) Transform {
	return func(r Record) {
		for k, v := range fields {
			r[k] = v
		}
	}
}
