package dataset

/*
Impute returns a dataset where every missing value of d is replaced by the
most common value observed for its attribute, with ties going to the value
encountered first. Attributes without any observed value are left as they
are. The examples of d are not modified.
*/
func Impute(d *Dataset) *Dataset {
	fills := make(map[string]string)
	for _, name := range d.Schema.Names() {
		var observed []string
		for _, e := range d.Examples {
			if v := e[name]; v != Missing {
				observed = append(observed, v)
			}
		}
		if v, ok := MajorityValue(observed); ok {
			fills[name] = v
		}
	}
	examples := make([]Example, len(d.Examples))
	for i, e := range d.Examples {
		examples[i] = e
		cloned := false
		for name, fill := range fills {
			if e[name] != Missing {
				continue
			}
			if !cloned {
				examples[i] = e.Clone()
				cloned = true
			}
			examples[i][name] = fill
		}
	}
	return d.WithExamples(examples)
}
